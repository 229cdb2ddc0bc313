package typeset

import (
	"fmt"
	"reflect"
)

// NotMemberError reports a type that does not occur in an ordered member set.
type NotMemberError struct {
	Member reflect.Type
	Set    []reflect.Type
}

func (e *NotMemberError) Error() string {
	return fmt.Sprintf("type %s is not a member of %s", e.Member, Format(e.Set))
}

// DuplicateError reports a member set that names the same type twice.
type DuplicateError struct {
	Member        reflect.Type
	Set           []reflect.Type
	First, Second int
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("duplicate member %s at positions %d and %d in %s",
		e.Member, e.First, e.Second, Format(e.Set))
}

// NotSubsetError reports the first member of From that To does not contain.
type NotSubsetError struct {
	Missing  reflect.Type
	From, To []reflect.Type
}

func (e *NotSubsetError) Error() string {
	return fmt.Sprintf("%s is not a subset of %s: missing member %s",
		Format(e.From), Format(e.To), e.Missing)
}
