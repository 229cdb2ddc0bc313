package oneof

import (
	"fmt"
	"reflect"

	"github.com/ib-77/oneof/pkg/oneof/typeset"
)

// Set is the read-only surface shared by every container in this package.
// The unexported method seals it: the OneOf1..OneOf5 family is the complete
// list of implementations, so a Set value always carries a valid tag/member
// pair.
type Set interface {
	// Tag returns the position of the active member within the set.
	Tag() int
	// Len returns the number of members in the set.
	Len() int
	// Value returns the active member.
	Value() any
	// members lists the member types in declaration order.
	members() []reflect.Type
}

// mutableSet adds the single write operation the generic layer and the
// codecs need. setActive is only ever called with a tag/value pair whose
// relation has already been verified.
type mutableSet interface {
	Set
	setActive(tag int, v any)
}

// settable constrains a pointer to a concrete container type.
type settable[S any] interface {
	*S
	mutableSet
}

// Copyable is the member contract behind the CloneN helpers.
type Copyable[A any] interface {
	Copy() A
}

// defect wraps a broken membership or superset relation for panicking.
// Relation failures surface at the first use of a (type, set) pair and are
// programming errors, not runtime conditions.
func defect(err error) error {
	return fmt.Errorf("oneof: %w", err)
}

// errTagRange reports a tag outside [0, Len). Reaching it through setActive
// means a tag/set invariant was breached upstream.
func errTagRange(tag int, set []reflect.Type) error {
	return fmt.Errorf("tag %d out of range for %s", tag, typeset.Format(set))
}
