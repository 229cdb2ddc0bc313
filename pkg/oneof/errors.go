package oneof

import (
	"errors"
	"reflect"

	"github.com/ib-77/oneof/pkg/oneof/typeset"
)

var errType = reflect.TypeFor[error]()

// isNil treats a nil pointer boxed in a non-nil error interface as absent.
func isNil(i any) bool {
	if i == nil || (reflect.ValueOf(i).Kind() == reflect.Ptr && reflect.ValueOf(i).IsNil()) {
		return true
	}
	return false
}

// Classify matches an error chain against the error-typed members of the
// container type S, in declaration order, via errors.As. The first member
// the chain matches becomes the active member of the returned container;
// false means no error-typed member matched (a nil err never matches).
// Members that do not implement error are skipped. Classify bridges code
// that returns plain errors into a closed set without reopening the set:
// only the declared members are ever produced.
func Classify[S any, P settable[S]](err error) (S, bool) {
	var s S
	if isNil(err) {
		return s, false
	}

	p := P(&s)
	set := p.members()
	if _, terr := typeset.Positions(reflect.TypeFor[S](), set); terr != nil {
		panic(defect(terr))
	}

	for i, m := range set {
		if !m.Implements(errType) {
			continue
		}
		target := reflect.New(m)
		if errors.As(err, target.Interface()) {
			p.setActive(i, target.Elem().Interface())
			return s, true
		}
	}
	return s, false
}
