package oneof

import (
	"reflect"

	"github.com/ib-77/oneof/pkg/oneof/typeset"
)

// New wraps a value into the container type S by the value's static type.
// The member position is resolved once per (S, T) pair; wrapping a type that
// is not a member of S's set is a defect. The typed per-position
// constructors are the compile-checked alternative.
//
//	s := oneof.New[oneof.OneOf3[uint32, string, []byte]](uint32(5))
func New[S any, P settable[S], T any](v T) S {
	var s S
	p := P(&s)

	idx, err := typeset.IndexOf(reflect.TypeFor[S](), p.members(), reflect.TypeFor[T]())
	if err != nil {
		panic(defect(err))
	}

	p.setActive(idx, v)
	return s
}

// Broaden embeds a container into the wider container type W. The superset
// relation between the two member sets is resolved once per (S, W) pair and
// the tag is remapped through the resulting table; a W that is not a
// superset of S's set is a defect naming the missing member.
func Broaden[W any, PW settable[W], S Set](s S) W {
	var w W
	pw := PW(&w)

	table, err := typeset.Mapping(reflect.TypeFor[S](), s.members(), reflect.TypeFor[W](), pw.members())
	if err != nil {
		panic(defect(err))
	}

	pw.setActive(table[s.Tag()], s.Value())
	return w
}

// MustEmbed forces the superset relation S into W to be resolved eagerly,
// so a package can pin the relation at init instead of discovering a defect
// on the first Broaden.
func MustEmbed[W Set, S Set]() {
	var s S
	var w W
	_, err := typeset.Mapping(reflect.TypeFor[S](), s.members(), reflect.TypeFor[W](), w.members())
	if err != nil {
		panic(defect(err))
	}
}

// Is reports whether the container currently holds the member T. Probing a
// type that is not a member of S's set is a defect.
func Is[T any, S Set](s S) bool {
	idx, err := typeset.IndexOf(reflect.TypeFor[S](), s.members(), reflect.TypeFor[T]())
	if err != nil {
		panic(defect(err))
	}
	return s.Tag() == idx
}

// Get returns the active value if the container currently holds the member
// T. Unlike the NarrowX methods it produces no residual; use it for by-type
// probing when the residual set is not needed.
func Get[T any, S Set](s S) (T, bool) {
	if !Is[T](s) {
		var zero T
		return zero, false
	}
	return s.Value().(T), true
}
