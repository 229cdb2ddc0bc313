package oneof

import (
	"log/slog"
	"reflect"

	"gopkg.in/yaml.v3"
)

// OneOf5 holds exactly one value drawn from the ordered member set
// (A, B, C, D, E).
type OneOf5[A, B, C, D, E any] struct {
	tag uint8
	a   A
	b   B
	c   C
	d   D
	e   E
}

// First5 wraps a value of the first member.
func First5[A, B, C, D, E any](a A) OneOf5[A, B, C, D, E] {
	return OneOf5[A, B, C, D, E]{tag: 0, a: a}
}

// Second5 wraps a value of the second member.
func Second5[A, B, C, D, E any](b B) OneOf5[A, B, C, D, E] {
	return OneOf5[A, B, C, D, E]{tag: 1, b: b}
}

// Third5 wraps a value of the third member.
func Third5[A, B, C, D, E any](c C) OneOf5[A, B, C, D, E] {
	return OneOf5[A, B, C, D, E]{tag: 2, c: c}
}

// Fourth5 wraps a value of the fourth member.
func Fourth5[A, B, C, D, E any](d D) OneOf5[A, B, C, D, E] {
	return OneOf5[A, B, C, D, E]{tag: 3, d: d}
}

// Fifth5 wraps a value of the fifth member.
func Fifth5[A, B, C, D, E any](e E) OneOf5[A, B, C, D, E] {
	return OneOf5[A, B, C, D, E]{tag: 4, e: e}
}

// NarrowFirst extracts the first member, reducing to (B, C, D, E) on a
// mismatch.
func (o OneOf5[A, B, C, D, E]) NarrowFirst() (A, OneOf4[B, C, D, E], bool) {
	var zero A
	switch o.tag {
	case 0:
		return o.a, OneOf4[B, C, D, E]{}, true
	case 1:
		return zero, First4[B, C, D, E](o.b), false
	case 2:
		return zero, Second4[B, C, D, E](o.c), false
	case 3:
		return zero, Third4[B, C, D, E](o.d), false
	default:
		return zero, Fourth4[B, C, D, E](o.e), false
	}
}

// NarrowSecond extracts the second member, reducing to (A, C, D, E) on a
// mismatch.
func (o OneOf5[A, B, C, D, E]) NarrowSecond() (B, OneOf4[A, C, D, E], bool) {
	var zero B
	switch o.tag {
	case 1:
		return o.b, OneOf4[A, C, D, E]{}, true
	case 0:
		return zero, First4[A, C, D, E](o.a), false
	case 2:
		return zero, Second4[A, C, D, E](o.c), false
	case 3:
		return zero, Third4[A, C, D, E](o.d), false
	default:
		return zero, Fourth4[A, C, D, E](o.e), false
	}
}

// NarrowThird extracts the third member, reducing to (A, B, D, E) on a
// mismatch.
func (o OneOf5[A, B, C, D, E]) NarrowThird() (C, OneOf4[A, B, D, E], bool) {
	var zero C
	switch o.tag {
	case 2:
		return o.c, OneOf4[A, B, D, E]{}, true
	case 0:
		return zero, First4[A, B, D, E](o.a), false
	case 1:
		return zero, Second4[A, B, D, E](o.b), false
	case 3:
		return zero, Third4[A, B, D, E](o.d), false
	default:
		return zero, Fourth4[A, B, D, E](o.e), false
	}
}

// NarrowFourth extracts the fourth member, reducing to (A, B, C, E) on a
// mismatch.
func (o OneOf5[A, B, C, D, E]) NarrowFourth() (D, OneOf4[A, B, C, E], bool) {
	var zero D
	switch o.tag {
	case 3:
		return o.d, OneOf4[A, B, C, E]{}, true
	case 0:
		return zero, First4[A, B, C, E](o.a), false
	case 1:
		return zero, Second4[A, B, C, E](o.b), false
	case 2:
		return zero, Third4[A, B, C, E](o.c), false
	default:
		return zero, Fourth4[A, B, C, E](o.e), false
	}
}

// NarrowFifth extracts the fifth member, reducing to (A, B, C, D) on a
// mismatch.
func (o OneOf5[A, B, C, D, E]) NarrowFifth() (E, OneOf4[A, B, C, D], bool) {
	var zero E
	switch o.tag {
	case 4:
		return o.e, OneOf4[A, B, C, D]{}, true
	case 0:
		return zero, First4[A, B, C, D](o.a), false
	case 1:
		return zero, Second4[A, B, C, D](o.b), false
	case 2:
		return zero, Third4[A, B, C, D](o.c), false
	default:
		return zero, Fourth4[A, B, C, D](o.d), false
	}
}

// Cases5 is the discriminated-union view of a OneOf5. Exactly one field is
// non-nil.
type Cases5[A, B, C, D, E any] struct {
	First  *A
	Second *B
	Third  *C
	Fourth *D
	Fifth  *E
}

// Cases projects the container into its union view without consuming it.
func (o OneOf5[A, B, C, D, E]) Cases() Cases5[A, B, C, D, E] {
	switch o.tag {
	case 1:
		return Cases5[A, B, C, D, E]{Second: &o.b}
	case 2:
		return Cases5[A, B, C, D, E]{Third: &o.c}
	case 3:
		return Cases5[A, B, C, D, E]{Fourth: &o.d}
	case 4:
		return Cases5[A, B, C, D, E]{Fifth: &o.e}
	default:
		return Cases5[A, B, C, D, E]{First: &o.a}
	}
}

// Switch invokes the handler matching the active member.
func (o OneOf5[A, B, C, D, E]) Switch(onFirst func(A), onSecond func(B), onThird func(C), onFourth func(D), onFifth func(E)) {
	switch o.tag {
	case 1:
		onSecond(o.b)
	case 2:
		onThird(o.c)
	case 3:
		onFourth(o.d)
	case 4:
		onFifth(o.e)
	default:
		onFirst(o.a)
	}
}

func (o OneOf5[A, B, C, D, E]) Tag() int {
	return int(o.tag)
}

func (OneOf5[A, B, C, D, E]) Len() int {
	return 5
}

func (o OneOf5[A, B, C, D, E]) Value() any {
	switch o.tag {
	case 1:
		return o.b
	case 2:
		return o.c
	case 3:
		return o.d
	case 4:
		return o.e
	default:
		return o.a
	}
}

func (OneOf5[A, B, C, D, E]) members() []reflect.Type {
	return []reflect.Type{
		reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C](),
		reflect.TypeFor[D](), reflect.TypeFor[E](),
	}
}

func (o *OneOf5[A, B, C, D, E]) setActive(tag int, v any) {
	switch tag {
	case 0:
		*o = OneOf5[A, B, C, D, E]{tag: 0, a: v.(A)}
	case 1:
		*o = OneOf5[A, B, C, D, E]{tag: 1, b: v.(B)}
	case 2:
		*o = OneOf5[A, B, C, D, E]{tag: 2, c: v.(C)}
	case 3:
		*o = OneOf5[A, B, C, D, E]{tag: 3, d: v.(D)}
	case 4:
		*o = OneOf5[A, B, C, D, E]{tag: 4, e: v.(E)}
	default:
		panic(defect(errTagRange(tag, o.members())))
	}
}

func (o OneOf5[A, B, C, D, E]) String() string {
	return renderString(o.Value())
}

func (o OneOf5[A, B, C, D, E]) GoString() string {
	return renderGoString("OneOf5", o.Tag(), o.Value())
}

func (o OneOf5[A, B, C, D, E]) LogValue() slog.Value {
	return renderLogValue(o.Tag(), o.Value())
}

func (o OneOf5[A, B, C, D, E]) MarshalJSON() ([]byte, error) {
	return marshalJSON(o)
}

func (o *OneOf5[A, B, C, D, E]) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(o, data)
}

func (o OneOf5[A, B, C, D, E]) MarshalYAML() (any, error) {
	return marshalYAML(o)
}

func (o *OneOf5[A, B, C, D, E]) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAML(o, node)
}
