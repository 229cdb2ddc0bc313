package oneof

import (
	"log/slog"
	"reflect"

	"gopkg.in/yaml.v3"
)

// OneOf4 holds exactly one value drawn from the ordered member set
// (A, B, C, D).
type OneOf4[A, B, C, D any] struct {
	tag uint8
	a   A
	b   B
	c   C
	d   D
}

// First4 wraps a value of the first member.
func First4[A, B, C, D any](a A) OneOf4[A, B, C, D] {
	return OneOf4[A, B, C, D]{tag: 0, a: a}
}

// Second4 wraps a value of the second member.
func Second4[A, B, C, D any](b B) OneOf4[A, B, C, D] {
	return OneOf4[A, B, C, D]{tag: 1, b: b}
}

// Third4 wraps a value of the third member.
func Third4[A, B, C, D any](c C) OneOf4[A, B, C, D] {
	return OneOf4[A, B, C, D]{tag: 2, c: c}
}

// Fourth4 wraps a value of the fourth member.
func Fourth4[A, B, C, D any](d D) OneOf4[A, B, C, D] {
	return OneOf4[A, B, C, D]{tag: 3, d: d}
}

// NarrowFirst extracts the first member, reducing to (B, C, D) on a
// mismatch.
func (o OneOf4[A, B, C, D]) NarrowFirst() (A, OneOf3[B, C, D], bool) {
	var zero A
	switch o.tag {
	case 0:
		return o.a, OneOf3[B, C, D]{}, true
	case 1:
		return zero, First3[B, C, D](o.b), false
	case 2:
		return zero, Second3[B, C, D](o.c), false
	default:
		return zero, Third3[B, C, D](o.d), false
	}
}

// NarrowSecond extracts the second member, reducing to (A, C, D) on a
// mismatch.
func (o OneOf4[A, B, C, D]) NarrowSecond() (B, OneOf3[A, C, D], bool) {
	var zero B
	switch o.tag {
	case 1:
		return o.b, OneOf3[A, C, D]{}, true
	case 0:
		return zero, First3[A, C, D](o.a), false
	case 2:
		return zero, Second3[A, C, D](o.c), false
	default:
		return zero, Third3[A, C, D](o.d), false
	}
}

// NarrowThird extracts the third member, reducing to (A, B, D) on a
// mismatch.
func (o OneOf4[A, B, C, D]) NarrowThird() (C, OneOf3[A, B, D], bool) {
	var zero C
	switch o.tag {
	case 2:
		return o.c, OneOf3[A, B, D]{}, true
	case 0:
		return zero, First3[A, B, D](o.a), false
	case 1:
		return zero, Second3[A, B, D](o.b), false
	default:
		return zero, Third3[A, B, D](o.d), false
	}
}

// NarrowFourth extracts the fourth member, reducing to (A, B, C) on a
// mismatch.
func (o OneOf4[A, B, C, D]) NarrowFourth() (D, OneOf3[A, B, C], bool) {
	var zero D
	switch o.tag {
	case 3:
		return o.d, OneOf3[A, B, C]{}, true
	case 0:
		return zero, First3[A, B, C](o.a), false
	case 1:
		return zero, Second3[A, B, C](o.b), false
	default:
		return zero, Third3[A, B, C](o.c), false
	}
}

// Cases4 is the discriminated-union view of a OneOf4. Exactly one field is
// non-nil.
type Cases4[A, B, C, D any] struct {
	First  *A
	Second *B
	Third  *C
	Fourth *D
}

// Cases projects the container into its union view without consuming it.
func (o OneOf4[A, B, C, D]) Cases() Cases4[A, B, C, D] {
	switch o.tag {
	case 1:
		return Cases4[A, B, C, D]{Second: &o.b}
	case 2:
		return Cases4[A, B, C, D]{Third: &o.c}
	case 3:
		return Cases4[A, B, C, D]{Fourth: &o.d}
	default:
		return Cases4[A, B, C, D]{First: &o.a}
	}
}

// Switch invokes the handler matching the active member.
func (o OneOf4[A, B, C, D]) Switch(onFirst func(A), onSecond func(B), onThird func(C), onFourth func(D)) {
	switch o.tag {
	case 1:
		onSecond(o.b)
	case 2:
		onThird(o.c)
	case 3:
		onFourth(o.d)
	default:
		onFirst(o.a)
	}
}

func (o OneOf4[A, B, C, D]) Tag() int {
	return int(o.tag)
}

func (OneOf4[A, B, C, D]) Len() int {
	return 4
}

func (o OneOf4[A, B, C, D]) Value() any {
	switch o.tag {
	case 1:
		return o.b
	case 2:
		return o.c
	case 3:
		return o.d
	default:
		return o.a
	}
}

func (OneOf4[A, B, C, D]) members() []reflect.Type {
	return []reflect.Type{
		reflect.TypeFor[A](), reflect.TypeFor[B](),
		reflect.TypeFor[C](), reflect.TypeFor[D](),
	}
}

func (o *OneOf4[A, B, C, D]) setActive(tag int, v any) {
	switch tag {
	case 0:
		*o = OneOf4[A, B, C, D]{tag: 0, a: v.(A)}
	case 1:
		*o = OneOf4[A, B, C, D]{tag: 1, b: v.(B)}
	case 2:
		*o = OneOf4[A, B, C, D]{tag: 2, c: v.(C)}
	case 3:
		*o = OneOf4[A, B, C, D]{tag: 3, d: v.(D)}
	default:
		panic(defect(errTagRange(tag, o.members())))
	}
}

func (o OneOf4[A, B, C, D]) String() string {
	return renderString(o.Value())
}

func (o OneOf4[A, B, C, D]) GoString() string {
	return renderGoString("OneOf4", o.Tag(), o.Value())
}

func (o OneOf4[A, B, C, D]) LogValue() slog.Value {
	return renderLogValue(o.Tag(), o.Value())
}

func (o OneOf4[A, B, C, D]) MarshalJSON() ([]byte, error) {
	return marshalJSON(o)
}

func (o *OneOf4[A, B, C, D]) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(o, data)
}

func (o OneOf4[A, B, C, D]) MarshalYAML() (any, error) {
	return marshalYAML(o)
}

func (o *OneOf4[A, B, C, D]) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAML(o, node)
}
