package oneof

import (
	"log/slog"
	"reflect"

	"gopkg.in/yaml.v3"
)

// OneOf3 holds exactly one value drawn from the ordered member set (A, B, C).
type OneOf3[A, B, C any] struct {
	tag uint8
	a   A
	b   B
	c   C
}

// First3 wraps a value of the first member.
func First3[A, B, C any](a A) OneOf3[A, B, C] {
	return OneOf3[A, B, C]{tag: 0, a: a}
}

// Second3 wraps a value of the second member.
func Second3[A, B, C any](b B) OneOf3[A, B, C] {
	return OneOf3[A, B, C]{tag: 1, b: b}
}

// Third3 wraps a value of the third member.
func Third3[A, B, C any](c C) OneOf3[A, B, C] {
	return OneOf3[A, B, C]{tag: 2, c: c}
}

// NarrowFirst extracts the first member, reducing to (B, C) on a mismatch.
// The residual preserves the relative order of the remaining members.
func (o OneOf3[A, B, C]) NarrowFirst() (A, OneOf2[B, C], bool) {
	var zero A
	switch o.tag {
	case 0:
		return o.a, OneOf2[B, C]{}, true
	case 1:
		return zero, First2[B, C](o.b), false
	default:
		return zero, Second2[B, C](o.c), false
	}
}

// NarrowSecond extracts the second member, reducing to (A, C) on a mismatch.
func (o OneOf3[A, B, C]) NarrowSecond() (B, OneOf2[A, C], bool) {
	var zero B
	switch o.tag {
	case 1:
		return o.b, OneOf2[A, C]{}, true
	case 0:
		return zero, First2[A, C](o.a), false
	default:
		return zero, Second2[A, C](o.c), false
	}
}

// NarrowThird extracts the third member, reducing to (A, B) on a mismatch.
func (o OneOf3[A, B, C]) NarrowThird() (C, OneOf2[A, B], bool) {
	var zero C
	switch o.tag {
	case 2:
		return o.c, OneOf2[A, B]{}, true
	case 0:
		return zero, First2[A, B](o.a), false
	default:
		return zero, Second2[A, B](o.b), false
	}
}

// Cases3 is the discriminated-union view of a OneOf3. Exactly one field is
// non-nil.
type Cases3[A, B, C any] struct {
	First  *A
	Second *B
	Third  *C
}

// Cases projects the container into its union view without consuming it.
func (o OneOf3[A, B, C]) Cases() Cases3[A, B, C] {
	switch o.tag {
	case 1:
		return Cases3[A, B, C]{Second: &o.b}
	case 2:
		return Cases3[A, B, C]{Third: &o.c}
	default:
		return Cases3[A, B, C]{First: &o.a}
	}
}

// Switch invokes the handler matching the active member.
func (o OneOf3[A, B, C]) Switch(onFirst func(A), onSecond func(B), onThird func(C)) {
	switch o.tag {
	case 1:
		onSecond(o.b)
	case 2:
		onThird(o.c)
	default:
		onFirst(o.a)
	}
}

func (o OneOf3[A, B, C]) Tag() int {
	return int(o.tag)
}

func (OneOf3[A, B, C]) Len() int {
	return 3
}

func (o OneOf3[A, B, C]) Value() any {
	switch o.tag {
	case 1:
		return o.b
	case 2:
		return o.c
	default:
		return o.a
	}
}

func (OneOf3[A, B, C]) members() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B](), reflect.TypeFor[C]()}
}

func (o *OneOf3[A, B, C]) setActive(tag int, v any) {
	switch tag {
	case 0:
		*o = OneOf3[A, B, C]{tag: 0, a: v.(A)}
	case 1:
		*o = OneOf3[A, B, C]{tag: 1, b: v.(B)}
	case 2:
		*o = OneOf3[A, B, C]{tag: 2, c: v.(C)}
	default:
		panic(defect(errTagRange(tag, o.members())))
	}
}

func (o OneOf3[A, B, C]) String() string {
	return renderString(o.Value())
}

func (o OneOf3[A, B, C]) GoString() string {
	return renderGoString("OneOf3", o.Tag(), o.Value())
}

func (o OneOf3[A, B, C]) LogValue() slog.Value {
	return renderLogValue(o.Tag(), o.Value())
}

func (o OneOf3[A, B, C]) MarshalJSON() ([]byte, error) {
	return marshalJSON(o)
}

func (o *OneOf3[A, B, C]) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(o, data)
}

func (o OneOf3[A, B, C]) MarshalYAML() (any, error) {
	return marshalYAML(o)
}

func (o *OneOf3[A, B, C]) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAML(o, node)
}
