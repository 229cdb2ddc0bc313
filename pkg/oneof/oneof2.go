package oneof

import (
	"log/slog"
	"reflect"

	"gopkg.in/yaml.v3"
)

// OneOf2 holds exactly one value drawn from the ordered member set (A, B).
// The tag selects the active member; every other field holds its zero value.
// The zero value is valid and holds the zero value of A at tag 0.
type OneOf2[A, B any] struct {
	tag uint8
	a   A
	b   B
}

// First2 wraps a value of the first member.
func First2[A, B any](a A) OneOf2[A, B] {
	return OneOf2[A, B]{tag: 0, a: a}
}

// Second2 wraps a value of the second member.
func Second2[A, B any](b B) OneOf2[A, B] {
	return OneOf2[A, B]{tag: 1, b: b}
}

// NarrowFirst extracts the first member. On a mismatch it returns the
// residual container over (B) holding the active value, with the tag
// remapped into the smaller index space.
func (o OneOf2[A, B]) NarrowFirst() (A, OneOf1[B], bool) {
	var zero A
	switch o.tag {
	case 0:
		return o.a, OneOf1[B]{}, true
	default:
		return zero, First1(o.b), false
	}
}

// NarrowSecond extracts the second member, reducing to (A) on a mismatch.
func (o OneOf2[A, B]) NarrowSecond() (B, OneOf1[A], bool) {
	var zero B
	switch o.tag {
	case 1:
		return o.b, OneOf1[A]{}, true
	default:
		return zero, First1(o.a), false
	}
}

// Cases2 is the discriminated-union view of a OneOf2. Exactly one field is
// non-nil.
type Cases2[A, B any] struct {
	First  *A
	Second *B
}

// Cases projects the container into its union view. The pointers address a
// private snapshot; the container itself is not consumed.
func (o OneOf2[A, B]) Cases() Cases2[A, B] {
	switch o.tag {
	case 1:
		return Cases2[A, B]{Second: &o.b}
	default:
		return Cases2[A, B]{First: &o.a}
	}
}

// Switch invokes the handler matching the active member.
func (o OneOf2[A, B]) Switch(onFirst func(A), onSecond func(B)) {
	switch o.tag {
	case 1:
		onSecond(o.b)
	default:
		onFirst(o.a)
	}
}

func (o OneOf2[A, B]) Tag() int {
	return int(o.tag)
}

func (OneOf2[A, B]) Len() int {
	return 2
}

func (o OneOf2[A, B]) Value() any {
	switch o.tag {
	case 1:
		return o.b
	default:
		return o.a
	}
}

func (OneOf2[A, B]) members() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A](), reflect.TypeFor[B]()}
}

func (o *OneOf2[A, B]) setActive(tag int, v any) {
	switch tag {
	case 0:
		*o = OneOf2[A, B]{tag: 0, a: v.(A)}
	case 1:
		*o = OneOf2[A, B]{tag: 1, b: v.(B)}
	default:
		panic(defect(errTagRange(tag, o.members())))
	}
}

func (o OneOf2[A, B]) String() string {
	return renderString(o.Value())
}

func (o OneOf2[A, B]) GoString() string {
	return renderGoString("OneOf2", o.Tag(), o.Value())
}

func (o OneOf2[A, B]) LogValue() slog.Value {
	return renderLogValue(o.Tag(), o.Value())
}

func (o OneOf2[A, B]) MarshalJSON() ([]byte, error) {
	return marshalJSON(o)
}

func (o *OneOf2[A, B]) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(o, data)
}

func (o OneOf2[A, B]) MarshalYAML() (any, error) {
	return marshalYAML(o)
}

func (o *OneOf2[A, B]) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAML(o, node)
}
