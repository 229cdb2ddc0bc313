package oneof

import (
	"log/slog"
	"reflect"

	"gopkg.in/yaml.v3"
)

// OneOf1 holds exactly one value drawn from the single-member set (A). It is
// the terminal residual of narrowing larger containers. The zero value holds
// the zero value of A.
type OneOf1[A any] struct {
	tag uint8
	a   A
}

// First1 wraps a value of the first (and only) member.
func First1[A any](a A) OneOf1[A] {
	return OneOf1[A]{tag: 0, a: a}
}

// NarrowFirst extracts the only member. With a single-member set there is no
// residual type, so the signature has no failure branch.
func (o OneOf1[A]) NarrowFirst() A {
	return o.a
}

// Cases1 is the discriminated-union view of a OneOf1. Exactly one field is
// non-nil.
type Cases1[A any] struct {
	First *A
}

// Cases projects the container into its union view. The pointer addresses a
// private snapshot; the container itself is not consumed.
func (o OneOf1[A]) Cases() Cases1[A] {
	return Cases1[A]{First: &o.a}
}

// Switch invokes the handler for the active member.
func (o OneOf1[A]) Switch(onFirst func(A)) {
	onFirst(o.a)
}

func (o OneOf1[A]) Tag() int {
	return int(o.tag)
}

func (OneOf1[A]) Len() int {
	return 1
}

func (o OneOf1[A]) Value() any {
	return o.a
}

func (OneOf1[A]) members() []reflect.Type {
	return []reflect.Type{reflect.TypeFor[A]()}
}

func (o *OneOf1[A]) setActive(tag int, v any) {
	switch tag {
	case 0:
		*o = OneOf1[A]{tag: 0, a: v.(A)}
	default:
		panic(defect(errTagRange(tag, o.members())))
	}
}

func (o OneOf1[A]) String() string {
	return renderString(o.Value())
}

func (o OneOf1[A]) GoString() string {
	return renderGoString("OneOf1", o.Tag(), o.Value())
}

func (o OneOf1[A]) LogValue() slog.Value {
	return renderLogValue(o.Tag(), o.Value())
}

func (o OneOf1[A]) MarshalJSON() ([]byte, error) {
	return marshalJSON(o)
}

func (o *OneOf1[A]) UnmarshalJSON(data []byte) error {
	return unmarshalJSON(o, data)
}

func (o OneOf1[A]) MarshalYAML() (any, error) {
	return marshalYAML(o)
}

func (o *OneOf1[A]) UnmarshalYAML(node *yaml.Node) error {
	return unmarshalYAML(o, node)
}
