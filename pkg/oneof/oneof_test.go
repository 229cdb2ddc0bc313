package oneof

import (
	"bytes"
	"fmt"
	"testing"
)

func TestConstructNarrowIdentity(t *testing.T) {
	t.Parallel()
	o := First3[uint32, string, []byte](5)

	v, _, ok := o.NarrowFirst()
	if !ok {
		t.Fatalf("expected narrow by the held member to succeed")
	}
	if v != 5 {
		t.Fatalf("expected 5, got %v", v)
	}
}

func TestNarrowMismatch_ResidualKeepsValue(t *testing.T) {
	t.Parallel()
	o := First3[uint32, string, []byte](5)

	// scenario A: narrow by string fails, residual (uint32, []uint8) still holds 5
	_, rest, ok := o.NarrowSecond()
	if ok {
		t.Fatalf("expected narrow by string to fail on a uint32-holding container")
	}
	if rest.Tag() != 0 {
		t.Fatalf("expected residual tag 0, got %d", rest.Tag())
	}
	if rest.Len() != 2 {
		t.Fatalf("expected residual set of 2 members, got %d", rest.Len())
	}

	v, _, ok := rest.NarrowFirst()
	if !ok || v != 5 {
		t.Fatalf("expected residual to still hold uint32(5), got ok=%v v=%v", ok, v)
	}
}

func TestNarrow_TagRemapPreservesOrder(t *testing.T) {
	t.Parallel()
	o := Third3[uint32, string, []byte]([]byte("payload"))

	// dropping the second member shifts the third down to position 1
	_, rest, ok := o.NarrowSecond()
	if ok {
		t.Fatalf("expected mismatch")
	}
	if rest.Tag() != 1 {
		t.Fatalf("expected remapped tag 1, got %d", rest.Tag())
	}

	b, _, ok := rest.NarrowSecond()
	if !ok || string(b) != "payload" {
		t.Fatalf("expected residual to hold the byte payload, got ok=%v b=%q", ok, b)
	}
}

func TestNarrowSingleMember_NoFailureBranch(t *testing.T) {
	t.Parallel()
	// scenario C: a single-member narrow always yields the value
	o := First1("only")
	if got := o.NarrowFirst(); got != "only" {
		t.Fatalf("expected %q, got %q", "only", got)
	}
}

func TestNarrowChain_DownToOne(t *testing.T) {
	t.Parallel()
	o := Fourth4[int, string, bool, float64](2.5)

	_, r3, ok := o.NarrowFirst()
	if ok {
		t.Fatalf("expected mismatch on int")
	}
	_, r2, ok := r3.NarrowFirst()
	if ok {
		t.Fatalf("expected mismatch on string")
	}
	_, r1, ok := r2.NarrowFirst()
	if ok {
		t.Fatalf("expected mismatch on bool")
	}
	if got := r1.NarrowFirst(); got != 2.5 {
		t.Fatalf("expected 2.5 after narrowing down to one member, got %v", got)
	}
}

func TestEquality_TagAndValue(t *testing.T) {
	t.Parallel()
	x := First2[int, string](1)
	y := First2[int, string](1)
	z := First2[int, string](2)

	if x != y {
		t.Fatalf("expected equal containers to compare equal")
	}
	if x == z {
		t.Fatalf("expected containers with differing values to compare unequal")
	}
}

func TestEquality_DifferingTagsNeverEqual(t *testing.T) {
	t.Parallel()
	// both hold zero values; the tags still tell them apart
	x := First2[int, string](0)
	y := Second2[int, string]("")

	if x == y {
		t.Fatalf("expected differing tags to compare unequal regardless of contents")
	}
}

func TestZeroValue_HoldsFirstMember(t *testing.T) {
	t.Parallel()
	var o OneOf2[int, string]
	if o.Tag() != 0 {
		t.Fatalf("expected zero value at tag 0, got %d", o.Tag())
	}
	if o.Value() != 0 {
		t.Fatalf("expected zero int, got %v", o.Value())
	}
}

func TestCases_ExactlyOneCase(t *testing.T) {
	t.Parallel()
	o := Second3[uint32, string, []byte]("hello")

	cases := o.Cases()
	if cases.First != nil || cases.Third != nil {
		t.Fatalf("expected only the second case to be set")
	}
	if cases.Second == nil || *cases.Second != "hello" {
		t.Fatalf("expected second case %q, got %v", "hello", cases.Second)
	}
}

func TestCases_SnapshotDoesNotAliasSource(t *testing.T) {
	t.Parallel()
	o := First2[int, string](7)

	cases := o.Cases()
	*cases.First = 99
	if v, _, _ := o.NarrowFirst(); v != 7 {
		t.Fatalf("expected the source container to be untouched, got %v", v)
	}
}

func TestMatch_Exhaustive(t *testing.T) {
	t.Parallel()
	o := Third3[int, string, bool](true)

	got := Match3(o,
		func(int) string { return "int" },
		func(string) string { return "string" },
		func(bool) string { return "bool" },
	)
	if got != "bool" {
		t.Fatalf("expected the bool handler to run, got %q", got)
	}
}

func TestSwitch_RunsActiveHandlerOnly(t *testing.T) {
	t.Parallel()
	o := Second2[int, string]("x")

	var ran []string
	o.Switch(
		func(int) { ran = append(ran, "first") },
		func(string) { ran = append(ran, "second") },
	)
	if len(ran) != 1 || ran[0] != "second" {
		t.Fatalf("expected only the second handler to run, got %v", ran)
	}
}

type loud struct{ name string }

func (l loud) String() string { return "loud:" + l.name }

func TestString_PrefersMemberStringer(t *testing.T) {
	t.Parallel()
	o := First2[loud, int](loud{name: "a"})
	if got := o.String(); got != "loud:a" {
		t.Fatalf("expected the member's Stringer, got %q", got)
	}

	p := Second2[loud, int](42)
	if got := p.String(); got != "42" {
		t.Fatalf("expected %%v fallback, got %q", got)
	}
}

func TestGoString_NamesTagAndType(t *testing.T) {
	t.Parallel()
	o := Second2[int, string]("x")

	got := fmt.Sprintf("%#v", o)
	want := `oneof.OneOf2{tag: 1, value: string("x")}`
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestLogValue_GroupsTagTypeValue(t *testing.T) {
	t.Parallel()
	o := First2[int, string](3)

	val := o.LogValue()
	attrs := val.Group()
	if len(attrs) != 3 {
		t.Fatalf("expected 3 attrs, got %d", len(attrs))
	}
	if attrs[0].Key != "tag" || attrs[0].Value.Int64() != 0 {
		t.Fatalf("expected tag=0, got %v", attrs[0])
	}
	if attrs[1].Key != "type" || attrs[1].Value.String() != "int" {
		t.Fatalf("expected type=int, got %v", attrs[1])
	}
	if attrs[2].Key != "value" {
		t.Fatalf("expected a value attr, got %v", attrs[2])
	}
}

func TestFiveMember_NarrowFifth(t *testing.T) {
	t.Parallel()
	o := Fifth5[int, string, bool, float64, []byte]([]byte{1, 2})

	b, _, ok := o.NarrowFifth()
	if !ok || !bytes.Equal(b, []byte{1, 2}) {
		t.Fatalf("expected the fifth member back, got ok=%v b=%v", ok, b)
	}

	_, rest, ok := o.NarrowFirst()
	if ok {
		t.Fatalf("expected mismatch on the first member")
	}
	if rest.Tag() != 3 {
		t.Fatalf("expected the fifth member to shift down to tag 3, got %d", rest.Tag())
	}
}
