package outcome

import (
	"errors"
	"strconv"
	"testing"

	"github.com/ib-77/oneof/pkg/oneof"
)

func wrapParse(t *testing.T) func(error) parseErr {
	return func(err error) parseErr {
		set, ok := oneof.Classify[parseErr](err)
		if !ok {
			t.Fatalf("error outside the parse set: %v", err)
		}
		return set
	}
}

func TestMap_Success(t *testing.T) {
	t.Parallel()
	r := Map(Success[int, parseErr](3), func(n int) string { return strconv.Itoa(n * 2) })

	if !r.IsSuccess() || r.Value() != "6" {
		t.Fatalf("expected \"6\", got success=%v v=%q", r.IsSuccess(), r.Value())
	}
}

func TestMap_FailurePassesThrough(t *testing.T) {
	t.Parallel()
	in := Fail[int](oneof.New[parseErr](timeout{op: "read"}))

	called := false
	r := Map(in, func(n int) string {
		called = true
		return ""
	})

	if called {
		t.Fatalf("onSuccess should not be called on a failure")
	}
	if !r.IsFailure() || r.Failure() != in.Failure() {
		t.Fatalf("expected the failure set to pass through, got %#v", r.Failure())
	}
	if r.Id() != in.Id() {
		t.Fatalf("expected the envelope to travel with the failure")
	}
}

func TestThen_ComposesResults(t *testing.T) {
	t.Parallel()
	r := Then(Success[string, parseErr]("41"), func(s string) Result[int, parseErr] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Fail[int](oneof.New[parseErr](badInput{field: s}))
		}
		return Success[int, parseErr](n + 1)
	})

	if !r.IsSuccess() || r.Value() != 42 {
		t.Fatalf("expected 42, got success=%v v=%v", r.IsSuccess(), r.Value())
	}
}

func TestTry_ClassifiesError(t *testing.T) {
	t.Parallel()
	r := Try(Success[string, parseErr]("x"),
		func(s string) (int, error) {
			return 0, badInput{field: s}
		},
		wrapParse(t))

	if !r.IsFailure() {
		t.Fatalf("expected a failure")
	}
	bad, _, ok := r.Failure().NarrowFirst()
	if !ok || bad.field != "x" {
		t.Fatalf("expected badInput{x}, got ok=%v bad=%v", ok, bad)
	}
}

func TestTry_SuccessfulCall(t *testing.T) {
	t.Parallel()
	r := Try(Success[string, parseErr]("12"),
		func(s string) (int, error) { return strconv.Atoi(s) },
		wrapParse(t))

	if !r.IsSuccess() || r.Value() != 12 {
		t.Fatalf("expected 12, got success=%v v=%v", r.IsSuccess(), r.Value())
	}
}

func TestTee_RunsOnSuccessOnly(t *testing.T) {
	t.Parallel()
	seen := 0
	Tee(Success[int, parseErr](1), func(r Result[int, parseErr]) { seen = r.Value() })
	if seen != 1 {
		t.Fatalf("expected the side effect to observe the success")
	}

	Tee(Fail[int](oneof.New[parseErr](timeout{op: "t"})), func(r Result[int, parseErr]) {
		t.Fatalf("side effect must not run on a failure")
	})
}

func TestDoubleTee_RoutesByOutcome(t *testing.T) {
	t.Parallel()
	var got string
	DoubleTee(Success[int, parseErr](9),
		func(n int) { got = "success:" + strconv.Itoa(n) },
		func(parseErr) { t.Fatalf("failure handler must not run") })
	if got != "success:9" {
		t.Fatalf("expected the success handler, got %q", got)
	}

	DoubleTee(Fail[int](oneof.New[parseErr](badInput{field: "f"})),
		func(int) { t.Fatalf("success handler must not run") },
		func(f parseErr) { got = "failure:" + f.String() })
	if got != "failure:bad input: f" {
		t.Fatalf("expected the failure handler, got %q", got)
	}
}

func TestFinally_Reduces(t *testing.T) {
	t.Parallel()
	got := Finally(Success[int, parseErr](5),
		func(n int) string { return "ok" },
		func(parseErr) string { return "failed" })
	if got != "ok" {
		t.Fatalf("expected \"ok\", got %q", got)
	}

	got = Finally(Fail[int](oneof.New[parseErr](timeout{op: "w"})),
		func(int) string { return "ok" },
		func(parseErr) string { return "failed" })
	if got != "failed" {
		t.Fatalf("expected \"failed\", got %q", got)
	}
}

func TestWrap_UnrelatedErrorStaysOutside(t *testing.T) {
	t.Parallel()
	_, ok := oneof.Classify[parseErr](errors.New("unrelated"))
	if ok {
		t.Fatalf("expected an unrelated error not to classify into the parse set")
	}
}
