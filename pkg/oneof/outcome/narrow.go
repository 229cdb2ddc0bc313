package outcome

import "github.com/ib-77/oneof/pkg/oneof"

// The NarrowN functions peel one member off the failure side of a result.
// A success passes through untouched as the residual result; a failure
// holding the probed member is returned bare; any other failure is
// re-wrapped over the residual set. The envelope (id, creation time) is
// preserved across the re-wrap.

// renarrow lifts a container narrow onto the failure side of a result.
func renarrow[T, M any, E, R oneof.Set](r Result[T, E], narrow func(E) (M, R, bool)) (M, Result[T, R], bool) {
	var zero M
	if r.isSuccess {
		return zero, Result[T, R]{
			id:        r.id,
			createdAt: r.createdAt,
			value:     r.value,
			isSuccess: true,
		}, false
	}

	m, rest, ok := narrow(r.failure)
	if ok {
		return m, Result[T, R]{}, true
	}
	return zero, Result[T, R]{
		id:        r.id,
		createdAt: r.createdAt,
		failure:   rest,
	}, false
}

func NarrowFirst2[T, A, B any](r Result[T, oneof.OneOf2[A, B]]) (A, Result[T, oneof.OneOf1[B]], bool) {
	return renarrow(r, oneof.OneOf2[A, B].NarrowFirst)
}

func NarrowSecond2[T, A, B any](r Result[T, oneof.OneOf2[A, B]]) (B, Result[T, oneof.OneOf1[A]], bool) {
	return renarrow(r, oneof.OneOf2[A, B].NarrowSecond)
}

func NarrowFirst3[T, A, B, C any](r Result[T, oneof.OneOf3[A, B, C]]) (A, Result[T, oneof.OneOf2[B, C]], bool) {
	return renarrow(r, oneof.OneOf3[A, B, C].NarrowFirst)
}

func NarrowSecond3[T, A, B, C any](r Result[T, oneof.OneOf3[A, B, C]]) (B, Result[T, oneof.OneOf2[A, C]], bool) {
	return renarrow(r, oneof.OneOf3[A, B, C].NarrowSecond)
}

func NarrowThird3[T, A, B, C any](r Result[T, oneof.OneOf3[A, B, C]]) (C, Result[T, oneof.OneOf2[A, B]], bool) {
	return renarrow(r, oneof.OneOf3[A, B, C].NarrowThird)
}

func NarrowFirst4[T, A, B, C, D any](r Result[T, oneof.OneOf4[A, B, C, D]]) (A, Result[T, oneof.OneOf3[B, C, D]], bool) {
	return renarrow(r, oneof.OneOf4[A, B, C, D].NarrowFirst)
}

func NarrowSecond4[T, A, B, C, D any](r Result[T, oneof.OneOf4[A, B, C, D]]) (B, Result[T, oneof.OneOf3[A, C, D]], bool) {
	return renarrow(r, oneof.OneOf4[A, B, C, D].NarrowSecond)
}

func NarrowThird4[T, A, B, C, D any](r Result[T, oneof.OneOf4[A, B, C, D]]) (C, Result[T, oneof.OneOf3[A, B, D]], bool) {
	return renarrow(r, oneof.OneOf4[A, B, C, D].NarrowThird)
}

func NarrowFourth4[T, A, B, C, D any](r Result[T, oneof.OneOf4[A, B, C, D]]) (D, Result[T, oneof.OneOf3[A, B, C]], bool) {
	return renarrow(r, oneof.OneOf4[A, B, C, D].NarrowFourth)
}

func NarrowFirst5[T, A, B, C, D, E any](r Result[T, oneof.OneOf5[A, B, C, D, E]]) (A, Result[T, oneof.OneOf4[B, C, D, E]], bool) {
	return renarrow(r, oneof.OneOf5[A, B, C, D, E].NarrowFirst)
}

func NarrowSecond5[T, A, B, C, D, E any](r Result[T, oneof.OneOf5[A, B, C, D, E]]) (B, Result[T, oneof.OneOf4[A, C, D, E]], bool) {
	return renarrow(r, oneof.OneOf5[A, B, C, D, E].NarrowSecond)
}

func NarrowThird5[T, A, B, C, D, E any](r Result[T, oneof.OneOf5[A, B, C, D, E]]) (C, Result[T, oneof.OneOf4[A, B, D, E]], bool) {
	return renarrow(r, oneof.OneOf5[A, B, C, D, E].NarrowThird)
}

func NarrowFourth5[T, A, B, C, D, E any](r Result[T, oneof.OneOf5[A, B, C, D, E]]) (D, Result[T, oneof.OneOf4[A, B, C, E]], bool) {
	return renarrow(r, oneof.OneOf5[A, B, C, D, E].NarrowFourth)
}

func NarrowFifth5[T, A, B, C, D, E any](r Result[T, oneof.OneOf5[A, B, C, D, E]]) (E, Result[T, oneof.OneOf4[A, B, C, D]], bool) {
	return renarrow(r, oneof.OneOf5[A, B, C, D, E].NarrowFifth)
}
