package outcome

import (
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/oneof/pkg/oneof"
)

// Result holds either a success value of T or a failure drawn from the
// closed set E.
type Result[T any, E oneof.Set] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	failure   E
	isSuccess bool
}

func Success[T any, E oneof.Set](v T) Result[T, E] {
	return Result[T, E]{
		value:     v,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any, E oneof.Set](f E) Result[T, E] {
	return Result[T, E]{
		failure:   f,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailFrom carries the failure and envelope of a result into another value
// type. The id and creation time travel with the failure.
func FailFrom[In, Out any, E oneof.Set](from Result[In, E]) Result[Out, E] {
	return Result[Out, E]{
		id:        from.id,
		createdAt: from.createdAt,
		failure:   from.failure,
		isSuccess: false,
	}
}

func (r Result[T, E]) Value() T {
	return r.value
}

// Failure returns the failure set. Meaningful only when IsFailure reports
// true; on a success it is the zero container.
func (r Result[T, E]) Failure() E {
	return r.failure
}

func (r Result[T, E]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T, E]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T, E]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T, E]) Id() uuid.UUID {
	return r.id
}
