package outcome

import "github.com/ib-77/oneof/pkg/oneof"

// Chain is a minimal fluent wrapper over Result[T, E] for same-type
// pipelines.
type Chain[T any, E oneof.Set] struct {
	res Result[T, E]
}

func Start[T any, E oneof.Set](r Result[T, E]) Chain[T, E] {
	return Chain[T, E]{res: r}
}

func FromValue[T any, E oneof.Set](v T) Chain[T, E] {
	return Start(Success[T, E](v))
}

func (c Chain[T, E]) Result() Result[T, E] {
	return c.res
}

// Then composes functions that already return a Result
func (c Chain[T, E]) Then(onSuccess func(t T) Result[T, E]) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, E]{res: onSuccess(c.res.Value())}
}

// Map transforms the successful value to a new value
func (c Chain[T, E]) Map(onSuccess func(t T) T) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}
	return Chain[T, E]{res: Success[T, E](onSuccess(c.res.Value()))}
}

// ThenTry composes functions that return (T, error), classifying a non-nil
// error into the failure set via wrap
func (c Chain[T, E]) ThenTry(try func(t T) (T, error), wrap func(err error) E) Chain[T, E] {
	if c.res.IsFailure() {
		return c
	}

	u, err := try(c.res.Value())
	if err != nil {
		return Chain[T, E]{res: Fail[T](wrap(err))}
	}
	return Chain[T, E]{res: Success[T, E](u)}
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T, E]) Ensure(onSuccess func(T), onFailure func(E)) Chain[T, E] {
	if c.res.IsFailure() {
		if onFailure != nil {
			onFailure(c.res.Failure())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.res.Value())
	}
	return c
}

// Finally collapses the chain to a final value, delegating to Finally
func (c Chain[T, E]) Finally(
	onSuccess func(T) T,
	onFailure func(E) T,
) T {
	return Finally(c.res, onSuccess, onFailure)
}
