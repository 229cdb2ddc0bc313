package outcome

import "github.com/ib-77/oneof/pkg/oneof"

func Map[In, Out any, E oneof.Set](input Result[In, E],
	onSuccess func(in In) Out) Result[Out, E] {

	if input.IsSuccess() {
		return Success[Out, E](onSuccess(input.Value()))
	}
	return FailFrom[In, Out](input)
}

func Then[In, Out any, E oneof.Set](input Result[In, E],
	onSuccess func(in In) Result[Out, E]) Result[Out, E] {

	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return FailFrom[In, Out](input)
}

// Try calls a function returning (Out, error) and classifies a non-nil
// error into the failure set via wrap.
func Try[In, Out any, E oneof.Set](input Result[In, E],
	onTryExecute func(in In) (Out, error),
	wrap func(err error) E) Result[Out, E] {

	if input.IsSuccess() {

		out, err := onTryExecute(input.Value())
		if err != nil {
			return Fail[Out](wrap(err))
		}

		return Success[Out, E](out)
	}

	return FailFrom[In, Out](input)
}

func Tee[T any, E oneof.Set](input Result[T, E],
	onSuccess func(r Result[T, E])) Result[T, E] {

	if input.IsSuccess() {
		onSuccess(input)
	}

	return input
}

func DoubleTee[T any, E oneof.Set](input Result[T, E],
	onSuccess func(r T),
	onFailure func(f E)) Result[T, E] {

	if input.IsSuccess() {
		onSuccess(input.Value())
	} else {
		onFailure(input.Failure())
	}

	return input
}

func Finally[In, Out any, E oneof.Set](input Result[In, E],
	onSuccess func(r In) Out,
	onFailure func(f E) Out) Out {

	if input.IsSuccess() {
		return onSuccess(input.Value())
	}
	return onFailure(input.Failure())
}
