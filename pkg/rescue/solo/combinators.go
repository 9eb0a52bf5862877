package solo

import (
	"github.com/ib-77/rescue/pkg/rescue"
)

// Map transforms the successful value to a new value; failures convert
// through FailureFrom, keeping error, raised state and identity.
func Map[In, Out any](in rescue.Outcome[In], onSuccess func(In) Out) rescue.Outcome[Out] {
	if in.IsSuccess() {
		return rescue.Success(onSuccess(in.Value()))
	}
	return rescue.FailureFrom[In, Out](in)
}

// Switch moves from Outcome[In] to Outcome[Out] via a function that already
// returns an outcome.
func Switch[In, Out any](in rescue.Outcome[In], onSuccess func(In) rescue.Outcome[Out]) rescue.Outcome[Out] {
	if in.IsSuccess() {
		return onSuccess(in.Value())
	}
	return rescue.FailureFrom[In, Out](in)
}

// TryMap lifts a plain fallible function over the successful value,
// converting its error return into a failure.
func TryMap[In, Out any](in rescue.Outcome[In], onSuccess func(In) (Out, error)) rescue.Outcome[Out] {
	if in.IsSuccess() {
		return rescue.From(onSuccess(in.Value()))
	}
	return rescue.FailureFrom[In, Out](in)
}

// Ensure triggers side effects without changing the outcome. Nil handlers
// are skipped. The raised hook is the place to observe a cancellation on its
// way out, e.g. to release resources, without recovering it.
func Ensure[T any](in rescue.Outcome[T],
	onSuccess func(T),
	onFailure func(error),
	onRaised func(error)) rescue.Outcome[T] {

	if in.IsSuccess() {
		if onSuccess != nil {
			onSuccess(in.Value())
		}
		return in
	}

	if in.IsRaised() {
		if onRaised != nil {
			onRaised(in.Err())
		}
		return in
	}

	if onFailure != nil {
		onFailure(in.Err())
	}
	return in
}
