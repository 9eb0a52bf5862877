package solo

import (
	"errors"

	"github.com/ib-77/rescue/pkg/rescue"
)

// Catch recovers a failure whose error matches the declared type E, per
// errors.As: the error itself, anything in its wrap chain, or any value
// satisfying E when E is an interface. On match the handler runs exactly
// once with the matched value; (v, nil) becomes the new Success and a
// non-nil error becomes the new Failure (recovery is itself fallible and
// captured). Successes, raised failures and non-matching failures pass
// through unchanged.
//
// Declaring a broad E matches broadly: with E = error every failure matches,
// cancellation signals included. Prefer CatchNonCancel wherever the
// surrounding context can be cancelled.
func Catch[T any, E error](in rescue.Outcome[T], handler func(E) (T, error)) rescue.Outcome[T] {
	if in.IsSuccess() || in.IsRaised() {
		return in
	}

	var target E
	if !errors.As(in.Err(), &target) {
		return in
	}

	v, err := handler(target)
	if err != nil {
		return rescue.Failure[T](err)
	}
	return rescue.Success(v)
}

// CatchNonCancel is Catch with a cancellation exemption evaluated before the
// type match: a failure carrying a cancellation-category error is re-raised
// immediately. The handler is skipped and the outcome comes back raised, so
// every remaining operator passes it through and terminals surface the error
// raw. Only non-cancellation failures proceed to the declared-type match.
//
// This is the recommended dispatch wherever the computation runs under a
// cancellable context.
func CatchNonCancel[T any, E error](in rescue.Outcome[T], handler func(E) (T, error)) rescue.Outcome[T] {
	if in.IsSuccess() || in.IsRaised() {
		return in
	}

	if rescue.IsCancellation(in.Err()) {
		return rescue.RaiseFrom[T, T](in)
	}

	return Catch(in, handler)
}

// CatchAll recovers any failure, whatever its error type.
//
// Deprecated: CatchAll intercepts cancellation signals along with business
// errors, so a canceled computation comes back as a recovered value instead
// of stopping. Use CatchAllNonCancel unless recovering canceled work is
// exactly what the call site intends.
func CatchAll[T any](in rescue.Outcome[T], handler func(error) (T, error)) rescue.Outcome[T] {
	return Catch[T, error](in, handler)
}

// CatchAllNonCancel recovers any failure except a cancellation-category one,
// which it re-raises. The usual last operator of a chain that still wants an
// outcome rather than a plain value.
func CatchAllNonCancel[T any](in rescue.Outcome[T], handler func(error) (T, error)) rescue.Outcome[T] {
	return CatchNonCancel[T, error](in, handler)
}

// Recover is the non-catching sibling of Catch: same declared-type dispatch,
// but the transform has no error channel, so the recovery itself cannot
// produce a new failure. If the transform panics, the panic propagates; it
// is never converted back into an outcome. With a handler written against
// the plain error type, Recover applies to every failure:
//
//	out := solo.Recover(in, func(err error) int { return -1 })
func Recover[T any, E error](in rescue.Outcome[T], transform func(E) T) rescue.Outcome[T] {
	if in.IsSuccess() || in.IsRaised() {
		return in
	}

	var target E
	if !errors.As(in.Err(), &target) {
		return in
	}

	return rescue.Success(transform(target))
}

// RecoverCatching recovers any failure and captures a transform error as the
// new Failure; nothing raised inside the transform ever escapes the outcome.
func RecoverCatching[T any](in rescue.Outcome[T], transform func(error) (T, error)) rescue.Outcome[T] {
	return Catch[T, error](in, transform)
}

// Attempt tries alternative recoveries in order, each invoked with the
// original failure's error. The first alternative returning a nil error wins.
// If all alternatives fail, the result is a Failure joining the original
// error with every alternative's error. Like CatchAll, Attempt is a bare
// form: it runs for an un-raised cancellation failure too, so place it after
// the NonCancel operators in a cancellation-aware strategy.
func Attempt[T any](in rescue.Outcome[T], handlers ...func(error) (T, error)) rescue.Outcome[T] {
	if in.IsSuccess() || in.IsRaised() || in.IsEmpty() || len(handlers) == 0 {
		return in
	}

	cause := in.Err()
	err := cause
	for _, handler := range handlers {
		v, herr := handler(cause)
		if herr == nil {
			return rescue.Success(v)
		}

		e := rescue.GetErrors(err)
		err = errors.Join(append(e, herr)...)
	}

	return rescue.Failure[T](err)
}

// OrElse unwraps the outcome into the ordinary Go return pair, consulting
// fallback for failures. A raised failure skips the fallback and comes back
// as the raw error; a fallback returning a non-nil error ends the expression
// with that error (rescue.Rethrow is the stateless fallback that re-raises
// whatever it is given).
func OrElse[T any](in rescue.Outcome[T], fallback func(error) (T, error)) (T, error) {
	if in.IsSuccess() {
		return in.Value(), nil
	}

	if in.IsRaised() {
		var zero T
		return zero, in.Err()
	}

	return fallback(in.Err())
}

// GetOrElse unwraps the outcome to a plain value, consulting fallback for
// failures. A raised failure has no value to give and no error channel to
// give it through, so GetOrElse panics with it; use OrElse or Finally where
// cancellation can occur.
func GetOrElse[T any](in rescue.Outcome[T], fallback func(error) T) T {
	if in.IsSuccess() {
		return in.Value()
	}

	if in.IsRaised() {
		panic(in.Err())
	}

	return fallback(in.Err())
}

// Finally reduces the outcome to a final value through exactly one of the
// three handlers. It is the plain-value exit that can still tell a raised
// failure apart from a recoverable one.
func Finally[In, Out any](in rescue.Outcome[In],
	onSuccess func(In) Out,
	onFailure func(error) Out,
	onRaised func(error) Out) Out {

	if in.IsSuccess() {
		return onSuccess(in.Value())
	} else if in.IsRaised() {
		return onRaised(in.Err())
	} else {
		return onFailure(in.Err())
	}
}
