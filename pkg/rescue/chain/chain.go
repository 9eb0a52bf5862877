package chain

import (
	"github.com/ib-77/rescue/pkg/rescue"
	"github.com/ib-77/rescue/pkg/rescue/solo"
)

// Chain wraps one rescue.Outcome to host the fluent recovery operators. It
// is immutable: every operator returns a new chain (or a plain value), never
// mutates in place, so a chain value can be held and re-used safely.
type Chain[T any] struct {
	out rescue.Outcome[T]
}

// Wrap starts a chain from an existing outcome.
func Wrap[T any](out rescue.Outcome[T]) Chain[T] {
	return Chain[T]{out: out}
}

// FromValue starts a chain from an already-successful value.
func FromValue[T any](v T) Chain[T] {
	return Chain[T]{out: rescue.Success(v)}
}

// Try executes fn once and starts a chain from whatever it produced.
func Try[T any](fn func() (T, error)) Chain[T] {
	return Chain[T]{out: rescue.Try(fn)}
}

// From starts a chain from an already-produced value/error pair.
func From[T any](v T, err error) Chain[T] {
	return Chain[T]{out: rescue.From(v, err)}
}

// Outcome returns the underlying outcome, leaving the chain as it is.
func (c Chain[T]) Outcome() rescue.Outcome[T] {
	return c.out
}

// Get unwraps the chain into the ordinary Go return pair.
func (c Chain[T]) Get() (T, error) {
	return c.out.Get()
}

// Catch recovers a failure whose error matches the declared type E; see
// solo.Catch for the full dispatch contract. It is a package function
// because Go methods cannot introduce the extra type parameter.
func Catch[T any, E error](c Chain[T], handler func(E) (T, error)) Chain[T] {
	return Chain[T]{out: solo.Catch(c.out, handler)}
}

// CatchNonCancel is Catch with the cancellation exemption: a cancellation
// failure is re-raised past the rest of the chain instead of dispatched.
// See solo.CatchNonCancel.
func CatchNonCancel[T any, E error](c Chain[T], handler func(E) (T, error)) Chain[T] {
	return Chain[T]{out: solo.CatchNonCancel(c.out, handler)}
}

// CatchAll recovers any failure, whatever its error type.
//
// Deprecated: CatchAll intercepts cancellation signals along with business
// errors. Use CatchAllNonCancel unless recovering canceled work is exactly
// what the call site intends.
func (c Chain[T]) CatchAll(handler func(error) (T, error)) Chain[T] {
	return Chain[T]{out: solo.CatchAll(c.out, handler)}
}

// CatchAllNonCancel recovers any failure except a cancellation-category one,
// which it re-raises past the rest of the chain.
func (c Chain[T]) CatchAllNonCancel(handler func(error) (T, error)) Chain[T] {
	return Chain[T]{out: solo.CatchAllNonCancel(c.out, handler)}
}

// Recover ends recovery with a non-catching transform over any remaining
// failure: the transform cannot fail, and a panic inside it propagates.
// Successes and raised failures pass through unchanged.
func (c Chain[T]) Recover(transform func(error) T) rescue.Outcome[T] {
	return solo.Recover(c.out, transform)
}

// RecoverCatching ends recovery with a transform whose error return is
// captured as the new Failure rather than escaping.
func (c Chain[T]) RecoverCatching(transform func(error) (T, error)) rescue.Outcome[T] {
	return solo.RecoverCatching(c.out, transform)
}

// Attempt tries alternative recoveries in order; when none succeeds, the
// failure joins the original error with every alternative's error. See
// solo.Attempt for placement relative to the NonCancel operators.
func (c Chain[T]) Attempt(handlers ...func(error) (T, error)) Chain[T] {
	return Chain[T]{out: solo.Attempt(c.out, handlers...)}
}

// OrElse unwraps the chain, consulting fallback for a failure. A raised
// failure skips the fallback and comes back as the raw error. Pass
// rescue.Rethrow to surface unhandled errors instead of defaulting them.
func (c Chain[T]) OrElse(fallback func(error) (T, error)) (T, error) {
	return solo.OrElse(c.out, fallback)
}

// GetOrElse unwraps the chain to a plain value, consulting fallback for a
// failure. A raised failure panics; use OrElse or Finally where cancellation
// can occur.
func (c Chain[T]) GetOrElse(fallback func(error) T) T {
	return solo.GetOrElse(c.out, fallback)
}

// Ensure triggers side effects for the current state without changing it;
// nil handlers are skipped.
func (c Chain[T]) Ensure(onSuccess func(T), onFailure func(error), onRaised func(error)) Chain[T] {
	return Chain[T]{out: solo.Ensure(c.out, onSuccess, onFailure, onRaised)}
}

// Map transforms the successful value to a new value type.
func Map[T, U any](c Chain[T], onSuccess func(T) U) Chain[U] {
	return Chain[U]{out: solo.Map(c.out, onSuccess)}
}

// Switch moves the chain to a new value type via a function that already
// returns an outcome.
func Switch[T, U any](c Chain[T], onSuccess func(T) rescue.Outcome[U]) Chain[U] {
	return Chain[U]{out: solo.Switch(c.out, onSuccess)}
}

// TryMap lifts a plain fallible function over the successful value.
func TryMap[T, U any](c Chain[T], onSuccess func(T) (U, error)) Chain[U] {
	return Chain[U]{out: solo.TryMap(c.out, onSuccess)}
}

// Finally collapses the chain to a final value, delegating to solo.Finally.
func Finally[T, U any](c Chain[T],
	onSuccess func(T) U,
	onFailure func(error) U,
	onRaised func(error) U) U {
	return solo.Finally(c.out, onSuccess, onFailure, onRaised)
}
