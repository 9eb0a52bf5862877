package rescue

import (
	"time"

	"github.com/google/uuid"
)

// Outcome holds the result of one attempted computation: a Success carrying
// a value or a Failure carrying an error. A Failure may additionally be in
// raised state, meaning a cancellation-exempt operator has re-raised it:
// recovery operators pass a raised outcome through untouched and terminal
// operators surface its error raw instead of consulting a fallback.
//
// An Outcome is immutable once constructed. Its identity and creation time
// are assigned at construction and survive type conversions, so one attempt
// can be correlated across a whole recovery chain.
type Outcome[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
	isRaised  bool
}

// Success wraps a value produced by a completed computation.
func Success[T any](v T) Outcome[T] {
	return Outcome[T]{
		value:     v,
		err:       nil,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Failure wraps the error a computation ended with. Cancellation errors are
// captured like any other; exemption happens in the recovery operators, not
// at construction.
func Failure[T any](err error) Outcome[T] {
	return Outcome[T]{
		err:       err,
		isSuccess: false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Raise wraps err as a failure that is already raised. Chains normally enter
// raised state through a cancellation-exempt operator; Raise exists for
// authors of custom operators that need the same short-circuit.
func Raise[T any](err error) Outcome[T] {
	return Outcome[T]{
		err:       err,
		isSuccess: false,
		isRaised:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailureFrom carries a non-success outcome across a value-type change,
// preserving error, raised state, identity and creation time.
func FailureFrom[In, Out any](from Outcome[In]) Outcome[Out] {
	return Outcome[Out]{
		err:       from.err,
		isRaised:  from.isRaised,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// RaiseFrom is FailureFrom with the raised state forced on, used by
// cancellation-exempt operators to re-raise a cancellation failure.
func RaiseFrom[In, Out any](from Outcome[In]) Outcome[Out] {
	return Outcome[Out]{
		err:       from.err,
		isRaised:  true,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

// Value returns the successful result value, or the zero value for a
// non-success outcome.
func (o Outcome[T]) Value() T {
	return o.value
}

func (o Outcome[T]) Err() error {
	return o.err
}

// Get unwraps the outcome into the ordinary Go return pair.
func (o Outcome[T]) Get() (T, error) {
	return o.value, o.err
}

// MustGet returns the value or panics with the failure's error.
func (o Outcome[T]) MustGet() T {
	if !o.isSuccess {
		panic(o.err)
	}
	return o.value
}

func (o Outcome[T]) IsSuccess() bool {
	return o.isSuccess
}

// IsFailure reports whether the computation ended with an error.
func (o Outcome[T]) IsFailure() bool {
	return !o.isSuccess && o.err != nil
}

// IsRaised reports whether the failure was re-raised by a
// cancellation-exempt operator and is no longer eligible for recovery.
func (o Outcome[T]) IsRaised() bool {
	return o.isRaised
}

// IsCanceled reports whether the outcome failed with a
// cancellation-category error (see IsCancellation).
func (o Outcome[T]) IsCanceled() bool {
	return !o.isSuccess && IsCancellation(o.err)
}

// IsEmpty reports whether o is the zero Outcome: neither success nor failure.
func (o Outcome[T]) IsEmpty() bool {
	return o.err == nil && !o.isSuccess
}

func (o Outcome[T]) CreatedAt() time.Time {
	return o.createdAt
}

func (o Outcome[T]) ID() uuid.UUID {
	return o.id
}
