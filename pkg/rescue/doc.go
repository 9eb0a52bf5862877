// Package rescue defines the Outcome[T] value at the heart of the library:
// the captured result of one attempted computation, either a Success with a
// value or a Failure with an error.
//
// Core pieces:
// - Try/From: run a fallible computation once (or adapt a (T, error) pair)
//   and capture what happened
// - Success/Failure/Raise: explicit constructors for recovery code
// - FailureFrom/RaiseFrom: carry a failure across a value-type change
// - IsCancellation: the predicate separating cooperative-cancellation
//   signals (context.Canceled, context.DeadlineExceeded) from business errors
// - Rethrow: the stateless OrElse fallback that surfaces an error unchanged
//
// A Failure can be in raised state: once a cancellation-exempt operator has
// re-raised it, no recovery operator will touch it again and terminals hand
// the error back raw. That is the library's whole contract with cooperative
// cancellation: a canceled computation must end as a canceled task, never as
// a recovered value.
//
// Recovery operators over raw outcomes live in package solo; the fluent
// wrapper lives in package chain.
package rescue
