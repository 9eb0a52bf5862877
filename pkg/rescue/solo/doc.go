// Package solo contains single-value, synchronous recovery primitives that
// operate on a raw rescue.Outcome[T]. These functions are the core the chain
// package wraps; use them directly when a full fluent expression is more
// than a call site needs.
//
// Dispatch family (first match wins, written order):
// - Catch/CatchNonCancel: recover a failure whose error matches a declared
//   type E (errors.As semantics), with or without the cancellation exemption
// - CatchAll/CatchAllNonCancel: the unconstrained forms over plain error
// - Recover: non-catching dispatch, the transform cannot fail
// - RecoverCatching: unconstrained recovery capturing the transform's error
// - Attempt: alternatives in order, all their errors joined when none works
//
// Terminals and helpers:
// - OrElse/GetOrElse: unwrap with a last-resort fallback
// - Finally: reduce to a value via success/failure/raised handlers
// - Map/Switch/TryMap/Ensure: value plumbing around a recovery core
//
// Every function evaluates the outcome it is given and returns a new one;
// nothing is deferred and nothing is retried.
package solo
