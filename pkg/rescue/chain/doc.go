// Package chain provides the fluent form of the recovery operators: one
// Chain value carries the outcome from operator to operator, so a full
// recovery strategy reads top to bottom at the call site.
//
// Operators that keep the value type are methods; operators that introduce
// a second type parameter (Catch, CatchNonCancel, Map, Switch, TryMap,
// Finally) are package functions taking the chain first, because Go methods
// cannot add type parameters.
//
// A typical strategy:
//
//	v, err := chain.CatchNonCancel(
//		chain.Try(load),
//		func(e *os.PathError) (Config, error) { return defaults(), nil },
//	).OrElse(rescue.Rethrow)
//
// Everything delegates to package solo; use solo directly when composing
// without the wrapper.
package chain
