package rescue

import (
	"context"
	"errors"
)

// IsCancellation reports whether err is a cooperative-cancellation signal:
// context.Canceled or context.DeadlineExceeded, directly or anywhere in its
// wrap chain. This is the predicate the cancellation-exempt operators use to
// decide that a failure must be re-raised instead of recovered.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

// Rethrow is a stateless fallback for OrElse that surfaces whatever error it
// receives, unchanged. Ending a chain with it turns fall-through into an
// explicit error instead of a silently swallowed default:
//
//	v, err := c.OrElse(rescue.Rethrow[int])
func Rethrow[T any](err error) (T, error) {
	var zero T
	return zero, err
}
