package rescue

// Try executes fn exactly once and captures what it produced: Success on a
// nil error, Failure otherwise. The computation is never re-evaluated and
// nothing is retried. A cancellation error returned by fn is captured as an
// ordinary Failure here; keeping it out of recovery handlers is the job of
// the cancellation-exempt operators.
func Try[T any](fn func() (T, error)) Outcome[T] {
	v, err := fn()
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}

// From adapts an already-produced Go return pair into an Outcome:
//
//	out := rescue.From(strconv.Atoi(s))
func From[T any](v T, err error) Outcome[T] {
	if err != nil {
		return Failure[T](err)
	}
	return Success(v)
}
