package rescue

import "time"

type ValueProvider[T any] interface {
	// Value returns the successful result value
	Value() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can report a value or an error
type WithError[T any] interface {
	ValueProvider[T]
	// Err returns the error if the computation failed
	Err() error
	// IsSuccess returns true if the computation succeeded
	IsSuccess() bool
}

// WithRaise extends WithError with raised-state inspection
type WithRaise[T any] interface {
	WithError[T]
	// IsRaised returns true if the failure was re-raised past recovery
	IsRaised() bool
}
