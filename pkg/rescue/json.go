package rescue

import (
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
)

const (
	statusSuccess = "success"
	statusFailure = "failure"
	statusRaised  = "raised"
	statusEmpty   = "empty"
)

// snapshot is the wire form of an outcome diagnostic dump.
type snapshot struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Status    string    `json:"status"`
	Value     any       `json:"value,omitempty"`
	Error     string    `json:"error,omitempty"`
}

func (o Outcome[T]) status() string {
	switch {
	case o.isSuccess:
		return statusSuccess
	case o.isRaised:
		return statusRaised
	case o.err != nil:
		return statusFailure
	default:
		return statusEmpty
	}
}

// MarshalJSON renders the outcome as a diagnostic snapshot carrying identity,
// creation time, status and the value or error text. Outcomes are
// constructor-only, so there is no UnmarshalJSON counterpart.
func (o Outcome[T]) MarshalJSON() ([]byte, error) {
	s := snapshot{
		ID:        o.id,
		CreatedAt: o.createdAt,
		Status:    o.status(),
	}

	if o.isSuccess {
		s.Value = o.value
	} else if o.err != nil {
		s.Error = o.err.Error()
	}

	return json.Marshal(s)
}

// String returns the compact one-line form used in logs and test output.
func (o Outcome[T]) String() string {
	switch {
	case o.isSuccess:
		return fmt.Sprintf("Success(%v)", o.value)
	case o.isRaised:
		return fmt.Sprintf("Raised(%v)", o.err)
	case o.err != nil:
		return fmt.Sprintf("Failure(%v)", o.err)
	default:
		return "Empty"
	}
}
