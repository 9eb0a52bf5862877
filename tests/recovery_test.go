package tests

import (
	"context"
	"errors"
	"fmt"
	"github.com/ib-77/rescue/pkg/rescue"
	"github.com/ib-77/rescue/pkg/rescue/chain"
	"github.com/ib-77/rescue/pkg/rescue/solo"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type profile struct {
	ID   string
	Name string
	Plan string
}

type notFoundError struct {
	id string
}

func (e *notFoundError) Error() string { return "profile not found: " + e.id }

type storeError struct {
	op string
}

func (e *storeError) Error() string { return "profile store failed during " + e.op }

// TestProfileLookupRecovery runs a full strategy over a lookup that fails
// with a typed error: the matching handler substitutes a guest profile and
// the terminal unwrap returns it as a plain value.
func TestProfileLookupRecovery(t *testing.T) {
	notFoundRan := false
	storeRan := false

	c := chain.Try(func() (profile, error) {
		return loadProfile(context.Background(), "u-404")
	})
	c = chain.CatchNonCancel(c, func(e *storeError) (profile, error) {
		storeRan = true
		return profile{}, fmt.Errorf("retry later: %w", e)
	})
	c = chain.CatchNonCancel(c, func(e *notFoundError) (profile, error) {
		notFoundRan = true
		return guestProfile(e.id), nil
	})

	p, err := c.OrElse(rescue.Rethrow[profile])

	assert.NoError(t, err)
	assert.Equal(t, "guest", p.Name)
	assert.Equal(t, "free", p.Plan)
	assert.True(t, notFoundRan)
	assert.False(t, storeRan, "the store handler must not see a not-found failure")
}

// TestCancellationEscapesRecovery cancels the context while the lookup is
// still waiting. Every handler in the strategy is cancellation-exempt, so
// none may run and the raw cancellation error must reach the caller.
func TestCancellationEscapesRecovery(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	timer := time.AfterFunc(10*time.Millisecond, cancel)
	defer timer.Stop()
	defer cancel()

	handled := false

	c := chain.Try(func() (profile, error) {
		return loadProfileSlow(ctx, "u-1", 100*time.Millisecond)
	})
	c = chain.CatchNonCancel(c, func(e *notFoundError) (profile, error) {
		handled = true
		return guestProfile(e.id), nil
	})
	c = c.CatchAllNonCancel(func(err error) (profile, error) {
		handled = true
		return profile{}, nil
	})

	out := c.Outcome()
	assert.True(t, out.IsRaised())
	assert.True(t, out.IsCanceled())

	p, err := c.OrElse(rescue.Rethrow[profile])

	assert.False(t, handled, "no exempt handler may absorb a cancellation")
	assert.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, profile{}, p)
}

// TestBatchReport folds a mixed batch of lookups into report lines through
// Finally, counting how each outcome was routed.
func TestBatchReport(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel() // already canceled: the last lookup fails with ctx.Err()

	ids := []string{"u-1", "u-404", "u-oops", "u-canceled"}
	lookups := map[string]func() (profile, error){
		"u-1":        func() (profile, error) { return profile{ID: "u-1", Name: "ada", Plan: "pro"}, nil },
		"u-404":      func() (profile, error) { return profile{}, &notFoundError{id: "u-404"} },
		"u-oops":     func() (profile, error) { return profile{}, &storeError{op: "select"} },
		"u-canceled": func() (profile, error) { return loadProfileSlow(ctx, "u-canceled", time.Millisecond) },
	}

	var report []string
	recovered := 0
	raised := 0

	for _, id := range ids {
		c := chain.CatchNonCancel(chain.Try(lookups[id]), func(e *notFoundError) (profile, error) {
			return guestProfile(e.id), nil
		})

		line := chain.Finally(c,
			func(p profile) string { return fmt.Sprintf("%s: plan=%s", p.Name, p.Plan) },
			func(err error) string { return "unrecovered: " + err.Error() },
			func(err error) string { raised++; return "canceled: " + err.Error() },
		)
		if strings.HasPrefix(line, "guest") {
			recovered++
		}
		report = append(report, line)
	}

	fmt.Println("Batch report:")
	for i, line := range report {
		fmt.Printf("%d. %s\n", i+1, line)
	}

	assert.Equal(t, len(ids), len(report))
	assert.Equal(t, 1, recovered)
	assert.Equal(t, 1, raised)
	assert.Contains(t, report[0], "ada")
	assert.Contains(t, report[2], "unrecovered")
}

// TestOutcomeSnapshot checks the diagnostic JSON form produced for logs.
func TestOutcomeSnapshot(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out := solo.CatchAllNonCancel(
		rescue.Try(func() (profile, error) { return loadProfileSlow(ctx, "u-9", time.Millisecond) }),
		func(err error) (profile, error) { return profile{}, nil },
	)

	data, err := out.MarshalJSON()
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"status":"raised"`)
	assert.Contains(t, string(data), context.Canceled.Error())
	assert.Equal(t, fmt.Sprintf("Raised(%v)", out.Err()), out.String())
}

// loadProfile simulates the primary store: it only knows u-1.
func loadProfile(_ context.Context, id string) (profile, error) {
	if id == "u-1" {
		return profile{ID: id, Name: "ada", Plan: "pro"}, nil
	}
	return profile{}, &notFoundError{id: id}
}

// loadProfileSlow waits for the store round trip or the context, whichever
// ends first.
func loadProfileSlow(ctx context.Context, id string, wait time.Duration) (profile, error) {
	select {
	case <-time.After(wait):
		return loadProfile(ctx, id)
	case <-ctx.Done():
		return profile{}, ctx.Err()
	}
}

func guestProfile(id string) profile {
	return profile{ID: id, Name: "guest", Plan: "free"}
}
