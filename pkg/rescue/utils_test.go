package rescue

import (
	"errors"
	"testing"
)

type nilableError struct{}

func (e *nilableError) Error() string { return "nilable" }

func TestIsNil(t *testing.T) {
	t.Parallel()
	if !IsNil(nil) {
		t.Fatalf("nil should be nil")
	}

	var typed *nilableError
	var iface error = typed
	if !IsNil(iface) {
		t.Fatalf("a typed-nil pointer in an interface should count as nil")
	}

	if IsNil(errors.New("real")) {
		t.Fatalf("a real error is not nil")
	}
}

func TestGetErrors(t *testing.T) {
	t.Parallel()
	if got := GetErrors(nil); len(got) != 0 {
		t.Fatalf("nil should yield no components, got %v", got)
	}

	single := errors.New("only")
	if got := GetErrors(single); len(got) != 1 || !errors.Is(got[0], single) {
		t.Fatalf("a single error should yield itself, got %v", got)
	}

	first := errors.New("first")
	second := errors.New("second")
	got := GetErrors(errors.Join(first, second))
	if len(got) != 2 || !errors.Is(got[0], first) || !errors.Is(got[1], second) {
		t.Fatalf("a joined error should yield its children in order, got %v", got)
	}
}
