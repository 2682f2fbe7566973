package apperr

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrorKindMatching(t *testing.T) {
	err := fmt.Errorf("dispatch: %w", New(ErrIndex, "Task number must be between 1 and 3."))
	if !errors.Is(err, ErrIndex) {
		t.Error("expected ErrIndex")
	}
	if errors.Is(err, ErrParse) {
		t.Error("did not expect ErrParse")
	}
	if !IsUserError(err) {
		t.Error("index errors are user errors")
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ErrSave, "Failed to save tasks:", cause)
	if !errors.Is(err, cause) || !errors.Is(err, ErrSave) {
		t.Error("expected both the kind and the cause to match")
	}
	if got := err.Error(); got != "Failed to save tasks: disk full" {
		t.Errorf("Error() = %q", got)
	}
	if IsUserError(err) {
		t.Error("save failures are not user errors")
	}
}

func TestCorruptedError(t *testing.T) {
	err := error(&CorruptedError{Line: "X | 0 | what"})
	if !errors.Is(err, ErrCorrupted) {
		t.Error("expected ErrCorrupted")
	}
	var ce *CorruptedError
	if !errors.As(err, &ce) || ce.Line != "X | 0 | what" {
		t.Errorf("errors.As failed: %v", err)
	}
}
