package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/ekazakov/tiersort/internal/errors"
)

func TestErrorMessage(t *testing.T) {
	err := errors.NotFound("club not found")
	if err.Error() != "club not found" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if err.Kind != errors.ErrNotFound {
		t.Errorf("unexpected kind: %v", err.Kind)
	}
}

func TestErrorWithUnderlying(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := errors.Internal(cause)

	if err.Error() != "internal error: disk full" {
		t.Errorf("unexpected message: %q", err.Error())
	}
	if !stderrors.Is(err, cause) {
		t.Error("expected errors.Is to find the underlying cause")
	}
}

func TestWrapPreservesKind(t *testing.T) {
	cause := fmt.Errorf("row missing")
	err := errors.Wrap(cause, errors.ErrNotFound, "player lookup failed")

	var appErr *errors.Error
	if !stderrors.As(err, &appErr) {
		t.Fatal("expected errors.As to match *errors.Error")
	}
	if appErr.Kind != errors.ErrNotFound {
		t.Errorf("expected ErrNotFound, got %v", appErr.Kind)
	}
	if stderrors.Unwrap(err) != cause {
		t.Error("expected Unwrap to return the cause")
	}
}

func TestFormattedConstructors(t *testing.T) {
	err := errors.NotFoundf("player %d not found", 7)
	if err.Error() != "player 7 not found" {
		t.Errorf("unexpected message: %q", err.Error())
	}

	err = errors.Validationf("slots must be positive, got %d", -1)
	if err.Kind != errors.ErrValidation {
		t.Errorf("unexpected kind: %v", err.Kind)
	}
}
