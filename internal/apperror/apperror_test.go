package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestSentinelMatching(t *testing.T) {
	if !errors.Is(NotFound("question", 7), ErrNotFound) {
		t.Error("NotFound should match ErrNotFound")
	}
	if !errors.Is(ValidationFailed("title", "title is required"), ErrValidation) {
		t.Error("ValidationFailed should match ErrValidation")
	}
	if !errors.Is(StoreUnavailable("cast vote", errors.New("conn refused")), ErrStoreUnavailable) {
		t.Error("StoreUnavailable should match ErrStoreUnavailable")
	}
	if errors.Is(NotFound("user", 1), ErrValidation) {
		t.Error("NotFound should not match ErrValidation")
	}
}

func TestSentinelMatchingThroughWrap(t *testing.T) {
	wrapped := fmt.Errorf("loading vote state: %w", NotFound("answer", 3))
	if !errors.Is(wrapped, ErrNotFound) {
		t.Error("sentinel should survive an extra wrap")
	}

	var appErr *AppError
	if !errors.As(wrapped, &appErr) {
		t.Fatal("AppError should be recoverable with errors.As")
	}
	if appErr.Message != "answer 3 not found" {
		t.Errorf("unexpected message: %q", appErr.Message)
	}
}

func TestValidationFieldCarried(t *testing.T) {
	err := ValidationFailed("direction", "direction must be up or down")
	if err.Field != "direction" {
		t.Errorf("Field = %q, want %q", err.Field, "direction")
	}
	if err.Error() != "direction must be up or down" {
		t.Errorf("Error() = %q", err.Error())
	}
}
