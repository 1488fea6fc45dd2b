package core

import (
	"testing"
)

// TestIsNotFoundError tests not-found classification through wrapping
func TestIsNotFoundError(t *testing.T) {
	err := NewNotFoundError("report", "abc-123")
	if !IsNotFoundError(err) {
		t.Errorf("Expected constructed not-found error to classify as not found: %v", err)
	}
	if IsNotFoundError(ErrMalformedRow) {
		t.Error("Expected malformed row error to not classify as not found")
	}
}

// TestIsInputError tests input error classification
func TestIsInputError(t *testing.T) {
	inputErrs := []error{
		ErrEmptyWorkbook,
		ErrUnknownTier,
		ErrMissingProject,
		ErrMissingDataset,
		NewRowError(3, "bad score"),
	}
	for _, err := range inputErrs {
		if !IsInputError(err) {
			t.Errorf("Expected %v to classify as an input error", err)
		}
	}

	if IsInputError(ErrNotFound) {
		t.Error("Expected not-found error to not classify as an input error")
	}
}
