package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	ErrNotFound = errors.New("resource not found")

	// Input errors
	ErrEmptyWorkbook  = errors.New("workbook has no signal rows")
	ErrMalformedRow   = errors.New("malformed signal row")
	ErrUnknownTier    = errors.New("unknown report tier")
	ErrMissingProject = errors.New("warehouse project identifier missing")
	ErrMissingDataset = errors.New("warehouse dataset identifier missing")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewRowError(row int, reason string) error {
	return fmt.Errorf("%w: row %d: %s", ErrMalformedRow, row, reason)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInputError(err error) bool {
	return errors.Is(err, ErrEmptyWorkbook) ||
		errors.Is(err, ErrMalformedRow) ||
		errors.Is(err, ErrUnknownTier) ||
		errors.Is(err, ErrMissingProject) ||
		errors.Is(err, ErrMissingDataset)
}
