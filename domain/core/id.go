package core

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ID represents a domain identifier
type ID string

// NewID creates a new unique identifier using UUID v7 for time-ordered generation
func NewID() ID {
	// Use UUID v7 for time-ordered, sortable IDs
	// Falls back to v4 if v7 is not available (for compatibility)
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to v4 if v7 fails
		id = uuid.New()
	}
	return ID(id.String())
}

// String returns the string representation
func (id ID) String() string {
	return string(id)
}

// IsEmpty checks if the ID is empty
func (id ID) IsEmpty() bool {
	return id == ""
}

// Domain-specific ID types
type (
	SignalID   ID
	ReportID   ID
	MetricKey  ID
	ModuleName string
)

// String conversions for domain IDs
func (id SignalID) String() string  { return ID(id).String() }
func (id ReportID) String() string  { return ID(id).String() }
func (k MetricKey) String() string  { return ID(k).String() }
func (m ModuleName) String() string { return string(m) }

// ParseSignalID parses a string into SignalID
func ParseSignalID(s string) (SignalID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("signal ID cannot be empty")
	}
	return SignalID(s), nil
}

// ParseMetricKey parses a string into MetricKey
func ParseMetricKey(s string) (MetricKey, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("metric key cannot be empty")
	}
	return MetricKey(s), nil
}
