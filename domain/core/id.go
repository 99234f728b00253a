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
	EvaluationID ID
	RequestID    ID
)

// String conversions for domain IDs
func (id EvaluationID) String() string { return ID(id).String() }
func (id RequestID) String() string    { return ID(id).String() }

// NewEvaluationID creates an identifier for a single test evaluation
func NewEvaluationID() EvaluationID {
	return EvaluationID(NewID())
}

// NewRequestID creates an identifier for an HTTP request
func NewRequestID() RequestID {
	return RequestID(NewID())
}

// ParseEvaluationID parses a string into EvaluationID
func ParseEvaluationID(s string) (EvaluationID, error) {
	if strings.TrimSpace(s) == "" {
		return "", fmt.Errorf("evaluation ID cannot be empty")
	}
	return EvaluationID(s), nil
}
