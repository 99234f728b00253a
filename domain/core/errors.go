package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Parse errors
	ErrParse           = errors.New("sample parse failed")
	ErrEmptyInput      = fmt.Errorf("%w: input is empty", ErrParse)
	ErrNoNumericTokens = fmt.Errorf("%w: no numeric values found", ErrParse)

	// Evaluation errors
	ErrInsufficientData = errors.New("insufficient data for analysis")
	ErrDegenerateInput  = errors.New("degenerate input: standard error is zero")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid test configuration")
)

// Error constructors with context
func NewParseError(token string) error {
	return fmt.Errorf("%w: %q is not numeric", ErrParse, token)
}

func NewInsufficientDataError(n int) error {
	return fmt.Errorf("%w: need at least 2 observations, got %d", ErrInsufficientData, n)
}

func NewConfigError(field string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidConfig, field, reason)
}

// Error checking helpers
func IsParseError(err error) bool {
	return errors.Is(err, ErrParse)
}

func IsInsufficientDataError(err error) bool {
	return errors.Is(err, ErrInsufficientData)
}

func IsDegenerateInputError(err error) bool {
	return errors.Is(err, ErrDegenerateInput)
}

func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}
