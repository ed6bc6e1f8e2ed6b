package core

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors - centralized error definitions
var (
	// Configuration errors
	ErrInvalidArgument = errors.New("invalid argument")

	// Input errors
	ErrNotFound = errors.New("input file not found")
	ErrRead     = errors.New("input could not be parsed")

	// Aggregation errors
	ErrMissingColumns = errors.New("required columns missing")
	ErrComputation    = errors.New("statistics computation failed")

	// Output errors
	ErrRender = errors.New("chart rendering failed")
)

// Error constructors with context
func NewInvalidArgumentError(field string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidArgument, field, reason)
}

func NewNotFoundError(path string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, path)
}

func NewReadError(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrRead, path, err)
}

func NewMissingColumnsError(columns []string) error {
	return fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(columns, ", "))
}

func NewComputationError(detail string, err error) error {
	if err == nil {
		return fmt.Errorf("%w: %s", ErrComputation, detail)
	}
	return fmt.Errorf("%w: %s: %v", ErrComputation, detail, err)
}

func NewRenderError(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrRender, path, err)
}

// Error checking helpers
func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsInputError(err error) bool {
	return errors.Is(err, ErrNotFound) || errors.Is(err, ErrRead)
}

func IsAggregationError(err error) bool {
	return errors.Is(err, ErrMissingColumns) || errors.Is(err, ErrComputation)
}
