// Package errors provides domain-specific error types and sentinel errors
// for improved error handling across the application.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common scenarios.
// Use errors.Is() to check these errors in your code.
var (
	// ErrNotFound indicates a requested resource was not found.
	ErrNotFound = errors.New("resource not found")

	// ErrDuplicateID indicates the seed catalog contains two records with
	// the same normalized identifier. Detected at store construction.
	ErrDuplicateID = errors.New("duplicate identifier")

	// ErrEmptyField indicates a required seed record field is empty.
	// Detected at store construction.
	ErrEmptyField = errors.New("empty required field")

	// ErrInvalidInput indicates a caller provided invalid input.
	ErrInvalidInput = errors.New("invalid input")
)

// SeedError describes an invalid record in the seed catalog.
// It wraps one of the construction-time sentinel errors above.
type SeedError struct {
	Kind string // record kind: course, staff, faq
	ID   string // normalized identifier of the offending record
	Err  error
}

func (e *SeedError) Error() string {
	return fmt.Sprintf("invalid seed record (%s %q): %v", e.Kind, e.ID, e.Err)
}

func (e *SeedError) Unwrap() error {
	return e.Err
}

// NewSeedError creates a new seed error.
func NewSeedError(kind, id string, err error) *SeedError {
	return &SeedError{
		Kind: kind,
		ID:   id,
		Err:  err,
	}
}
