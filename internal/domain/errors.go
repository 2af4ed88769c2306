package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
	ErrValidation    = errors.New("validation error")

	// ErrUnreachable marks a cloud call that failed on the network or timed out.
	ErrUnreachable = errors.New("cloud unreachable")
	// ErrInvalidCredential is the only rejection a caller ever sees for a bad
	// login; it never says whether the email exists.
	ErrInvalidCredential = errors.New("invalid email or password")
	ErrPolicyViolation   = errors.New("policy violation")
	ErrDataAnomaly       = errors.New("data anomaly")
)

// ErrAccountBlocked is returned for a login attempt on a locked-out account.
var ErrAccountBlocked = fmt.Errorf("account blocked after too many failed attempts: %w", ErrPolicyViolation)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// TransitionError is returned when a report status change is not an edge of
// the status graph.
type TransitionError struct {
	From StatusID
	To   StatusID
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal status transition: %s -> %s", e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrPolicyViolation }

// AnomalyError describes a cloud document that could not be mapped onto a
// local record.
type AnomalyError struct {
	ExternalID string
	Field      string
	Reason     string
}

func (e *AnomalyError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("document %s: %s", e.ExternalID, e.Reason)
	}
	return fmt.Sprintf("document %s: field %q: %s", e.ExternalID, e.Field, e.Reason)
}

func (e *AnomalyError) Unwrap() error { return ErrDataAnomaly }
