package domain

import (
	"errors"
	"strings"
)

// Sentinel errors shared by services, repositories and HTTP handlers.
var (
	// ErrValidation is matched by every *ValidationError.
	ErrValidation = errors.New("validation failed")
	// ErrDuplicate is returned when an RSVP with the same name (case-insensitive) already exists.
	ErrDuplicate = errors.New("an RSVP with this name already exists")
	// ErrStoreUnavailable is returned when the persistence store cannot be reached.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrIntegrity is returned when a record was inserted but could not be read back.
	ErrIntegrity = errors.New("record inserted but could not be retrieved")
	// ErrConfiguration is returned when a required server-side setting is missing.
	ErrConfiguration = errors.New("server configuration missing")
	// ErrAuthentication is returned when a credential check fails.
	ErrAuthentication = errors.New("invalid credentials")
	// ErrNotFound is returned by repositories when a lookup matches nothing.
	ErrNotFound = errors.New("not found")
)

// FieldError describes a single offending field of a submission.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrValidation.Error()
	}
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Field+": "+f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(msgs, "; ")
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// NewValidationError returns a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Message: message}}}
}
