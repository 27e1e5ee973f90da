package service

import (
	"errors"
	"strings"

	"assessment-portal/internal/database"
)

var (
	ErrChildNotFound      = database.ErrChildNotFound
	ErrSessionNotFound    = database.ErrSessionNotFound
	ErrAdminNotFound      = errors.New("admin not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type FieldError struct {
	Field   string `json:"field" example:"mobile"`
	Message string `json:"message" example:"must be exactly 10 digits"`
}

// ValidationError reports rejected input. Fields is empty when the problem is
// not tied to a single field.
type ValidationError struct {
	Message string
	Fields  []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return e.Message
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+" "+f.Message)
	}
	return e.Message + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) orNil() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func invalid(message string) *ValidationError {
	return &ValidationError{Message: message}
}
