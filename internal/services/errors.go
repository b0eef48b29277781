package services

import (
	"errors"
	"strings"
)

var (
	ErrNotFound           = errors.New("profile not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// ValidationError reports missing or malformed input fields.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ConflictError reports a duplicate-email violation as a domain error so the
// raw constraint failure never reaches a client.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

func newEmailConflict() *ConflictError {
	return &ConflictError{Message: "an account with that email already exists"}
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
