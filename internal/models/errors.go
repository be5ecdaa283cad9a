package models

import "errors"

// Sentinel errors shared across services and translated to HTTP status codes
// at the handler boundary.
var (
	ErrNotFound           = errors.New("not found")
	ErrMalformedID        = errors.New("malformatted id")
	ErrDuplicateUsername  = errors.New("username must be unique")
	ErrTokenInvalid       = errors.New("token invalid")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenMissing       = errors.New("token missing or invalid")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrNotOwner           = errors.New("you are not authorized to delete this blog")
)

// ValidationError reports a violated field constraint. The message is sent
// verbatim to the client, so it must name the constraint.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError creates a ValidationError with the given message.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{Message: message}
}
