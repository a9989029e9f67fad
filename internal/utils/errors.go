package utils

import "errors"

// Common application errors used across services.
var (
	ErrNotFound           = errors.New("NOT_FOUND")
	ErrInvalidCredentials = errors.New("INVALID_CREDENTIALS")
	ErrEmailTaken         = errors.New("EMAIL_TAKEN")
	ErrInvalidStatus      = errors.New("INVALID_STATUS")
	ErrPasswordTooShort   = errors.New("PASSWORD_TOO_SHORT")
)

// ValidationError marks a submission that is missing a required field.
// Field is the JSON name of the first missing field.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " is required"
}
