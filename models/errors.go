package models

import "errors"

// Authentication errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists, you can log in")
	ErrInvalidCredentials = errors.New("invalid password")
)

// OTP errors
var (
	ErrOTPInvalid = errors.New("invalid OTP")
	ErrOTPExpired = errors.New("invalid or expired OTP")
)

// Token errors
var (
	ErrTokenInvalid = errors.New("invalid or expired token")
)

// Listing errors
var (
	ErrListingNotFound = errors.New("listing not found")
	ErrNotOwner        = errors.New("only the listing owner may modify it")
)

// ValidationError marks malformed or out-of-range input. The message is safe
// to surface to the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidationError(message string) error {
	return &ValidationError{Message: message}
}
