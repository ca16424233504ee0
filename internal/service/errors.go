package service

import "errors"

var (
	// ErrInvalidDataProvided wraps a validators.FieldErrors describing
	// every rejected field of a request.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned by Login for an unknown username
	// and for a wrong password alike.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)

// Reasons attached to FieldErrors produced by the services themselves
// rather than by request validation.
const (
	reasonUsernameTaken   = "A user with that username already exists."
	reasonPasswordTooLong = "Ensure this field has no more than 72 bytes."
)
