package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound  = "user not found"
	ErrMsgUsernameTaken = "username already taken"

	// Auth errors
	ErrMsgInvalidCredentials = "invalid credentials"
	ErrMsgInvalidSession     = "invalid or expired session"

	// Cooldown errors
	ErrMsgOnCooldown = "draw on cooldown"

	// Validation errors
	ErrMsgInvalidInput = "invalid input"

	// Database/System errors
	ErrMsgDatabaseError     = "database error"
	ErrMsgConnectionTimeout = "connection timeout"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrUserNotFound  = errors.New(ErrMsgUserNotFound)
	ErrUsernameTaken = errors.New(ErrMsgUsernameTaken)

	ErrInvalidCredentials = errors.New(ErrMsgInvalidCredentials)
	ErrInvalidSession     = errors.New(ErrMsgInvalidSession)

	ErrOnCooldown = errors.New(ErrMsgOnCooldown)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	ErrDatabaseError     = errors.New(ErrMsgDatabaseError)
	ErrConnectionTimeout = errors.New(ErrMsgConnectionTimeout)
)
