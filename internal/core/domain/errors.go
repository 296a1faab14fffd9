package domain

import "errors"

var (
	// ErrUserNotFound is returned when a lookup by id or email matches nothing.
	ErrUserNotFound = errors.New("user not found")
	// ErrUserExists is returned when a create would violate email uniqueness.
	ErrUserExists = errors.New("user already registered")
	// ErrInvalidCredentials is returned when a password does not match the
	// stored hash, or when sign-in input is structurally unusable.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPasswordMismatch is returned when password and confirmation differ.
	ErrPasswordMismatch = errors.New("password and confirmation do not match")
	// ErrInvalidRole is returned when a role outside the enumeration is submitted.
	ErrInvalidRole = errors.New("invalid role")
	// ErrSessionInvalid is returned when a session token no longer resolves
	// to a live user; the caller must force re-authentication.
	ErrSessionInvalid = errors.New("session no longer valid")
	// ErrUnauthorized is returned when a non-admin attempts a management
	// operation. It is an explicit variant, not a silent fall-through.
	ErrUnauthorized = errors.New("operation not permitted for role")
	// ErrEmptyFeedback is returned when a review is submitted without content.
	ErrEmptyFeedback = errors.New("feedback must not be empty")
)
