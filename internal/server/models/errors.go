package models

import "errors"

// Sentinel domain errors. The HTTP error handler maps each one to a
// deterministic status code and detail message.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUserInactive       = errors.New("user account is inactive")
	ErrContactNotFound    = errors.New("contact not found")
	ErrUserNotFound       = errors.New("user not found")
)
