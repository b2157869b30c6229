package user

import "errors"

// Repository-level errors
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already exists")
)

// Service-level (business logic) errors
var (
	// Deliberately covers both "no such user" and "bad password" so the
	// response does not reveal which usernames exist.
	ErrInvalidCredentials = errors.New("wrong credentials")

	ErrTooManyAttempts = errors.New("too many login attempts, please try again later")
)
