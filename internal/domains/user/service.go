package user

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service defines business logic operations for the User domain.
type Service interface {
	// Register creates a user with a bcrypt-hashed password.
	// Errors: validation errors on short username/password,
	// ErrUsernameTaken on duplicates.
	Register(ctx context.Context, req RegisterRequest) (*User, error)

	// Login verifies credentials and issues a bearer token. Unknown
	// username and wrong password both fail with ErrInvalidCredentials;
	// ErrTooManyAttempts once the limiter window is exhausted.
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)

	// GetProfile loads a user with friends resolved.
	// Errors: ErrUserNotFound.
	GetProfile(ctx context.Context, id primitive.ObjectID) (*Profile, error)
}
