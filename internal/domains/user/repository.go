package user

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines the interface for User data access operations.
type Repository interface {
	// Create inserts a new user.
	// Errors: ErrUsernameTaken if the username is taken.
	Create(ctx context.Context, user *User) (*User, error)

	// GetByUsername retrieves a user by exact username.
	// Errors: ErrUserNotFound.
	GetByUsername(ctx context.Context, username string) (*User, error)

	// GetByID retrieves a user by ObjectID.
	// Errors: ErrUserNotFound.
	GetByID(ctx context.Context, id primitive.ObjectID) (*User, error)

	// GetByIDs retrieves users for the given IDs (friend resolution).
	// Missing IDs are skipped, not errors.
	GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]User, error)
}

// LoginLimiter bounds failed login attempts per username. Implemented
// over Redis by the cache infrastructure.
type LoginLimiter interface {
	Allow(ctx context.Context, username string) (bool, error)
	RecordFailure(ctx context.Context, username string) error
	Reset(ctx context.Context, username string) error
}
