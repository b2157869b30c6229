package author

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines the interface for Author data access operations.
// The abstraction keeps services testable against in-memory fakes.
type Repository interface {
	// Create inserts a new author.
	// Errors: ErrDuplicateName if the name is taken.
	Create(ctx context.Context, author *Author) (*Author, error)

	// GetByID retrieves an author by ObjectID.
	// Errors: ErrAuthorNotFound.
	GetByID(ctx context.Context, id primitive.ObjectID) (*Author, error)

	// GetByName retrieves an author by exact name.
	// Errors: ErrAuthorNotFound.
	GetByName(ctx context.Context, name string) (*Author, error)

	// GetAll returns every author, ordered by name.
	GetAll(ctx context.Context) ([]Author, error)

	// UpdateBornByName sets the born year of the named author and
	// returns the updated document. Never creates.
	// Errors: ErrAuthorNotFound.
	UpdateBornByName(ctx context.Context, name string, born int) (*Author, error)

	// Count returns the number of authors.
	Count(ctx context.Context) (int64, error)
}
