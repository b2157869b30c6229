package author

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BookCounter supplies per-author book counts. Implemented by the book
// repository; declared here so the author service does not depend on the
// book domain package.
type BookCounter interface {
	CountByAuthor(ctx context.Context, authorID primitive.ObjectID) (int64, error)
	CountGroupedByAuthor(ctx context.Context) (map[primitive.ObjectID]int64, error)
}

// Service defines business logic operations for the Author domain.
type Service interface {
	// GetByName retrieves an author by exact name.
	// Errors: ErrAuthorNotFound.
	GetByName(ctx context.Context, name string) (*Author, error)

	// GetByID retrieves an author by ObjectID.
	// Errors: ErrAuthorNotFound.
	GetByID(ctx context.Context, id primitive.ObjectID) (*Author, error)

	// FindOrCreate returns the author with the given name, creating one
	// when absent. The two steps are not atomic; a concurrent create of
	// the same name resolves to ErrDuplicateName from the unique index,
	// never to a silent duplicate.
	FindOrCreate(ctx context.Context, name string) (*Author, error)

	// List returns all authors with their book counts, batched into a
	// single aggregation instead of one count query per author.
	List(ctx context.Context) ([]WithBookCount, error)

	// EditBorn sets the born year of the named author.
	// Errors: ErrAuthorNotFound (the caller renders it as null, not as
	// a failure), ErrInvalidName on empty name.
	EditBorn(ctx context.Context, name string, born int) (*Author, error)

	// Count returns the number of authors.
	Count(ctx context.Context) (int64, error)
}
