package book

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListFilter carries the allBooks arguments. Author is a name, not an
// ID; resolution happens inside the service.
type ListFilter struct {
	AuthorName string
	Genre      string
}

// Service defines business logic operations for the Book domain.
type Service interface {
	// Add creates a book, creating its author first when the name is
	// not known yet. Validation failures carry the offending input.
	Add(ctx context.Context, req CreateBookRequest) (*WithAuthor, error)

	// List returns books matching the filter. A filter naming an
	// unknown author yields an empty slice, never an error and never a
	// store query against a dangling reference.
	List(ctx context.Context, filter ListFilter) ([]WithAuthor, error)

	// Count returns the number of books.
	Count(ctx context.Context) (int64, error)

	// CountByAuthor returns the number of books referencing one author.
	CountByAuthor(ctx context.Context, authorID primitive.ObjectID) (int64, error)
}
