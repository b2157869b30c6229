package book

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines the interface for Book data access operations.
// It also satisfies author.BookCounter.
type Repository interface {
	// Create inserts a new book. The author reference must already
	// resolve; the service guarantees that ordering.
	Create(ctx context.Context, book *Book) (*Book, error)

	// Find returns books matching the filter, each with its author
	// document eagerly joined. An empty filter returns every book.
	Find(ctx context.Context, filter Filter) ([]WithAuthor, error)

	// Count returns the number of books.
	Count(ctx context.Context) (int64, error)

	// CountByAuthor returns the number of books referencing one author.
	CountByAuthor(ctx context.Context, authorID primitive.ObjectID) (int64, error)

	// CountGroupedByAuthor returns book counts for every author in a
	// single aggregation. Authors without books are absent from the map.
	CountGroupedByAuthor(ctx context.Context) (map[primitive.ObjectID]int64, error)
}
