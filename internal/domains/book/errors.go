package book

import "errors"

var (
	// Validation Errors
	ErrInvalidTitle     = errors.New("book title is invalid")
	ErrInvalidPublished = errors.New("published year is invalid")
	ErrInvalidAuthor    = errors.New("author name is invalid")

	// Business Rule Errors
	ErrBookNotFound = errors.New("book not found")
)
