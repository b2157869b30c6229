package author

import "errors"

var (
	// Validation Errors
	ErrInvalidName = errors.New("author name is invalid")

	// Business Rule Errors
	ErrAuthorNotFound = errors.New("author not found")
	ErrDuplicateName  = errors.New("author with this name already exists")
)
