package author

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Author represents the core Author entity.
// This is the domain model, independent of API concerns.
type Author struct {
	// Identity - Mongo ObjectID, exposed externally as an opaque hex string
	ID primitive.ObjectID `json:"id" bson:"_id,omitempty"`

	// Basic Information
	Name string `json:"name" bson:"name"` // Required, unique

	// Optional birth year
	Born *int `json:"born,omitempty" bson:"born,omitempty"`
}

// WithBookCount is the listing projection: an author plus the number of
// books referencing them. The count is computed per response, never stored.
type WithBookCount struct {
	Author
	BookCount int `json:"bookCount"`
}
