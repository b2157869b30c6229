package book

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-backend/internal/domains/author"
)

// Book represents the core Book entity. Books are immutable once
// created; no exposed operation mutates or deletes them.
type Book struct {
	// Identity - Mongo ObjectID, exposed externally as an opaque hex string
	ID primitive.ObjectID `json:"id" bson:"_id,omitempty"`

	Title     string   `json:"title" bson:"title"`
	Published int      `json:"published" bson:"published"`
	Genres    []string `json:"genres" bson:"genres"`

	// Reference to the Author document; must resolve at creation time.
	AuthorID primitive.ObjectID `json:"-" bson:"author"`
}

// WithAuthor is the read projection: every book leaves the repository
// with its author document already joined.
type WithAuthor struct {
	Book   `bson:",inline"`
	Author author.Author `json:"author" bson:"author_doc"`
}

// Filter narrows listings. Zero values mean "no filter".
type Filter struct {
	AuthorID *primitive.ObjectID
	Genre    string
}
