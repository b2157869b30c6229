package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateBookRequest carries the addBook arguments.
type CreateBookRequest struct {
	Title      string   `json:"title"`
	Published  int      `json:"published"`
	AuthorName string   `json:"author"`
	Genres     []string `json:"genres"`
}

func (r CreateBookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(2, 255).Error("title must be 2-255 characters"),
		),
		validation.Field(&r.AuthorName,
			validation.Required.Error("author is required"),
			validation.Length(4, 255).Error("author name must be 4-255 characters"),
		),
		validation.Field(&r.Genres,
			validation.Each(validation.Required, validation.Length(1, 64)),
		),
	)
}
