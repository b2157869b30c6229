package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// RegisterRequest carries the createUser arguments.
type RegisterRequest struct {
	Username       string `json:"username"`
	FavouriteGenre string `json:"favouriteGenre"`
	Password       string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(3, 64).Error("username must be 3-64 characters"),
		),
		validation.Field(&r.FavouriteGenre,
			validation.Required.Error("favouriteGenre is required"),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 128).Error("password must be 8-128 characters"),
		),
	)
}

// LoginRequest carries the login arguments.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// LoginResponse wraps the issued bearer token.
type LoginResponse struct {
	Token string `json:"value"`
}
