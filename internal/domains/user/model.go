package user

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents the core User entity.
type User struct {
	// Identity - Mongo ObjectID, exposed externally as an opaque hex string
	ID primitive.ObjectID `json:"id" bson:"_id,omitempty"`

	Username       string `json:"username" bson:"username"` // Required, unique, min 3 chars
	FavouriteGenre string `json:"favouriteGenre" bson:"favourite_genre"`

	// Never leaves the domain layer
	PasswordHash string `json:"-" bson:"password_hash"`

	// References to other users
	FriendIDs []primitive.ObjectID `json:"-" bson:"friends,omitempty"`
}

// Profile is a user with the friends references resolved. It is what
// the authorization gate places in request context and what `me` returns.
type Profile struct {
	User
	Friends []User `json:"friends"`
}
