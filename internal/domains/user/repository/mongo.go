package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"library-backend/internal/domains/user"
)

// mongoRepository implements user.Repository on the users collection.
type mongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository creates the users repository.
func NewMongoRepository(db *mongo.Database) user.Repository {
	return &mongoRepository{collection: db.Collection("users")}
}

func (r *mongoRepository) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, u)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, user.ErrUsernameTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	return u, nil
}

func (r *mongoRepository) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	var u user.User
	err := r.collection.FindOne(ctx, bson.M{"username": username}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return &u, nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*user.User, error) {
	var u user.User
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return &u, nil
}

func (r *mongoRepository) GetByIDs(ctx context.Context, ids []primitive.ObjectID) ([]user.User, error) {
	if len(ids) == 0 {
		return []user.User{}, nil
	}

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("find users by ids: %w", err)
	}
	defer cursor.Close(ctx)

	users := []user.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}
