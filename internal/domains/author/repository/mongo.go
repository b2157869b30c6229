package repository

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"library-backend/internal/domains/author"
)

// mongoRepository implements author.Repository on the authors collection.
type mongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository creates the authors repository.
func NewMongoRepository(db *mongo.Database) author.Repository {
	return &mongoRepository{collection: db.Collection("authors")}
}

func (r *mongoRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	if a.ID.IsZero() {
		a.ID = primitive.NewObjectID()
	}

	_, err := r.collection.InsertOne(ctx, a)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, author.ErrDuplicateName
		}
		return nil, fmt.Errorf("insert author: %w", err)
	}

	return a, nil
}

func (r *mongoRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*author.Author, error) {
	var a author.Author
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("find author by id: %w", err)
	}
	return &a, nil
}

func (r *mongoRepository) GetByName(ctx context.Context, name string) (*author.Author, error) {
	var a author.Author
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("find author by name: %w", err)
	}
	return &a, nil
}

func (r *mongoRepository) GetAll(ctx context.Context) ([]author.Author, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	defer cursor.Close(ctx)

	authors := []author.Author{}
	if err := cursor.All(ctx, &authors); err != nil {
		return nil, fmt.Errorf("decode authors: %w", err)
	}
	return authors, nil
}

func (r *mongoRepository) UpdateBornByName(ctx context.Context, name string, born int) (*author.Author, error) {
	var a author.Author
	err := r.collection.FindOneAndUpdate(ctx,
		bson.M{"name": name},
		bson.M{"$set": bson.M{"born": born}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&a)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("update author born year: %w", err)
	}
	return &a, nil
}

func (r *mongoRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count authors: %w", err)
	}
	return count, nil
}
