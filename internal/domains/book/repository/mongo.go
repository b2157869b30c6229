package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"library-backend/internal/domains/book"
)

// mongoRepository implements book.Repository on the books collection.
type mongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository creates the books repository.
func NewMongoRepository(db *mongo.Database) book.Repository {
	return &mongoRepository{collection: db.Collection("books")}
}

func (r *mongoRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	if b.Genres == nil {
		b.Genres = []string{}
	}

	_, err := r.collection.InsertOne(ctx, b)
	if err != nil {
		return nil, fmt.Errorf("insert book: %w", err)
	}

	return b, nil
}

// Find joins each book with its author document in one aggregation
// round trip ($lookup + $unwind) instead of a second query per book.
func (r *mongoRepository) Find(ctx context.Context, filter book.Filter) ([]book.WithAuthor, error) {
	match := bson.M{}
	if filter.AuthorID != nil {
		match["author"] = *filter.AuthorID
	}
	if filter.Genre != "" {
		match["genres"] = filter.Genre
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "authors",
			"localField":   "author",
			"foreignField": "_id",
			"as":           "author_doc",
		}}},
		bson.D{{Key: "$unwind", Value: "$author_doc"}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "title", Value: 1}}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("find books: %w", err)
	}
	defer cursor.Close(ctx)

	books := []book.WithAuthor{}
	if err := cursor.All(ctx, &books); err != nil {
		return nil, fmt.Errorf("decode books: %w", err)
	}
	return books, nil
}

func (r *mongoRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count books: %w", err)
	}
	return count, nil
}

func (r *mongoRepository) CountByAuthor(ctx context.Context, authorID primitive.ObjectID) (int64, error) {
	count, err := r.collection.CountDocuments(ctx, bson.M{"author": authorID})
	if err != nil {
		return 0, fmt.Errorf("count books by author: %w", err)
	}
	return count, nil
}

func (r *mongoRepository) CountGroupedByAuthor(ctx context.Context) (map[primitive.ObjectID]int64, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.M{
			"_id":   "$author",
			"count": bson.M{"$sum": 1},
		}}},
	}

	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("group books by author: %w", err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		AuthorID primitive.ObjectID `bson:"_id"`
		Count    int64              `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode book counts: %w", err)
	}

	counts := make(map[primitive.ObjectID]int64, len(rows))
	for _, row := range rows {
		counts[row.AuthorID] = row.Count
	}
	return counts, nil
}
