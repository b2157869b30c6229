package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-backend/internal/domains/author"
)

// authorService implements author.Service.
type authorService struct {
	repo  author.Repository
	books author.BookCounter
}

// NewAuthorService creates the service instance.
// Dependencies are injected through the constructor.
func NewAuthorService(repo author.Repository, books author.BookCounter) author.Service {
	return &authorService{repo: repo, books: books}
}

func (s *authorService) GetByName(ctx context.Context, name string) (*author.Author, error) {
	return s.repo.GetByName(ctx, name)
}

func (s *authorService) GetByID(ctx context.Context, id primitive.ObjectID) (*author.Author, error) {
	return s.repo.GetByID(ctx, id)
}

// FindOrCreate looks the author up by name and creates the record when
// absent. Not atomic: a concurrent writer may create the same name in
// between, in which case the unique index turns our insert into
// ErrDuplicateName and we re-read the winner.
func (s *authorService) FindOrCreate(ctx context.Context, name string) (*author.Author, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, author.ErrInvalidName
	}

	// 1. FIND
	existing, err := s.repo.GetByName(ctx, name)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, author.ErrAuthorNotFound) {
		return nil, fmt.Errorf("find author: %w", err)
	}

	// 2. CREATE
	created, err := s.repo.Create(ctx, &author.Author{Name: name})
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, author.ErrDuplicateName) {
		return nil, fmt.Errorf("create author: %w", err)
	}

	// 3. LOST THE RACE - the author exists now, read it back
	return s.repo.GetByName(ctx, name)
}

// List returns all authors with book counts resolved by one aggregation
// over the books collection instead of a count query per author.
func (s *authorService) List(ctx context.Context) ([]author.WithBookCount, error) {
	authors, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	counts, err := s.books.CountGroupedByAuthor(ctx)
	if err != nil {
		return nil, fmt.Errorf("count books per author: %w", err)
	}

	result := make([]author.WithBookCount, 0, len(authors))
	for _, a := range authors {
		result = append(result, author.WithBookCount{
			Author:    a,
			BookCount: int(counts[a.ID]),
		})
	}
	return result, nil
}

func (s *authorService) EditBorn(ctx context.Context, name string, born int) (*author.Author, error) {
	if strings.TrimSpace(name) == "" {
		return nil, author.ErrInvalidName
	}
	return s.repo.UpdateBornByName(ctx, name, born)
}

func (s *authorService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}
