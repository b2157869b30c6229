package service

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
)

// bookService implements book.Service.
type bookService struct {
	repo    book.Repository
	authors author.Service
}

// NewBookService creates the service instance.
func NewBookService(repo book.Repository, authors author.Service) book.Service {
	return &bookService{repo: repo, authors: authors}
}

// Add creates a book after resolving its author.
func (s *bookService) Add(ctx context.Context, req book.CreateBookRequest) (*book.WithAuthor, error) {
	// 1. VALIDATE INPUT
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// 2. RESOLVE AUTHOR (find-or-create, see author.Service for the
	// non-atomicity caveat)
	a, err := s.authors.FindOrCreate(ctx, req.AuthorName)
	if err != nil {
		return nil, err
	}

	// 3. PERSIST BOOK
	created, err := s.repo.Create(ctx, &book.Book{
		Title:     req.Title,
		Published: req.Published,
		Genres:    req.Genres,
		AuthorID:  a.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}

	return &book.WithAuthor{Book: *created, Author: *a}, nil
}

// List dispatches to the repository per the filter combination. When an
// author filter names nobody there is nothing to dereference: the
// result is an empty slice and the store is never queried.
func (s *bookService) List(ctx context.Context, filter book.ListFilter) ([]book.WithAuthor, error) {
	repoFilter := book.Filter{Genre: filter.Genre}

	if filter.AuthorName != "" {
		a, err := s.authors.GetByName(ctx, filter.AuthorName)
		if err != nil {
			if errors.Is(err, author.ErrAuthorNotFound) {
				return []book.WithAuthor{}, nil
			}
			return nil, fmt.Errorf("resolve author filter: %w", err)
		}
		repoFilter.AuthorID = &a.ID
	}

	return s.repo.Find(ctx, repoFilter)
}

func (s *bookService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *bookService) CountByAuthor(ctx context.Context, authorID primitive.ObjectID) (int64, error) {
	return s.repo.CountByAuthor(ctx, authorID)
}
