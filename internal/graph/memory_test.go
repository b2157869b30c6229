package graph_test

// In-memory repository implementations mirroring the Mongo semantics
// the resolvers rely on: unique indexes on author names and usernames,
// eager author joins on book reads, grouped book counts.

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/internal/domains/user"
)

type memAuthorRepo struct {
	authors map[primitive.ObjectID]*author.Author
}

func newMemAuthorRepo() *memAuthorRepo {
	return &memAuthorRepo{authors: map[primitive.ObjectID]*author.Author{}}
}

func (m *memAuthorRepo) Create(_ context.Context, a *author.Author) (*author.Author, error) {
	for _, existing := range m.authors {
		if existing.Name == a.Name {
			return nil, author.ErrDuplicateName
		}
	}
	stored := *a
	stored.ID = primitive.NewObjectID()
	m.authors[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (m *memAuthorRepo) GetByID(_ context.Context, id primitive.ObjectID) (*author.Author, error) {
	a, ok := m.authors[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	out := *a
	return &out, nil
}

func (m *memAuthorRepo) GetByName(_ context.Context, name string) (*author.Author, error) {
	for _, a := range m.authors {
		if a.Name == name {
			out := *a
			return &out, nil
		}
	}
	return nil, author.ErrAuthorNotFound
}

func (m *memAuthorRepo) GetAll(_ context.Context) ([]author.Author, error) {
	out := make([]author.Author, 0, len(m.authors))
	for _, a := range m.authors {
		out = append(out, *a)
	}
	return out, nil
}

func (m *memAuthorRepo) UpdateBornByName(_ context.Context, name string, born int) (*author.Author, error) {
	for _, a := range m.authors {
		if a.Name == name {
			a.Born = &born
			out := *a
			return &out, nil
		}
	}
	return nil, author.ErrAuthorNotFound
}

func (m *memAuthorRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.authors)), nil
}

type memBookRepo struct {
	books   []book.Book
	authors *memAuthorRepo
}

func (m *memBookRepo) Create(_ context.Context, b *book.Book) (*book.Book, error) {
	stored := *b
	stored.ID = primitive.NewObjectID()
	m.books = append(m.books, stored)
	out := stored
	return &out, nil
}

func (m *memBookRepo) Find(_ context.Context, filter book.Filter) ([]book.WithAuthor, error) {
	out := []book.WithAuthor{}
	for _, b := range m.books {
		if filter.AuthorID != nil && b.AuthorID != *filter.AuthorID {
			continue
		}
		if filter.Genre != "" && !containsGenre(b.Genres, filter.Genre) {
			continue
		}
		out = append(out, book.WithAuthor{Book: b, Author: *m.authors.authors[b.AuthorID]})
	}
	return out, nil
}

func (m *memBookRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.books)), nil
}

func (m *memBookRepo) CountByAuthor(_ context.Context, authorID primitive.ObjectID) (int64, error) {
	var n int64
	for _, b := range m.books {
		if b.AuthorID == authorID {
			n++
		}
	}
	return n, nil
}

func (m *memBookRepo) CountGroupedByAuthor(_ context.Context) (map[primitive.ObjectID]int64, error) {
	counts := map[primitive.ObjectID]int64{}
	for _, b := range m.books {
		counts[b.AuthorID]++
	}
	return counts, nil
}

func containsGenre(genres []string, want string) bool {
	for _, g := range genres {
		if g == want {
			return true
		}
	}
	return false
}

type memUserRepo struct {
	users map[primitive.ObjectID]*user.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: map[primitive.ObjectID]*user.User{}}
}

func (m *memUserRepo) Create(_ context.Context, u *user.User) (*user.User, error) {
	for _, existing := range m.users {
		if existing.Username == u.Username {
			return nil, user.ErrUsernameTaken
		}
	}
	stored := *u
	stored.ID = primitive.NewObjectID()
	m.users[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (m *memUserRepo) GetByUsername(_ context.Context, username string) (*user.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, user.ErrUserNotFound
}

func (m *memUserRepo) GetByID(_ context.Context, id primitive.ObjectID) (*user.User, error) {
	u, ok := m.users[id]
	if !ok {
		return nil, user.ErrUserNotFound
	}
	out := *u
	return &out, nil
}

func (m *memUserRepo) GetByIDs(_ context.Context, ids []primitive.ObjectID) ([]user.User, error) {
	out := []user.User{}
	for _, id := range ids {
		if u, ok := m.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

// noopLimiter never locks anyone out.
type noopLimiter struct{}

func (noopLimiter) Allow(context.Context, string) (bool, error) { return true, nil }
func (noopLimiter) RecordFailure(context.Context, string) error { return nil }
func (noopLimiter) Reset(context.Context, string) error         { return nil }
