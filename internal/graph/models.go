package graph

import (
	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/internal/domains/user"
)

// View models returned by resolvers. Field names follow the schema via
// json tags, which is what the engine's default field resolution reads.

type Author struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Born *int   `json:"born"`

	// Precomputed by list resolvers; when nil the bookCount field
	// resolver falls back to a per-author count query.
	BookCount *int `json:"-"`
}

type Book struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Published int      `json:"published"`
	Genres    []string `json:"genres"`
	Author    Author   `json:"author"`
}

type User struct {
	ID             string `json:"id"`
	Username       string `json:"username"`
	FavouriteGenre string `json:"favouriteGenre"`
	Friends        []User `json:"friends"`
}

type Token struct {
	Value string `json:"value"`
}

func toAuthor(a author.Author) Author {
	return Author{
		ID:   a.ID.Hex(),
		Name: a.Name,
		Born: a.Born,
	}
}

func toAuthorWithCount(a author.WithBookCount) Author {
	count := a.BookCount
	out := toAuthor(a.Author)
	out.BookCount = &count
	return out
}

func toBook(b book.WithAuthor) Book {
	genres := b.Genres
	if genres == nil {
		genres = []string{}
	}
	return Book{
		ID:        b.ID.Hex(),
		Title:     b.Title,
		Published: b.Published,
		Genres:    genres,
		Author:    toAuthor(b.Author),
	}
}

func toBooks(books []book.WithAuthor) []Book {
	out := make([]Book, 0, len(books))
	for _, b := range books {
		out = append(out, toBook(b))
	}
	return out
}

func toUser(u user.User) User {
	return User{
		ID:             u.ID.Hex(),
		Username:       u.Username,
		FavouriteGenre: u.FavouriteGenre,
		Friends:        []User{},
	}
}

func toProfile(p user.Profile) User {
	out := toUser(p.User)
	for _, friend := range p.Friends {
		out.Friends = append(out.Friends, toUser(friend))
	}
	return out
}
