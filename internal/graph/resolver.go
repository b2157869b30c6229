package graph

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/graphql-go/graphql"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/internal/domains/user"
)

// Resolver is the root resolver. It holds the domain services and is
// shared by every field; per-request state lives in the context only.
type Resolver struct {
	Authors author.Service
	Books   book.Service
	Users   user.Service
}

func NewResolver(authors author.Service, books book.Service, users user.Service) *Resolver {
	return &Resolver{Authors: authors, Books: books, Users: users}
}

// ---- Query ----

func (r *Resolver) resolveBookCount(p graphql.ResolveParams) (interface{}, error) {
	count, err := r.Books.Count(p.Context)
	return int(count), err
}

func (r *Resolver) resolveAuthorCount(p graphql.ResolveParams) (interface{}, error) {
	count, err := r.Authors.Count(p.Context)
	return int(count), err
}

func (r *Resolver) resolveAllBooks(p graphql.ResolveParams) (interface{}, error) {
	filter := book.ListFilter{}
	if name, ok := p.Args["author"].(string); ok {
		filter.AuthorName = name
	}
	if genre, ok := p.Args["genre"].(string); ok {
		filter.Genre = genre
	}

	books, err := r.Books.List(p.Context, filter)
	if err != nil {
		return nil, err
	}
	return toBooks(books), nil
}

func (r *Resolver) resolveAllAuthors(p graphql.ResolveParams) (interface{}, error) {
	authors, err := r.Authors.List(p.Context)
	if err != nil {
		return nil, err
	}

	out := make([]Author, 0, len(authors))
	for _, a := range authors {
		out = append(out, toAuthorWithCount(a))
	}
	return out, nil
}

func (r *Resolver) resolveMe(p graphql.ResolveParams) (interface{}, error) {
	profile := CurrentUserFrom(p.Context)
	if profile == nil {
		return nil, nil
	}
	return toProfile(*profile), nil
}

// resolveAuthorBookCount backs the Author.bookCount field. List
// resolvers precompute the count in one batch; anywhere else (a book's
// author, a freshly edited author) it is counted on demand.
func (r *Resolver) resolveAuthorBookCount(p graphql.ResolveParams) (interface{}, error) {
	a, ok := p.Source.(Author)
	if !ok {
		return 0, nil
	}
	if a.BookCount != nil {
		return *a.BookCount, nil
	}

	id, err := primitive.ObjectIDFromHex(a.ID)
	if err != nil {
		return nil, err
	}
	count, err := r.Books.CountByAuthor(p.Context, id)
	return int(count), err
}

// ---- Mutation ----

func (r *Resolver) resolveAddBook(p graphql.ResolveParams) (interface{}, error) {
	if CurrentUserFrom(p.Context) == nil {
		return nil, newAuthenticationError("not authenticated")
	}

	req := book.CreateBookRequest{}
	req.Title, _ = p.Args["title"].(string)
	req.Published, _ = p.Args["published"].(int)
	req.AuthorName, _ = p.Args["author"].(string)
	if raw, ok := p.Args["genres"].([]interface{}); ok {
		for _, g := range raw {
			if s, ok := g.(string); ok {
				req.Genres = append(req.Genres, s)
			}
		}
	}

	created, err := r.Books.Add(p.Context, req)
	if err != nil {
		if isValidationError(err) {
			return nil, newValidationError(err.Error(), p.Args)
		}
		return nil, err
	}
	return toBook(*created), nil
}

func (r *Resolver) resolveEditAuthor(p graphql.ResolveParams) (interface{}, error) {
	if CurrentUserFrom(p.Context) == nil {
		return nil, newAuthenticationError("not authenticated")
	}

	name, _ := p.Args["name"].(string)
	born, _ := p.Args["setBornTo"].(int)

	updated, err := r.Authors.EditBorn(p.Context, name, born)
	if err != nil {
		// Unknown author is a null result, not a failure.
		if errors.Is(err, author.ErrAuthorNotFound) {
			return nil, nil
		}
		if isValidationError(err) {
			return nil, newValidationError(err.Error(), p.Args)
		}
		return nil, err
	}
	return toAuthor(*updated), nil
}

func (r *Resolver) resolveCreateUser(p graphql.ResolveParams) (interface{}, error) {
	req := user.RegisterRequest{}
	req.Username, _ = p.Args["username"].(string)
	req.FavouriteGenre, _ = p.Args["favouriteGenre"].(string)
	req.Password, _ = p.Args["password"].(string)

	created, err := r.Users.Register(p.Context, req)
	if err != nil {
		if isValidationError(err) {
			return nil, newValidationError(err.Error(), safeArgs(p.Args))
		}
		return nil, err
	}
	return toUser(*created), nil
}

func (r *Resolver) resolveLogin(p graphql.ResolveParams) (interface{}, error) {
	req := user.LoginRequest{}
	req.Username, _ = p.Args["username"].(string)
	req.Password, _ = p.Args["password"].(string)

	resp, err := r.Users.Login(p.Context, req)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			return nil, newAuthenticationError("wrong credentials")
		}
		if errors.Is(err, user.ErrTooManyAttempts) {
			return nil, newAuthenticationError(err.Error())
		}
		return nil, err
	}
	return Token{Value: resp.Token}, nil
}

// isValidationError recognizes caller-correctable input failures: ozzo
// field errors and the domains' constraint sentinels.
func isValidationError(err error) bool {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		return true
	}
	return errors.Is(err, author.ErrInvalidName) ||
		errors.Is(err, author.ErrDuplicateName) ||
		errors.Is(err, user.ErrUsernameTaken)
}

// safeArgs strips credentials before they can land in an error payload.
func safeArgs(args map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(args))
	for k, v := range args {
		if k == "password" {
			continue
		}
		out[k] = v
	}
	return out
}
