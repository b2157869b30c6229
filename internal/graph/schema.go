// Package graph wires the catalog's GraphQL schema: object types for
// Book, Author, User and Token, the query and mutation fields, and the
// resolvers mapping them onto the domain services.
package graph

import (
	"github.com/graphql-go/graphql"
)

// NewSchema builds the executable schema around a root resolver.
func NewSchema(r *Resolver) (graphql.Schema, error) {
	authorType := newAuthorType(r)
	bookType := newBookType(authorType)
	userType := newUserType()
	tokenType := newTokenType()

	query := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Query",
		Fields: queryFields(r, authorType, bookType, userType),
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name:   "Mutation",
		Fields: mutationFields(r, authorType, bookType, userType, tokenType),
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}

func newAuthorType(r *Resolver) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Author",
		Fields: graphql.Fields{
			"id":   &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"name": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"born": &graphql.Field{Type: graphql.Int},
			"bookCount": &graphql.Field{
				Type:    graphql.NewNonNull(graphql.Int),
				Resolve: r.resolveAuthorBookCount,
			},
		},
	})
}

func newBookType(authorType *graphql.Object) *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Book",
		Fields: graphql.Fields{
			"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"title":     &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"published": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
			"author":    &graphql.Field{Type: graphql.NewNonNull(authorType)},
			"genres":    &graphql.Field{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
		},
	})
}

func newUserType() *graphql.Object {
	userType := graphql.NewObject(graphql.ObjectConfig{
		Name: "User",
		Fields: graphql.Fields{
			"id":             &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
			"username":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
			"favouriteGenre": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})

	// Self-referential field, added after construction.
	userType.AddFieldConfig("friends", &graphql.Field{
		Type: graphql.NewList(graphql.NewNonNull(userType)),
	})

	return userType
}

func newTokenType() *graphql.Object {
	return graphql.NewObject(graphql.ObjectConfig{
		Name: "Token",
		Fields: graphql.Fields{
			"value": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		},
	})
}

func queryFields(r *Resolver, authorType, bookType, userType *graphql.Object) graphql.Fields {
	return graphql.Fields{
		"bookCount": &graphql.Field{
			Type:    graphql.NewNonNull(graphql.Int),
			Resolve: r.resolveBookCount,
		},
		"authorCount": &graphql.Field{
			Type:    graphql.NewNonNull(graphql.Int),
			Resolve: r.resolveAuthorCount,
		},
		"allBooks": &graphql.Field{
			Type: graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(bookType))),
			Args: graphql.FieldConfigArgument{
				"author": &graphql.ArgumentConfig{Type: graphql.String},
				"genre":  &graphql.ArgumentConfig{Type: graphql.String},
			},
			Resolve: r.resolveAllBooks,
		},
		"allAuthors": &graphql.Field{
			Type:    graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(authorType))),
			Resolve: r.resolveAllAuthors,
		},
		"me": &graphql.Field{
			Type:    userType,
			Resolve: r.resolveMe,
		},
	}
}

func mutationFields(r *Resolver, authorType, bookType, userType, tokenType *graphql.Object) graphql.Fields {
	return graphql.Fields{
		"addBook": &graphql.Field{
			Type: bookType,
			Args: graphql.FieldConfigArgument{
				"title":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"published": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				"author":    &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"genres":    &graphql.ArgumentConfig{Type: graphql.NewList(graphql.NewNonNull(graphql.String))},
			},
			Resolve: r.resolveAddBook,
		},
		"editAuthor": &graphql.Field{
			Type: authorType,
			Args: graphql.FieldConfigArgument{
				"name":      &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"setBornTo": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
			},
			Resolve: r.resolveEditAuthor,
		},
		"createUser": &graphql.Field{
			Type: userType,
			Args: graphql.FieldConfigArgument{
				"username":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"favouriteGenre": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"password":       &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: r.resolveCreateUser,
		},
		"login": &graphql.Field{
			Type: tokenType,
			Args: graphql.FieldConfigArgument{
				"username": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				"password": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
			},
			Resolve: r.resolveLogin,
		},
	}
}
