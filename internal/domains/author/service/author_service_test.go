package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/author/service"
)

// fakeRepo is an in-memory author.Repository.
type fakeRepo struct {
	byName map[string]*author.Author

	// when set, the next Create fails with this error
	createErr error
	creates   int

	// number of GetByName calls to answer with not-found regardless of
	// contents; used to simulate a concurrent writer
	missFinds int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byName: map[string]*author.Author{}}
}

func (f *fakeRepo) Create(_ context.Context, a *author.Author) (*author.Author, error) {
	f.creates++
	if f.createErr != nil {
		err := f.createErr
		f.createErr = nil
		return nil, err
	}
	if _, ok := f.byName[a.Name]; ok {
		return nil, author.ErrDuplicateName
	}
	stored := *a
	stored.ID = primitive.NewObjectID()
	f.byName[a.Name] = &stored
	out := stored
	return &out, nil
}

func (f *fakeRepo) GetByID(_ context.Context, id primitive.ObjectID) (*author.Author, error) {
	for _, a := range f.byName {
		if a.ID == id {
			out := *a
			return &out, nil
		}
	}
	return nil, author.ErrAuthorNotFound
}

func (f *fakeRepo) GetByName(_ context.Context, name string) (*author.Author, error) {
	if f.missFinds > 0 {
		f.missFinds--
		return nil, author.ErrAuthorNotFound
	}
	a, ok := f.byName[name]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	out := *a
	return &out, nil
}

func (f *fakeRepo) GetAll(_ context.Context) ([]author.Author, error) {
	out := make([]author.Author, 0, len(f.byName))
	for _, a := range f.byName {
		out = append(out, *a)
	}
	return out, nil
}

func (f *fakeRepo) UpdateBornByName(_ context.Context, name string, born int) (*author.Author, error) {
	a, ok := f.byName[name]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	a.Born = &born
	out := *a
	return &out, nil
}

func (f *fakeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.byName)), nil
}

// fakeCounter is a canned author.BookCounter.
type fakeCounter struct {
	counts map[primitive.ObjectID]int64
}

func (f *fakeCounter) CountByAuthor(_ context.Context, id primitive.ObjectID) (int64, error) {
	return f.counts[id], nil
}

func (f *fakeCounter) CountGroupedByAuthor(_ context.Context) (map[primitive.ObjectID]int64, error) {
	return f.counts, nil
}

func TestFindOrCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a missing author once and reuses it", func(t *testing.T) {
		repo := newFakeRepo()
		svc := service.NewAuthorService(repo, &fakeCounter{})

		first, err := svc.FindOrCreate(ctx, "F. Scott Fitzgerald")
		require.NoError(t, err)
		require.False(t, first.ID.IsZero())

		second, err := svc.FindOrCreate(ctx, "F. Scott Fitzgerald")
		require.NoError(t, err)
		assert.Equal(t, first.ID, second.ID)

		count, err := svc.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})

	t.Run("rejects empty names", func(t *testing.T) {
		svc := service.NewAuthorService(newFakeRepo(), &fakeCounter{})

		_, err := svc.FindOrCreate(ctx, "   ")
		assert.ErrorIs(t, err, author.ErrInvalidName)
	})

	t.Run("losing the create race falls back to the winner", func(t *testing.T) {
		repo := newFakeRepo()
		svc := service.NewAuthorService(repo, &fakeCounter{})

		// Simulate a concurrent writer landing between find and create:
		// the first find misses, our insert hits the unique index, and
		// the name resolves on the retry read.
		winner, err := repo.Create(ctx, &author.Author{Name: "Ursula K. Le Guin"})
		require.NoError(t, err)
		repo.missFinds = 1
		repo.createErr = author.ErrDuplicateName

		got, err := svc.FindOrCreate(ctx, "Ursula K. Le Guin")
		require.NoError(t, err)
		assert.Equal(t, winner.ID, got.ID)
	})
}

func TestEditBorn(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown author reports not found and creates nothing", func(t *testing.T) {
		repo := newFakeRepo()
		svc := service.NewAuthorService(repo, &fakeCounter{})

		_, err := svc.EditBorn(ctx, "Unknown", 1900)
		assert.ErrorIs(t, err, author.ErrAuthorNotFound)

		count, err := svc.Count(ctx)
		require.NoError(t, err)
		assert.EqualValues(t, 0, count)
	})

	t.Run("updates the born year of an existing author", func(t *testing.T) {
		repo := newFakeRepo()
		svc := service.NewAuthorService(repo, &fakeCounter{})

		_, err := svc.FindOrCreate(ctx, "Toni Morrison")
		require.NoError(t, err)

		updated, err := svc.EditBorn(ctx, "Toni Morrison", 1931)
		require.NoError(t, err)
		require.NotNil(t, updated.Born)
		assert.Equal(t, 1931, *updated.Born)
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()

	a, err := repo.Create(ctx, &author.Author{Name: "Octavia Butler"})
	require.NoError(t, err)
	b, err := repo.Create(ctx, &author.Author{Name: "Stanisław Lem"})
	require.NoError(t, err)

	counter := &fakeCounter{counts: map[primitive.ObjectID]int64{a.ID: 3}}
	svc := service.NewAuthorService(repo, counter)

	got, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)

	byName := map[string]int{}
	for _, entry := range got {
		byName[entry.Name] = entry.BookCount
	}
	assert.Equal(t, 3, byName["Octavia Butler"])
	assert.Equal(t, 0, byName["Stanisław Lem"], "author %s has no books", b.Name)
}

func TestGetByName(t *testing.T) {
	svc := service.NewAuthorService(newFakeRepo(), &fakeCounter{})

	_, err := svc.GetByName(context.Background(), "Nobody")
	assert.True(t, errors.Is(err, author.ErrAuthorNotFound))
}
