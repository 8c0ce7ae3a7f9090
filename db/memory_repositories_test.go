package db

import (
	"context"
	"testing"

	"bloglist/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBlogRepositoryContract(t *testing.T) {
	repo := NewMemoryBlogRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.Blog{Title: "A", URL: "http://a.example"})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	// The assigned id stays stable across reads and updates.
	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)

	likes := 9
	updated, err := repo.UpdateByID(ctx, created.ID, &BlogPatch{Likes: &likes})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 9, updated.Likes)
	assert.Equal(t, "A", updated.Title, "unpatched fields are untouched")

	_, err = repo.UpdateByID(ctx, "missing", &BlogPatch{Likes: &likes})
	assert.ErrorIs(t, err, ErrNotFound)

	err = repo.DeleteByID(ctx, created.ID)
	require.NoError(t, err)
	err = repo.DeleteByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	blogs, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, blogs)
}

func TestMemoryBlogRepositoryReturnsCopies(t *testing.T) {
	repo := NewMemoryBlogRepository()
	ctx := context.Background()

	created, err := repo.Create(ctx, &models.Blog{Title: "A", URL: "http://a.example"})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	found.Title = "mutated"

	again, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", again.Title)
}

func TestMemoryUserRepositoryUniqueness(t *testing.T) {
	repo := NewMemoryUserRepository()
	ctx := context.Background()

	_, err := repo.Create(ctx, &models.User{Username: "root", PasswordHash: "x"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.User{Username: "root", PasswordHash: "y"})
	assert.ErrorIs(t, err, ErrDuplicate)

	users, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1)

	found, err := repo.FindByUsername(ctx, "root")
	require.NoError(t, err)
	assert.Equal(t, "x", found.PasswordHash)

	_, err = repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryContactRepositoryContract(t *testing.T) {
	repo := NewMemoryContactRepository()
	ctx := context.Background()

	a, err := repo.Create(ctx, &models.Contact{Name: "Arto", Number: "040-1"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, &models.Contact{Name: "Ada", Number: "39-2"})
	require.NoError(t, err)

	_, err = repo.Create(ctx, &models.Contact{Name: "Arto", Number: "040-9"})
	assert.ErrorIs(t, err, ErrDuplicate)

	updated, err := repo.UpdateByID(ctx, a.ID, &models.Contact{Name: "Arto", Number: "040-3"})
	require.NoError(t, err)
	assert.Equal(t, a.ID, updated.ID)
	assert.Equal(t, "040-3", updated.Number)

	// Renaming onto another contact's name is a uniqueness violation.
	_, err = repo.UpdateByID(ctx, a.ID, &models.Contact{Name: "Ada", Number: "040-3"})
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = repo.UpdateByID(ctx, "missing", &models.Contact{Name: "X", Number: "1"})
	assert.ErrorIs(t, err, ErrNotFound)
}
