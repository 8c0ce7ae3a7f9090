package user

import (
	"context"
	"testing"

	"bloglist/db"
	"bloglist/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserServiceCreateHashesPassword(t *testing.T) {
	service := NewUserService(db.NewMemoryUserRepository())

	created, err := service.Create(context.Background(), CreateUserInput{
		Username: "root",
		Name:     "Superuser",
		Password: "sekret",
	})
	require.NoError(t, err)

	assert.NotEqual(t, "sekret", created.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("sekret")))

	cost, err := bcrypt.Cost([]byte(created.PasswordHash))
	require.NoError(t, err)
	assert.Equal(t, 10, cost)
}

func TestUserServiceRejectsDuplicateUsername(t *testing.T) {
	repo := db.NewMemoryUserRepository()
	service := NewUserService(repo)
	ctx := context.Background()

	_, err := service.Create(ctx, CreateUserInput{Username: "root", Password: "sekret"})
	require.NoError(t, err)

	_, err = service.Create(ctx, CreateUserInput{Username: "root", Password: "other"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	users, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1, "a failed create must not mutate the collection")
}

// racingUserRepo simulates a concurrent registration that lands between the
// service's username check and its insert: the check sees no user, the
// insert hits the unique constraint.
type racingUserRepo struct {
	*db.MemoryUserRepository
}

func (r *racingUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return nil, db.ErrNotFound
}

func TestUserServiceDuplicateInsertBackstop(t *testing.T) {
	inner := db.NewMemoryUserRepository()
	service := NewUserService(&racingUserRepo{MemoryUserRepository: inner})
	ctx := context.Background()

	_, err := inner.Create(ctx, &models.User{Username: "root", PasswordHash: "x"})
	require.NoError(t, err)

	_, err = service.Create(ctx, CreateUserInput{Username: "root", Password: "sekret"})
	assert.ErrorIs(t, err, ErrUsernameTaken)

	users, err := inner.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 1, "the losing insert must not mutate the collection")
}

func TestUserServiceRequiresCredentials(t *testing.T) {
	service := NewUserService(db.NewMemoryUserRepository())
	ctx := context.Background()

	_, err := service.Create(ctx, CreateUserInput{Username: "root"})
	assert.ErrorIs(t, err, ErrMissingCredentials)

	_, err = service.Create(ctx, CreateUserInput{Password: "sekret"})
	assert.ErrorIs(t, err, ErrMissingCredentials)
}
