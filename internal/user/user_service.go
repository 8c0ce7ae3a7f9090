package user

import (
	"context"
	"errors"
	"fmt"

	"bloglist/db"
	"bloglist/models"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

var (
	ErrMissingCredentials = errors.New("username and password are required")
	ErrUsernameTaken      = errors.New("username must be unique")
)

type UserService struct {
	repo db.UserRepository
}

func NewUserService(repo db.UserRepository) *UserService {
	return &UserService{repo: repo}
}

type CreateUserInput struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Create registers a new user. The username check runs before the insert;
// the repository's unique constraint catches a racing duplicate, so a
// failed create never mutates the collection.
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*models.User, error) {
	if input.Username == "" || input.Password == "" {
		return nil, ErrMissingCredentials
	}

	_, err := s.repo.FindByUsername(ctx, input.Username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, db.ErrNotFound) {
		return nil, fmt.Errorf("error checking username: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:     input.Username,
		Name:         input.Name,
		PasswordHash: string(hash),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("error creating user: %w", err)
	}

	return created, nil
}

func (s *UserService) GetAll(ctx context.Context) ([]*models.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing users: %w", err)
	}
	if users == nil {
		users = []*models.User{}
	}
	return users, nil
}
