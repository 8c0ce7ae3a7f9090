package db

import (
	"context"
	"errors"

	"bloglist/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate value for unique field")
)

// BlogRepository defines the interface for blog operations
type BlogRepository interface {
	FindAll(ctx context.Context) ([]*models.Blog, error)
	FindByID(ctx context.Context, id string) (*models.Blog, error)
	Create(ctx context.Context, blog *models.Blog) (*models.Blog, error)
	UpdateByID(ctx context.Context, id string, patch *BlogPatch) (*models.Blog, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// BlogPatch carries the mutable blog fields of a partial update. Nil fields
// are left untouched.
type BlogPatch struct {
	Title  *string
	Author *string
	URL    *string
	Likes  *int
}

// UserRepository defines the interface for user operations
type UserRepository interface {
	FindAll(ctx context.Context) ([]*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) (*models.User, error)
	DeleteAll(ctx context.Context) error
}

// ContactRepository defines the interface for phonebook contact operations
type ContactRepository interface {
	FindAll(ctx context.Context) ([]*models.Contact, error)
	FindByID(ctx context.Context, id string) (*models.Contact, error)
	Create(ctx context.Context, contact *models.Contact) (*models.Contact, error)
	UpdateByID(ctx context.Context, id string, contact *models.Contact) (*models.Contact, error)
	DeleteByID(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) error
}

// RepositoryFactory creates repositories for the configured backend. A
// factory holding a Mongo client produces Mongo-backed repositories; one
// without produces in-memory repositories, which the test harness uses.
type RepositoryFactory struct {
	MongoClient *mongo.Client
	DBName      string
}

// NewRepositoryFactory creates a new repository factory
func NewRepositoryFactory(mongoClient *mongo.Client, dbName string) *RepositoryFactory {
	return &RepositoryFactory{
		MongoClient: mongoClient,
		DBName:      dbName,
	}
}

// NewBlogRepository creates a new blog repository
func (f *RepositoryFactory) NewBlogRepository() BlogRepository {
	if f.MongoClient != nil {
		return NewMongoBlogRepository(f.MongoClient, f.DBName, "blogs")
	}
	return NewMemoryBlogRepository()
}

// NewUserRepository creates a new user repository
func (f *RepositoryFactory) NewUserRepository() UserRepository {
	if f.MongoClient != nil {
		return NewMongoUserRepository(f.MongoClient, f.DBName, "users")
	}
	return NewMemoryUserRepository()
}

// NewContactRepository creates a new contact repository
func (f *RepositoryFactory) NewContactRepository() ContactRepository {
	if f.MongoClient != nil {
		return NewMongoContactRepository(f.MongoClient, f.DBName, "persons")
	}
	return NewMemoryContactRepository()
}

// GenerateID generates a unique ID for a record
func GenerateID() string {
	return uuid.New().String()
}
