package blog

import (
	"context"
	"errors"
	"fmt"

	"bloglist/db"
	"bloglist/models"
)

var (
	ErrTitleRequired = errors.New("title is required")
	ErrURLRequired   = errors.New("url is required")
)

// BlogService holds the blog business rules: required-field validation and
// the likes default on create, patch semantics on update.
type BlogService struct {
	repo db.BlogRepository
}

func NewBlogService(repo db.BlogRepository) *BlogService {
	return &BlogService{repo: repo}
}

// CreateBlogInput is the POST payload. Likes is a pointer so an absent field
// can be told apart from an explicit zero.
type CreateBlogInput struct {
	Title  string `json:"title"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Likes  *int   `json:"likes"`
}

// UpdateBlogInput is the PUT payload; nil fields are left unchanged.
type UpdateBlogInput struct {
	Title  *string `json:"title"`
	Author *string `json:"author"`
	URL    *string `json:"url"`
	Likes  *int    `json:"likes"`
}

func (s *BlogService) GetAll(ctx context.Context) ([]*models.Blog, error) {
	blogs, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing blogs: %w", err)
	}
	if blogs == nil {
		blogs = []*models.Blog{}
	}
	return blogs, nil
}

func (s *BlogService) Create(ctx context.Context, input CreateBlogInput) (*models.Blog, error) {
	if input.Title == "" {
		return nil, ErrTitleRequired
	}
	if input.URL == "" {
		return nil, ErrURLRequired
	}

	likes := 0
	if input.Likes != nil {
		likes = *input.Likes
	}

	blog := &models.Blog{
		Title:  input.Title,
		Author: input.Author,
		URL:    input.URL,
		Likes:  likes,
	}
	return s.repo.Create(ctx, blog)
}

// Update applies the provided fields to an existing blog. The repository
// returns the post-update document, so a 200 response always reflects state
// a subsequent read will see.
func (s *BlogService) Update(ctx context.Context, id string, input UpdateBlogInput) (*models.Blog, error) {
	if input.Title != nil && *input.Title == "" {
		return nil, ErrTitleRequired
	}
	if input.URL != nil && *input.URL == "" {
		return nil, ErrURLRequired
	}

	patch := &db.BlogPatch{
		Title:  input.Title,
		Author: input.Author,
		URL:    input.URL,
		Likes:  input.Likes,
	}
	return s.repo.UpdateByID(ctx, id, patch)
}

// Delete removes a blog. Deleting an id that does not exist is not an error.
func (s *BlogService) Delete(ctx context.Context, id string) error {
	err := s.repo.DeleteByID(ctx, id)
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("error deleting blog: %w", err)
	}
	return nil
}
