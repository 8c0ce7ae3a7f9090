package db

import (
	"context"
	"sync"

	"bloglist/models"
)

// The in-memory repositories back the test harness. They honor the same
// contract as the Mongo implementations: stable string IDs, ErrNotFound on
// absent records, ErrDuplicate on unique-field collisions, and insertion
// order preserved by FindAll.

// MemoryBlogRepository implements the BlogRepository interface in memory
type MemoryBlogRepository struct {
	mu    sync.RWMutex
	blogs []*models.Blog
}

// NewMemoryBlogRepository creates a new MemoryBlogRepository
func NewMemoryBlogRepository() *MemoryBlogRepository {
	return &MemoryBlogRepository{}
}

// FindAll finds all blogs
func (r *MemoryBlogRepository) FindAll(ctx context.Context) ([]*models.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	blogs := make([]*models.Blog, len(r.blogs))
	for i, b := range r.blogs {
		copied := *b
		blogs[i] = &copied
	}
	return blogs, nil
}

// FindByID finds a blog by ID
func (r *MemoryBlogRepository) FindByID(ctx context.Context, id string) (*models.Blog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.blogs {
		if b.ID == id {
			copied := *b
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

// Create inserts a new blog
func (r *MemoryBlogRepository) Create(ctx context.Context, blog *models.Blog) (*models.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if blog.ID == "" {
		blog.ID = GenerateID()
	}
	copied := *blog
	r.blogs = append(r.blogs, &copied)
	return blog, nil
}

// UpdateByID applies the non-nil patch fields and returns the updated blog
func (r *MemoryBlogRepository) UpdateByID(ctx context.Context, id string, patch *BlogPatch) (*models.Blog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, b := range r.blogs {
		if b.ID != id {
			continue
		}
		if patch.Title != nil {
			b.Title = *patch.Title
		}
		if patch.Author != nil {
			b.Author = *patch.Author
		}
		if patch.URL != nil {
			b.URL = *patch.URL
		}
		if patch.Likes != nil {
			b.Likes = *patch.Likes
		}
		copied := *b
		return &copied, nil
	}
	return nil, ErrNotFound
}

// DeleteByID deletes a blog by ID
func (r *MemoryBlogRepository) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, b := range r.blogs {
		if b.ID == id {
			r.blogs = append(r.blogs[:i], r.blogs[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// DeleteAll drops every blog
func (r *MemoryBlogRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.blogs = nil
	return nil
}

// MemoryUserRepository implements the UserRepository interface in memory
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users []*models.User
}

// NewMemoryUserRepository creates a new MemoryUserRepository
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{}
}

// FindAll finds all users
func (r *MemoryUserRepository) FindAll(ctx context.Context) ([]*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*models.User, len(r.users))
	for i, u := range r.users {
		copied := *u
		users[i] = &copied
	}
	return users, nil
}

// FindByUsername finds a user by username
func (r *MemoryUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

// Create inserts a new user, enforcing username uniqueness
func (r *MemoryUserRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == user.Username {
			return nil, ErrDuplicate
		}
	}

	if user.ID == "" {
		user.ID = GenerateID()
	}
	copied := *user
	r.users = append(r.users, &copied)
	return user, nil
}

// DeleteAll drops every user
func (r *MemoryUserRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = nil
	return nil
}

// MemoryContactRepository implements the ContactRepository interface in memory
type MemoryContactRepository struct {
	mu       sync.RWMutex
	contacts []*models.Contact
}

// NewMemoryContactRepository creates a new MemoryContactRepository
func NewMemoryContactRepository() *MemoryContactRepository {
	return &MemoryContactRepository{}
}

// FindAll finds all contacts
func (r *MemoryContactRepository) FindAll(ctx context.Context) ([]*models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	contacts := make([]*models.Contact, len(r.contacts))
	for i, c := range r.contacts {
		copied := *c
		contacts[i] = &copied
	}
	return contacts, nil
}

// FindByID finds a contact by ID
func (r *MemoryContactRepository) FindByID(ctx context.Context, id string) (*models.Contact, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, c := range r.contacts {
		if c.ID == id {
			copied := *c
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

// Create inserts a new contact, enforcing name uniqueness
func (r *MemoryContactRepository) Create(ctx context.Context, contact *models.Contact) (*models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.contacts {
		if c.Name == contact.Name {
			return nil, ErrDuplicate
		}
	}

	if contact.ID == "" {
		contact.ID = GenerateID()
	}
	copied := *contact
	r.contacts = append(r.contacts, &copied)
	return contact, nil
}

// UpdateByID replaces the contact's name and number
func (r *MemoryContactRepository) UpdateByID(ctx context.Context, id string, contact *models.Contact) (*models.Contact, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.contacts {
		if c.ID != id {
			continue
		}
		for _, other := range r.contacts {
			if other.ID != id && other.Name == contact.Name {
				return nil, ErrDuplicate
			}
		}
		c.Name = contact.Name
		c.Number = contact.Number
		copied := *c
		return &copied, nil
	}
	return nil, ErrNotFound
}

// DeleteByID deletes a contact by ID
func (r *MemoryContactRepository) DeleteByID(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, c := range r.contacts {
		if c.ID == id {
			r.contacts = append(r.contacts[:i], r.contacts[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

// DeleteAll drops every contact
func (r *MemoryContactRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.contacts = nil
	return nil
}
