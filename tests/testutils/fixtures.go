package testutils

import (
	"context"
	"testing"

	"bloglist/db"
	"bloglist/models"

	"github.com/stretchr/testify/require"
)

// InitialBlogs is the two-record baseline seeded before each blog test.
func InitialBlogs() []*models.Blog {
	return []*models.Blog{
		{
			Title:  "React patterns",
			Author: "Michael Chan",
			URL:    "https://reactpatterns.com/",
			Likes:  7,
		},
		{
			Title:  "Go To Statement Considered Harmful",
			Author: "Edsger W. Dijkstra",
			URL:    "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html",
			Likes:  5,
		},
	}
}

// SeedBlogs resets the blog collection to the initial baseline.
func SeedBlogs(t *testing.T, repo db.BlogRepository) []*models.Blog {
	ctx := context.Background()
	require.NoError(t, repo.DeleteAll(ctx))

	seeded := make([]*models.Blog, 0, 2)
	for _, b := range InitialBlogs() {
		created, err := repo.Create(ctx, b)
		require.NoError(t, err)
		seeded = append(seeded, created)
	}
	return seeded
}

// BlogsInDB snapshots the current contents of the blog collection.
func BlogsInDB(t *testing.T, repo db.BlogRepository) []*models.Blog {
	blogs, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	return blogs
}

// SeedUser resets the user collection and inserts one user with the given
// username and password hash.
func SeedUser(t *testing.T, repo db.UserRepository, username, passwordHash string) *models.User {
	ctx := context.Background()
	require.NoError(t, repo.DeleteAll(ctx))

	created, err := repo.Create(ctx, &models.User{
		Username:     username,
		Name:         "Superuser",
		PasswordHash: passwordHash,
	})
	require.NoError(t, err)
	return created
}

// UsersInDB snapshots the current contents of the user collection.
func UsersInDB(t *testing.T, repo db.UserRepository) []*models.User {
	users, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	return users
}

// SeedContacts resets the contact collection to the given entries.
func SeedContacts(t *testing.T, repo db.ContactRepository, contacts ...*models.Contact) []*models.Contact {
	ctx := context.Background()
	require.NoError(t, repo.DeleteAll(ctx))

	seeded := make([]*models.Contact, 0, len(contacts))
	for _, c := range contacts {
		created, err := repo.Create(ctx, c)
		require.NoError(t, err)
		seeded = append(seeded, created)
	}
	return seeded
}

// ContactsInDB snapshots the current contents of the contact collection.
func ContactsInDB(t *testing.T, repo db.ContactRepository) []*models.Contact {
	contacts, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	return contacts
}
