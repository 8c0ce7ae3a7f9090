package integration

import (
	"testing"

	"bloglist/db"
	"bloglist/internal/blog"
	"bloglist/internal/contact"
	"bloglist/internal/user"
	"bloglist/internal/web"
	"bloglist/tests/testutils"
)

type testEnv struct {
	server      *testutils.TestServer
	blogRepo    db.BlogRepository
	userRepo    db.UserRepository
	contactRepo db.ContactRepository
}

// setupEnv assembles the full application stack against a test repository
// factory and serves it from an httptest server.
func setupEnv(t *testing.T) *testEnv {
	factory, cleanup := testutils.SetupTestRepositoryFactory(t)
	t.Cleanup(cleanup)

	blogRepo := factory.NewBlogRepository()
	userRepo := factory.NewUserRepository()
	contactRepo := factory.NewContactRepository()

	blogHandlers := blog.NewBlogHandlers(blog.NewBlogService(blogRepo))
	userHandlers := user.NewUserHandlers(user.NewUserService(userRepo))
	contactHandlers := contact.NewContactHandlers(contact.NewContactService(contactRepo))

	router := web.SetupRoutes(blogHandlers, userHandlers, contactHandlers)
	server := testutils.NewTestServer(t, router)
	t.Cleanup(server.Close)

	return &testEnv{
		server:      server,
		blogRepo:    blogRepo,
		userRepo:    userRepo,
		contactRepo: contactRepo,
	}
}
