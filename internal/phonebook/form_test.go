package phonebook

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"bloglist/db"
	"bloglist/internal/blog"
	"bloglist/internal/contact"
	"bloglist/internal/user"
	"bloglist/internal/web"
	"bloglist/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFormTest(t *testing.T, confirm ConfirmFunc) (*Form, db.ContactRepository) {
	factory := db.NewRepositoryFactory(nil, "phonebook_test")
	contactRepo := factory.NewContactRepository()

	router := web.SetupRoutes(
		blog.NewBlogHandlers(blog.NewBlogService(factory.NewBlogRepository())),
		user.NewUserHandlers(user.NewUserService(factory.NewUserRepository())),
		contact.NewContactHandlers(contact.NewContactService(contactRepo)),
	)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	form := NewForm(NewClient(server.URL), confirm)
	t.Cleanup(form.Close)
	return form, contactRepo
}

func seedContacts(t *testing.T, repo db.ContactRepository) []*models.Contact {
	ctx := context.Background()
	seeded := make([]*models.Contact, 0, 2)
	for _, c := range []*models.Contact{
		{Name: "Arto Hellas", Number: "040-123456"},
		{Name: "Ada Lovelace", Number: "39-44-5323523"},
	} {
		created, err := repo.Create(ctx, c)
		require.NoError(t, err)
		seeded = append(seeded, created)
	}
	return seeded
}

func TestFormLoad(t *testing.T) {
	form, repo := setupFormTest(t, func(string) bool { return true })
	seedContacts(t, repo)

	require.NoError(t, form.Load(context.Background()))
	assert.Len(t, form.Contacts(), 2)
}

func TestFormSubmitNewContact(t *testing.T) {
	form, repo := setupFormTest(t, func(string) bool {
		t.Fatal("confirm must not be asked for a new name")
		return false
	})
	seedContacts(t, repo)

	ctx := context.Background()
	require.NoError(t, form.Load(ctx))
	require.NoError(t, form.Submit(ctx, "Dan Abramov", "12-43-234345"))

	contacts := form.Contacts()
	require.Len(t, contacts, 3)
	added := contacts[2]
	assert.Equal(t, "Dan Abramov", added.Name)
	assert.NotEmpty(t, added.ID, "the appended contact carries the server's id")

	stored, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 3)

	assert.Equal(t, "Added Dan Abramov", form.Notification())
}

func TestFormSubmitExistingNameConfirmed(t *testing.T) {
	asked := ""
	form, repo := setupFormTest(t, func(name string) bool {
		asked = name
		return true
	})
	seeded := seedContacts(t, repo)

	ctx := context.Background()
	require.NoError(t, form.Load(ctx))
	require.NoError(t, form.Submit(ctx, "Arto Hellas", "040-765432"))

	assert.Equal(t, "Arto Hellas", asked)

	// No duplicate is created; the existing entry's number is replaced.
	contacts := form.Contacts()
	require.Len(t, contacts, 2)
	for _, c := range contacts {
		if c.ID == seeded[0].ID {
			assert.Equal(t, "040-765432", c.Number)
		}
	}

	stored, err := repo.FindByID(ctx, seeded[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "040-765432", stored.Number)

	assert.Equal(t, "Updated Arto Hellas", form.Notification())
}

func TestFormSubmitExistingNameDeclined(t *testing.T) {
	form, repo := setupFormTest(t, func(string) bool { return false })
	seeded := seedContacts(t, repo)

	ctx := context.Background()
	require.NoError(t, form.Load(ctx))
	require.NoError(t, form.Submit(ctx, "Arto Hellas", "040-765432"))

	stored, err := repo.FindByID(ctx, seeded[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "040-123456", stored.Number, "a declined confirmation is a no-op")
	assert.Empty(t, form.Notification())
}

func TestFormUpdateTargetsServerIDAfterReorder(t *testing.T) {
	form, repo := setupFormTest(t, func(string) bool { return true })
	seeded := seedContacts(t, repo)

	ctx := context.Background()
	require.NoError(t, form.Load(ctx))

	// Shift list positions out from under the form: the first contact is
	// removed and re-added, so after the reload it sits at the end of the
	// list with a fresh id.
	require.NoError(t, repo.DeleteByID(ctx, seeded[0].ID))
	readded, err := repo.Create(ctx, &models.Contact{Name: "Arto Hellas", Number: "040-123456"})
	require.NoError(t, err)
	require.NoError(t, form.Load(ctx))

	require.NoError(t, form.Submit(ctx, "Arto Hellas", "040-765432"))

	// The update must land on the matched contact's current server id.
	stored, err := repo.FindByID(ctx, readded.ID)
	require.NoError(t, err)
	assert.Equal(t, "040-765432", stored.Number)

	// The record that now occupies the old position is untouched.
	other, err := repo.FindByID(ctx, seeded[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "39-44-5323523", other.Number)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestFormFilterIsDerivedView(t *testing.T) {
	form, repo := setupFormTest(t, func(string) bool { return true })
	seedContacts(t, repo)

	ctx := context.Background()
	require.NoError(t, form.Load(ctx))

	form.SetFilter("Arto")
	visible := form.Visible()
	require.Len(t, visible, 1)
	assert.Equal(t, "Arto Hellas", visible[0].Name)

	// Case-sensitive substring match.
	form.SetFilter("arto")
	assert.Empty(t, form.Visible())

	form.SetFilter("")
	assert.Len(t, form.Visible(), 2)

	// Filtering never mutates the underlying list.
	assert.Len(t, form.Contacts(), 2)
}

func TestFormNotificationAutoClears(t *testing.T) {
	form, repo := setupFormTest(t, func(string) bool { return true })
	seedContacts(t, repo)
	form.SetNotificationDelay(20 * time.Millisecond)

	ctx := context.Background()
	require.NoError(t, form.Load(ctx))
	require.NoError(t, form.Submit(ctx, "Dan Abramov", "12-43-234345"))
	assert.Equal(t, "Added Dan Abramov", form.Notification())

	assert.Eventually(t, func() bool {
		return form.Notification() == ""
	}, time.Second, 5*time.Millisecond)
}

func TestFormNewerNotificationSupersedes(t *testing.T) {
	form, repo := setupFormTest(t, func(string) bool { return true })
	seedContacts(t, repo)
	form.SetNotificationDelay(50 * time.Millisecond)

	ctx := context.Background()
	require.NoError(t, form.Load(ctx))
	require.NoError(t, form.Submit(ctx, "Dan Abramov", "12-43-234345"))
	require.NoError(t, form.Submit(ctx, "Grace Hopper", "555-0100"))

	// The second message replaced the first and owns the clear timer.
	assert.Equal(t, "Added Grace Hopper", form.Notification())

	assert.Eventually(t, func() bool {
		return form.Notification() == ""
	}, time.Second, 5*time.Millisecond)
}
