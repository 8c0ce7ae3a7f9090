package phonebook

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"bloglist/models"
)

// DefaultNotificationDelay is how long a status message stays visible.
const DefaultNotificationDelay = 3 * time.Second

// ConfirmFunc asks whether an existing contact's number should be replaced.
type ConfirmFunc func(name string) bool

// Form is the phonebook view-state container. It mirrors the server's
// contact list, derives a filtered view from it, and decides between create
// and update by matching the submitted name against the local list. Updates
// always travel by the contact's server id, never by list position.
type Form struct {
	client  *Client
	confirm ConfirmFunc

	mu           sync.Mutex
	contacts     []models.Contact
	filter       string
	notification string
	notifyAfter  time.Duration
	clearTimer   *time.Timer
}

func NewForm(client *Client, confirm ConfirmFunc) *Form {
	return &Form{
		client:      client,
		confirm:     confirm,
		notifyAfter: DefaultNotificationDelay,
	}
}

// SetNotificationDelay overrides the auto-clear delay. Tests use a short one.
func (f *Form) SetNotificationDelay(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notifyAfter = d
}

// Load fetches all contacts into local state.
func (f *Form) Load(ctx context.Context) error {
	contacts, err := f.client.GetAll(ctx)
	if err != nil {
		return fmt.Errorf("error loading contacts: %w", err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.contacts = contacts
	return nil
}

// Submit creates a contact, or updates the one whose name matches exactly.
// An update is only issued after the confirm callback accepts; a declined
// confirmation is a no-op.
func (f *Form) Submit(ctx context.Context, name, number string) error {
	f.mu.Lock()
	var existing *models.Contact
	for i := range f.contacts {
		if f.contacts[i].Name == name {
			existing = &f.contacts[i]
			break
		}
	}
	var existingID string
	if existing != nil {
		existingID = existing.ID
	}
	f.mu.Unlock()

	if existing != nil {
		if !f.confirm(name) {
			return nil
		}

		updated, err := f.client.Update(ctx, existingID, models.Contact{Name: name, Number: number})
		if err != nil {
			return fmt.Errorf("error updating contact: %w", err)
		}

		f.mu.Lock()
		for i := range f.contacts {
			if f.contacts[i].ID == updated.ID {
				f.contacts[i] = *updated
				break
			}
		}
		f.mu.Unlock()

		f.notify(fmt.Sprintf("Updated %s", updated.Name))
		return nil
	}

	created, err := f.client.Create(ctx, models.Contact{Name: name, Number: number})
	if err != nil {
		return fmt.Errorf("error creating contact: %w", err)
	}

	f.mu.Lock()
	f.contacts = append(f.contacts, *created)
	f.mu.Unlock()

	f.notify(fmt.Sprintf("Added %s", created.Name))
	return nil
}

// SetFilter sets the name filter for Visible.
func (f *Form) SetFilter(q string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filter = q
}

// Visible returns the contacts whose name contains the filter text. It is a
// derived view; the underlying list is never mutated.
func (f *Form) Visible() []models.Contact {
	f.mu.Lock()
	defer f.mu.Unlock()

	visible := make([]models.Contact, 0, len(f.contacts))
	for _, c := range f.contacts {
		if strings.Contains(c.Name, f.filter) {
			visible = append(visible, c)
		}
	}
	return visible
}

// Contacts returns a copy of the full local list.
func (f *Form) Contacts() []models.Contact {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.Contact(nil), f.contacts...)
}

// Notification returns the current status message, or "" once cleared.
func (f *Form) Notification() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.notification
}

// notify sets the message and schedules its clearing. A newer message stops
// the pending timer before scheduling its own, so an old timer can never
// wipe out a fresher message.
func (f *Form) notify(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.clearTimer != nil {
		f.clearTimer.Stop()
	}
	f.notification = message
	f.clearTimer = time.AfterFunc(f.notifyAfter, func() {
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.notification == message {
			f.notification = ""
		}
	})
}

// Close stops any pending notification timer.
func (f *Form) Close() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.clearTimer != nil {
		f.clearTimer.Stop()
		f.clearTimer = nil
	}
}
