package contact

import (
	"context"
	"errors"
	"fmt"

	"bloglist/db"
	"bloglist/models"
)

var (
	ErrNameRequired   = errors.New("name is required")
	ErrNumberRequired = errors.New("number is required")
	ErrNameTaken      = errors.New("name must be unique")
)

type ContactService struct {
	repo db.ContactRepository
}

func NewContactService(repo db.ContactRepository) *ContactService {
	return &ContactService{repo: repo}
}

type ContactInput struct {
	Name   string `json:"name"`
	Number string `json:"number"`
}

func (in ContactInput) validate() error {
	if in.Name == "" {
		return ErrNameRequired
	}
	if in.Number == "" {
		return ErrNumberRequired
	}
	return nil
}

func (s *ContactService) GetAll(ctx context.Context) ([]*models.Contact, error) {
	contacts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing contacts: %w", err)
	}
	if contacts == nil {
		contacts = []*models.Contact{}
	}
	return contacts, nil
}

func (s *ContactService) Create(ctx context.Context, input ContactInput) (*models.Contact, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, &models.Contact{
		Name:   input.Name,
		Number: input.Number,
	})
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return nil, ErrNameTaken
		}
		return nil, fmt.Errorf("error creating contact: %w", err)
	}
	return created, nil
}

// Update replaces a contact's fields and returns the stored record as a
// subsequent read would see it.
func (s *ContactService) Update(ctx context.Context, id string, input ContactInput) (*models.Contact, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	updated, err := s.repo.UpdateByID(ctx, id, &models.Contact{
		Name:   input.Name,
		Number: input.Number,
	})
	if err != nil {
		if errors.Is(err, db.ErrDuplicate) {
			return nil, ErrNameTaken
		}
		return nil, err
	}
	return updated, nil
}

// Delete removes a contact. Deleting an absent id is not an error.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	err := s.repo.DeleteByID(ctx, id)
	if err != nil && !errors.Is(err, db.ErrNotFound) {
		return fmt.Errorf("error deleting contact: %w", err)
	}
	return nil
}
