// Package contact provides use cases for user-added contact records.
package contact

import (
	"context"
	"fmt"
	"time"

	"osint-tracker/internal/domain/entity"
	"osint-tracker/internal/repository"
)

// CreateInput represents the input parameters for adding a contact.
type CreateInput struct {
	Label       string
	Value       string
	Description string
}

// UpdateInput represents a partial update; nil fields retain the
// stored value.
type UpdateInput struct {
	ID          int64
	Label       *string
	Value       *string
	Description *string
}

// Service provides contact management use cases.
type Service struct {
	Repo repository.ContactRepository
}

// List retrieves contacts, most recently created first.
func (s *Service) List(ctx context.Context) ([]*entity.Contact, error) {
	contacts, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	return contacts, nil
}

// Create adds a new contact record.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Contact, error) {
	contact := &entity.Contact{
		Label:       in.Label,
		Value:       in.Value,
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := contact.Validate(); err != nil {
		return nil, err
	}

	id, err := s.Repo.Create(ctx, contact)
	if err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	contact.ID = id
	return contact, nil
}

// Update applies a partial update to a contact.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Contact, error) {
	if in.ID <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}

	contact, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}
	if contact == nil {
		return nil, fmt.Errorf("contact %d: %w", in.ID, entity.ErrNotFound)
	}

	if in.Label != nil {
		contact.Label = *in.Label
	}
	if in.Value != nil {
		contact.Value = *in.Value
	}
	if in.Description != nil {
		contact.Description = *in.Description
	}

	if err := contact.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, contact); err != nil {
		return nil, fmt.Errorf("update contact: %w", err)
	}
	return contact, nil
}

// Delete removes a contact by ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return &entity.ValidationError{Field: "id", Message: "must be positive"}
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete contact: %w", err)
	}
	return nil
}
