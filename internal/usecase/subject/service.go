// Package subject provides use cases for managing investigation
// subjects: creation, partial updates, filtered listing and deletion,
// with enum domains enforced before anything reaches storage.
package subject

import (
	"context"
	"fmt"
	"time"

	"osint-tracker/internal/domain/entity"
	"osint-tracker/internal/observability/metrics"
	"osint-tracker/internal/repository"
)

// CreateInput represents the input parameters for creating a new subject.
type CreateInput struct {
	NameEN       string
	NameFA       string
	Location     string
	EventContext string
	Notes        string
}

// UpdateInput represents a partial update. Nil fields retain the
// stored value; supplied enum fields are validated against their
// domain before anything is written.
type UpdateInput struct {
	ID        int64
	Status    *string
	RiskLevel *string
	Notes     *string
}

// ListInput carries optional equality filters as raw strings; values
// outside the enum domains are rejected, not ignored.
type ListInput struct {
	Status    *string
	RiskLevel *string
}

// Service provides subject management use cases.
type Service struct {
	Repo repository.SubjectRepository
}

// Get retrieves a single subject by ID.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Subject, error) {
	if id <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}
	subject, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get subject: %w", err)
	}
	if subject == nil {
		return nil, fmt.Errorf("subject %d: %w", id, entity.ErrNotFound)
	}
	return subject, nil
}

// List retrieves subjects, most recently created first, optionally
// narrowed by status and risk level equality filters.
func (s *Service) List(ctx context.Context, in ListInput) ([]*entity.Subject, error) {
	var filter repository.SubjectFilter
	if in.Status != nil {
		status, err := entity.ParseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		filter.Status = &status
	}
	if in.RiskLevel != nil {
		risk, err := entity.ParseRiskLevel(*in.RiskLevel)
		if err != nil {
			return nil, err
		}
		filter.RiskLevel = &risk
	}

	subjects, err := s.Repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}
	return subjects, nil
}

// Create creates a new subject. Status defaults to New and risk level
// to Unknown; the creation timestamp is set here and never mutated.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Subject, error) {
	subject := &entity.Subject{
		NameEN:       in.NameEN,
		NameFA:       in.NameFA,
		Location:     in.Location,
		EventContext: in.EventContext,
		Notes:        in.Notes,
		Status:       entity.StatusNew,
		RiskLevel:    entity.RiskUnknown,
		CreatedAt:    time.Now().UTC(),
	}
	if err := subject.Validate(); err != nil {
		return nil, err
	}

	id, err := s.Repo.Create(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("create subject: %w", err)
	}
	subject.ID = id

	metrics.RecordSubjectCreated()
	return subject, nil
}

// Update applies a partial update to a subject's mutable fields.
// An invalid enum value fails with a ValidationError before any write,
// leaving the stored record unchanged.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Subject, error) {
	if in.ID <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}

	subject, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get subject: %w", err)
	}
	if subject == nil {
		return nil, fmt.Errorf("subject %d: %w", in.ID, entity.ErrNotFound)
	}

	if in.Status != nil {
		status, err := entity.ParseStatus(*in.Status)
		if err != nil {
			return nil, err
		}
		subject.Status = status
	}
	if in.RiskLevel != nil {
		risk, err := entity.ParseRiskLevel(*in.RiskLevel)
		if err != nil {
			return nil, err
		}
		subject.RiskLevel = risk
	}
	if in.Notes != nil {
		subject.Notes = *in.Notes
	}

	if err := s.Repo.Update(ctx, subject); err != nil {
		return nil, fmt.Errorf("update subject: %w", err)
	}
	return subject, nil
}

// Delete removes a subject by ID. Deleting a missing ID reports
// NotFound rather than an error; findings are independent records and
// are never cascade-deleted.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return &entity.ValidationError{Field: "id", Message: "must be positive"}
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete subject: %w", err)
	}
	return nil
}
