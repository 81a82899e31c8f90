// Package finding provides use cases for documented discoveries.
// Findings are standalone records: the subject reference is optional
// and deleting a subject never touches its findings.
package finding

import (
	"context"
	"fmt"
	"time"

	"osint-tracker/internal/domain/entity"
	"osint-tracker/internal/observability/metrics"
	"osint-tracker/internal/repository"
)

// CreateInput represents the input parameters for documenting a finding.
type CreateInput struct {
	Title       string
	FindingType string
	Description string
	SourceURL   string
	SourceName  string
	Importance  string
	Tags        []string
	SubjectID   *int64
}

// UpdateInput represents a partial update; nil fields retain the
// stored value. Tags replace the stored list wholesale when supplied.
type UpdateInput struct {
	ID          int64
	Title       *string
	FindingType *string
	Description *string
	SourceURL   *string
	SourceName  *string
	Importance  *string
	Tags        []string
	SubjectID   *int64
}

// ListInput carries optional exact-match filters. Matching is
// case-sensitive: "Sanctions" never matches "sanctions".
type ListInput struct {
	FindingType *string
	Importance  *string
}

// Service provides finding management use cases.
type Service struct {
	Repo repository.FindingRepository
}

// Get retrieves a single finding by ID.
func (s *Service) Get(ctx context.Context, id int64) (*entity.Finding, error) {
	if id <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}
	finding, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get finding: %w", err)
	}
	if finding == nil {
		return nil, fmt.Errorf("finding %d: %w", id, entity.ErrNotFound)
	}
	return finding, nil
}

// List retrieves findings, most recently created first.
func (s *Service) List(ctx context.Context, in ListInput) ([]*entity.Finding, error) {
	findings, err := s.Repo.List(ctx, repository.FindingFilter{
		FindingType: in.FindingType,
		Importance:  in.Importance,
	})
	if err != nil {
		return nil, fmt.Errorf("list findings: %w", err)
	}
	return findings, nil
}

// Create documents a new finding. Importance defaults to Medium; tags
// are stored exactly as supplied, order and duplicates included.
func (s *Service) Create(ctx context.Context, in CreateInput) (*entity.Finding, error) {
	importance := in.Importance
	if importance == "" {
		importance = entity.DefaultImportance
	}
	finding := &entity.Finding{
		Title:       in.Title,
		FindingType: in.FindingType,
		Description: in.Description,
		SourceURL:   in.SourceURL,
		SourceName:  in.SourceName,
		Importance:  importance,
		Tags:        in.Tags,
		SubjectID:   in.SubjectID,
		CreatedAt:   time.Now().UTC(),
	}
	if err := finding.Validate(); err != nil {
		return nil, err
	}

	id, err := s.Repo.Create(ctx, finding)
	if err != nil {
		return nil, fmt.Errorf("create finding: %w", err)
	}
	finding.ID = id

	metrics.RecordFindingCreated(finding.FindingType)
	return finding, nil
}

// Update applies a partial update to a finding.
func (s *Service) Update(ctx context.Context, in UpdateInput) (*entity.Finding, error) {
	if in.ID <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}

	finding, err := s.Repo.Get(ctx, in.ID)
	if err != nil {
		return nil, fmt.Errorf("get finding: %w", err)
	}
	if finding == nil {
		return nil, fmt.Errorf("finding %d: %w", in.ID, entity.ErrNotFound)
	}

	if in.Title != nil {
		finding.Title = *in.Title
	}
	if in.FindingType != nil {
		finding.FindingType = *in.FindingType
	}
	if in.Description != nil {
		finding.Description = *in.Description
	}
	if in.SourceURL != nil {
		finding.SourceURL = *in.SourceURL
	}
	if in.SourceName != nil {
		finding.SourceName = *in.SourceName
	}
	if in.Importance != nil {
		finding.Importance = *in.Importance
	}
	if in.Tags != nil {
		finding.Tags = in.Tags
	}
	if in.SubjectID != nil {
		finding.SubjectID = in.SubjectID
	}

	if err := finding.Validate(); err != nil {
		return nil, err
	}
	if err := s.Repo.Update(ctx, finding); err != nil {
		return nil, fmt.Errorf("update finding: %w", err)
	}
	return finding, nil
}

// Delete removes a finding by ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return &entity.ValidationError{Field: "id", Message: "must be positive"}
	}
	if err := s.Repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete finding: %w", err)
	}
	return nil
}
