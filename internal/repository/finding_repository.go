package repository

import (
	"context"

	"osint-tracker/internal/domain/entity"
)

// FindingFilter narrows a finding listing. Matching is exact and
// case-sensitive; nil fields are ignored.
type FindingFilter struct {
	FindingType *string
	Importance  *string
}

type FindingRepository interface {
	Get(ctx context.Context, id int64) (*entity.Finding, error)
	List(ctx context.Context, filter FindingFilter) ([]*entity.Finding, error)
	Create(ctx context.Context, finding *entity.Finding) (int64, error)
	Update(ctx context.Context, finding *entity.Finding) error
	Delete(ctx context.Context, id int64) error
}
