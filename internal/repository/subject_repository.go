package repository

import (
	"context"

	"osint-tracker/internal/domain/entity"
)

// SubjectFilter narrows a subject listing. Nil fields are ignored.
type SubjectFilter struct {
	Status    *entity.Status
	RiskLevel *entity.RiskLevel
}

type SubjectRepository interface {
	Get(ctx context.Context, id int64) (*entity.Subject, error)
	List(ctx context.Context, filter SubjectFilter) ([]*entity.Subject, error)
	Create(ctx context.Context, subject *entity.Subject) (int64, error)
	Update(ctx context.Context, subject *entity.Subject) error
	Delete(ctx context.Context, id int64) error
}
