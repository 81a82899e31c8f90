package repository

import (
	"context"

	"osint-tracker/internal/domain/entity"
)

type ContactRepository interface {
	Get(ctx context.Context, id int64) (*entity.Contact, error)
	List(ctx context.Context) ([]*entity.Contact, error)
	Create(ctx context.Context, contact *entity.Contact) (int64, error)
	Update(ctx context.Context, contact *entity.Contact) error
	Delete(ctx context.Context, id int64) error
}
