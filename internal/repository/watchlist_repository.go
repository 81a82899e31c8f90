package repository

import (
	"context"

	"osint-tracker/internal/domain/entity"
)

type TwitterAccountRepository interface {
	Get(ctx context.Context, id int64) (*entity.TwitterAccount, error)
	GetByUsername(ctx context.Context, username string) (*entity.TwitterAccount, error)
	List(ctx context.Context) ([]*entity.TwitterAccount, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, account *entity.TwitterAccount) (int64, error)
	Update(ctx context.Context, account *entity.TwitterAccount) error
	Delete(ctx context.Context, id int64) error
}

type NewsSourceRepository interface {
	Get(ctx context.Context, id int64) (*entity.NewsSource, error)
	GetByURL(ctx context.Context, url string) (*entity.NewsSource, error)
	List(ctx context.Context) ([]*entity.NewsSource, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, source *entity.NewsSource) (int64, error)
	Update(ctx context.Context, source *entity.NewsSource) error
	Delete(ctx context.Context, id int64) error
}
