// Package monitor provides use cases for the two capped watch lists:
// monitored Twitter accounts and monitored news sources. The 10-record
// cap is enforced here, not in the schema, so the error can name it.
package monitor

import (
	"context"
	"fmt"
	"sync"
	"time"

	"osint-tracker/internal/domain/entity"
	"osint-tracker/internal/observability/metrics"
	"osint-tracker/internal/repository"
)

// AddTwitterInput represents the input for adding a monitored account.
type AddTwitterInput struct {
	Username    string
	Description string
}

// AddNewsInput represents the input for adding a monitored news source.
type AddNewsInput struct {
	Name        string
	URL         string
	Description string
}

// Service provides watch-list management use cases.
type Service struct {
	Twitter repository.TwitterAccountRepository
	News    repository.NewsSourceRepository

	// mu serializes the duplicate-check + count + insert unit of the
	// Add operations. Statements are individually serialized by the
	// single-connection pool, but the cap holds only if no second add
	// can run between the count and the insert.
	mu sync.Mutex
}

// ListTwitter retrieves the monitored accounts, most recent first.
func (s *Service) ListTwitter(ctx context.Context) ([]*entity.TwitterAccount, error) {
	accounts, err := s.Twitter.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list twitter accounts: %w", err)
	}
	return accounts, nil
}

// AddTwitter adds an account to the watch list. The username is
// normalized ("@" stripped), checked for duplicates, and the cap is
// checked before the insert.
func (s *Service) AddTwitter(ctx context.Context, in AddTwitterInput) (*entity.TwitterAccount, error) {
	account := &entity.TwitterAccount{
		Username:    entity.NormalizeUsername(in.Username),
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := account.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.Twitter.GetByUsername(ctx, account.Username)
	if err != nil {
		return nil, fmt.Errorf("check duplicate account: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateAccount
	}

	count, err := s.Twitter.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count twitter accounts: %w", err)
	}
	if count >= entity.WatchListCap {
		metrics.RecordWatchListRejection("twitter")
		return nil, &entity.CapacityError{Collection: "twitter accounts", Limit: entity.WatchListCap}
	}

	id, err := s.Twitter.Create(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("create twitter account: %w", err)
	}
	account.ID = id
	return account, nil
}

// UpdateTwitter replaces the description of a monitored account.
func (s *Service) UpdateTwitter(ctx context.Context, id int64, description string) (*entity.TwitterAccount, error) {
	if id <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}
	account, err := s.Twitter.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get twitter account: %w", err)
	}
	if account == nil {
		return nil, fmt.Errorf("twitter account %d: %w", id, entity.ErrNotFound)
	}
	account.Description = description
	if err := s.Twitter.Update(ctx, account); err != nil {
		return nil, fmt.Errorf("update twitter account: %w", err)
	}
	return account, nil
}

// DeleteTwitter removes an account from the watch list.
func (s *Service) DeleteTwitter(ctx context.Context, id int64) error {
	if id <= 0 {
		return &entity.ValidationError{Field: "id", Message: "must be positive"}
	}
	if err := s.Twitter.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete twitter account: %w", err)
	}
	return nil
}

// ListNews retrieves the monitored news sources, most recent first.
func (s *Service) ListNews(ctx context.Context) ([]*entity.NewsSource, error) {
	sources, err := s.News.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list news sources: %w", err)
	}
	return sources, nil
}

// AddNews adds a news source to the watch list. A bare hostname gets
// "https://" prepended before validation; URL duplicates and the cap
// are checked before the insert.
func (s *Service) AddNews(ctx context.Context, in AddNewsInput) (*entity.NewsSource, error) {
	source := &entity.NewsSource{
		Name:        in.Name,
		URL:         entity.NormalizeSourceURL(in.URL),
		Description: in.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := source.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.News.GetByURL(ctx, source.URL)
	if err != nil {
		return nil, fmt.Errorf("check duplicate source: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateSource
	}

	count, err := s.News.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count news sources: %w", err)
	}
	if count >= entity.WatchListCap {
		metrics.RecordWatchListRejection("news")
		return nil, &entity.CapacityError{Collection: "news sources", Limit: entity.WatchListCap}
	}

	id, err := s.News.Create(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("create news source: %w", err)
	}
	source.ID = id
	return source, nil
}

// UpdateNews replaces the description of a monitored news source.
func (s *Service) UpdateNews(ctx context.Context, id int64, description string) (*entity.NewsSource, error) {
	if id <= 0 {
		return nil, &entity.ValidationError{Field: "id", Message: "must be positive"}
	}
	source, err := s.News.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get news source: %w", err)
	}
	if source == nil {
		return nil, fmt.Errorf("news source %d: %w", id, entity.ErrNotFound)
	}
	source.Description = description
	if err := s.News.Update(ctx, source); err != nil {
		return nil, fmt.Errorf("update news source: %w", err)
	}
	return source, nil
}

// DeleteNews removes a news source from the watch list.
func (s *Service) DeleteNews(ctx context.Context, id int64) error {
	if id <= 0 {
		return &entity.ValidationError{Field: "id", Message: "must be positive"}
	}
	if err := s.News.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete news source: %w", err)
	}
	return nil
}
