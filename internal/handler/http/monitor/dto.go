package monitor

import (
	"time"

	"osint-tracker/internal/domain/entity"
)

type TwitterDTO struct {
	ID          int64     `json:"id"`
	Username    string    `json:"username"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type NewsDTO struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	URL         string    `json:"url"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toTwitterDTO(a *entity.TwitterAccount) TwitterDTO {
	return TwitterDTO{
		ID:          a.ID,
		Username:    a.Username,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
	}
}

func toNewsDTO(n *entity.NewsSource) NewsDTO {
	return NewsDTO{
		ID:          n.ID,
		Name:        n.Name,
		URL:         n.URL,
		Description: n.Description,
		CreatedAt:   n.CreatedAt,
	}
}
