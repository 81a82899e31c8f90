package finding

import (
	"time"

	"osint-tracker/internal/domain/entity"
)

type DTO struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	FindingType string    `json:"finding_type"`
	Description string    `json:"description,omitempty"`
	SourceURL   string    `json:"source_url,omitempty"`
	SourceName  string    `json:"source_name,omitempty"`
	Importance  string    `json:"importance"`
	Tags        []string  `json:"tags"`
	SubjectID   *int64    `json:"subject_id,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toDTO(f *entity.Finding) DTO {
	tags := f.Tags
	if tags == nil {
		tags = []string{}
	}
	return DTO{
		ID:          f.ID,
		Title:       f.Title,
		FindingType: f.FindingType,
		Description: f.Description,
		SourceURL:   f.SourceURL,
		SourceName:  f.SourceName,
		Importance:  f.Importance,
		Tags:        tags,
		SubjectID:   f.SubjectID,
		CreatedAt:   f.CreatedAt,
	}
}
