package subject

import (
	"time"

	"osint-tracker/internal/domain/entity"
)

type DTO struct {
	ID           int64     `json:"id"`
	NameEN       string    `json:"name_en"`
	NameFA       string    `json:"name_fa,omitempty"`
	Location     string    `json:"location,omitempty"`
	EventContext string    `json:"event_context,omitempty"`
	Notes        string    `json:"notes,omitempty"`
	Status       string    `json:"status"`
	RiskLevel    string    `json:"risk_level"`
	CreatedAt    time.Time `json:"created_at"`
}

func toDTO(s *entity.Subject) DTO {
	return DTO{
		ID:           s.ID,
		NameEN:       s.NameEN,
		NameFA:       s.NameFA,
		Location:     s.Location,
		EventContext: s.EventContext,
		Notes:        s.Notes,
		Status:       string(s.Status),
		RiskLevel:    string(s.RiskLevel),
		CreatedAt:    s.CreatedAt,
	}
}
