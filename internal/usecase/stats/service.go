// Package stats aggregates read-only summary counts over subjects.
// It is built entirely on the subject listing: no separate storage
// path, no mutation, safe to call concurrently with any write.
package stats

import (
	"context"
	"fmt"
	"time"

	"osint-tracker/internal/repository"
)

// RecentWindow is the trailing window used for the recent-subject count.
const RecentWindow = 7 * 24 * time.Hour

// Summary holds the aggregated subject counts.
type Summary struct {
	Total       int            `json:"total"`
	ByStatus    map[string]int `json:"by_status"`
	ByRisk      map[string]int `json:"by_risk"`
	RecentCount int            `json:"recent_count"`
}

// Service computes subject statistics.
type Service struct {
	Repo repository.SubjectRepository
}

// Compute groups the full subject list by status and risk level in
// memory and counts subjects created within the trailing window.
func (s *Service) Compute(ctx context.Context) (*Summary, error) {
	subjects, err := s.Repo.List(ctx, repository.SubjectFilter{})
	if err != nil {
		return nil, fmt.Errorf("list subjects: %w", err)
	}

	summary := &Summary{
		Total:    len(subjects),
		ByStatus: make(map[string]int),
		ByRisk:   make(map[string]int),
	}
	cutoff := time.Now().UTC().Add(-RecentWindow)
	for _, subject := range subjects {
		summary.ByStatus[string(subject.Status)]++
		summary.ByRisk[string(subject.RiskLevel)]++
		if subject.CreatedAt.After(cutoff) {
			summary.RecentCount++
		}
	}
	return summary, nil
}
