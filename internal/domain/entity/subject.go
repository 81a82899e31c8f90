package entity

import (
	"fmt"
	"time"
)

// Status is the investigation state of a subject.
// The domain is closed: values outside it are rejected, never coerced.
type Status string

// Valid Status values.
const (
	StatusNew           Status = "New"
	StatusInvestigating Status = "Investigating"
	StatusVerified      Status = "Verified"
)

// IsValid reports whether the status is within the enumerated domain.
func (s Status) IsValid() bool {
	switch s {
	case StatusNew, StatusInvestigating, StatusVerified:
		return true
	}
	return false
}

// ParseStatus validates a raw string against the status domain.
func ParseStatus(raw string) (Status, error) {
	s := Status(raw)
	if !s.IsValid() {
		return "", &ValidationError{
			Field:   "status",
			Message: fmt.Sprintf("invalid value %q (must be New, Investigating, or Verified)", raw),
		}
	}
	return s, nil
}

// RiskLevel is the assessed risk of a subject.
type RiskLevel string

// Valid RiskLevel values.
const (
	RiskUnknown  RiskLevel = "Unknown"
	RiskLow      RiskLevel = "Low"
	RiskMedium   RiskLevel = "Medium"
	RiskHigh     RiskLevel = "High"
	RiskCritical RiskLevel = "Critical"
)

// IsValid reports whether the risk level is within the enumerated domain.
func (r RiskLevel) IsValid() bool {
	switch r {
	case RiskUnknown, RiskLow, RiskMedium, RiskHigh, RiskCritical:
		return true
	}
	return false
}

// ParseRiskLevel validates a raw string against the risk level domain.
func ParseRiskLevel(raw string) (RiskLevel, error) {
	r := RiskLevel(raw)
	if !r.IsValid() {
		return "", &ValidationError{
			Field:   "risk_level",
			Message: fmt.Sprintf("invalid value %q (must be Unknown, Low, Medium, High, or Critical)", raw),
		}
	}
	return r, nil
}

// Subject represents an investigation target record.
// NameEN is the only required field; CreatedAt is set once at creation
// and never mutated afterwards.
type Subject struct {
	ID           int64
	NameEN       string
	NameFA       string
	Location     string
	EventContext string
	Notes        string
	Status       Status
	RiskLevel    RiskLevel
	CreatedAt    time.Time
}

// Validate checks the Subject invariants before persistence.
func (s *Subject) Validate() error {
	if s.NameEN == "" {
		return &ValidationError{Field: "name_en", Message: "is required"}
	}
	if !s.Status.IsValid() {
		return &ValidationError{Field: "status", Message: fmt.Sprintf("invalid value %q", string(s.Status))}
	}
	if !s.RiskLevel.IsValid() {
		return &ValidationError{Field: "risk_level", Message: fmt.Sprintf("invalid value %q", string(s.RiskLevel))}
	}
	return nil
}
