package entity

import "time"

// Finding represents a documented discovery with source attribution.
// Findings are independent records: SubjectID is an optional reference
// and is never required, so a finding can exist without any subject.
type Finding struct {
	ID          int64
	Title       string
	FindingType string
	Description string
	SourceURL   string
	SourceName  string
	Importance  string
	Tags        []string
	SubjectID   *int64
	CreatedAt   time.Time
}

// DefaultImportance is applied when a finding is created without one.
const DefaultImportance = "Medium"

// Validate checks the Finding invariants before persistence.
// Tags are free-form and intentionally unvalidated: order and
// duplicates must survive a round trip untouched.
func (f *Finding) Validate() error {
	if f.Title == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if f.FindingType == "" {
		return &ValidationError{Field: "finding_type", Message: "is required"}
	}
	if f.SourceURL != "" {
		if err := ValidateURL(f.SourceURL); err != nil {
			return err
		}
	}
	return nil
}
