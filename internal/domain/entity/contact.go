package entity

import "time"

// Contact is a user-added contact record, e.g. an NGO helpline or a
// journalist tip line. Label and Value are required; Value is free-form
// (an email address, URL, or phone number).
type Contact struct {
	ID          int64
	Label       string
	Value       string
	Description string
	CreatedAt   time.Time
}

// Validate checks the Contact invariants before persistence.
func (c *Contact) Validate() error {
	if c.Label == "" {
		return &ValidationError{Field: "label", Message: "is required"}
	}
	if c.Value == "" {
		return &ValidationError{Field: "value", Message: "is required"}
	}
	return nil
}
