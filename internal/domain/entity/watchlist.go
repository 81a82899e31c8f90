package entity

import (
	"strings"
	"time"
)

// WatchListCap is the fixed limit of live records per watch-list
// collection (monitored Twitter accounts, monitored news sources).
const WatchListCap = 10

// TwitterAccount is a manually-entered Twitter account on the watch list.
// It is a record to check by hand, not a live poller target.
type TwitterAccount struct {
	ID          int64
	Username    string
	Description string
	CreatedAt   time.Time
}

// Validate checks the TwitterAccount invariants before persistence.
func (a *TwitterAccount) Validate() error {
	if a.Username == "" {
		return &ValidationError{Field: "username", Message: "is required"}
	}
	return nil
}

// NormalizeUsername strips a leading "@" and surrounding whitespace
// from a Twitter handle.
func NormalizeUsername(raw string) string {
	return strings.TrimPrefix(strings.TrimSpace(raw), "@")
}

// NewsSource is a manually-entered news site on the watch list.
type NewsSource struct {
	ID          int64
	Name        string
	URL         string
	Description string
	CreatedAt   time.Time
}

// Validate checks the NewsSource invariants before persistence.
func (n *NewsSource) Validate() error {
	if n.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if n.URL == "" {
		return &ValidationError{Field: "url", Message: "is required"}
	}
	return ValidateURL(n.URL)
}
