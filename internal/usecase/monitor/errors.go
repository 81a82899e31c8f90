package monitor

import "errors"

// Sentinel errors for watch-list use case operations.
var (
	// ErrDuplicateAccount indicates that the username is already on the
	// Twitter watch list.
	ErrDuplicateAccount = errors.New("twitter account already exists")

	// ErrDuplicateSource indicates that a news source with the same URL
	// is already on the watch list.
	ErrDuplicateSource = errors.New("news source with this URL already exists")
)
