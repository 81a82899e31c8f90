package db

import "database/sql"

// MigrateUp idempotently ensures every table and index exists.
// Safe to call on every process start; there is no migration history,
// only CREATE IF NOT EXISTS.
func MigrateUp(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS subjects (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    name_en       TEXT NOT NULL,
    name_fa       TEXT NOT NULL DEFAULT '',
    location      TEXT NOT NULL DEFAULT '',
    event_context TEXT NOT NULL DEFAULT '',
    notes         TEXT NOT NULL DEFAULT '',
    status        TEXT NOT NULL DEFAULT 'New',
    risk_level    TEXT NOT NULL DEFAULT 'Unknown',
    created_at    TEXT NOT NULL
)`,
		`CREATE TABLE IF NOT EXISTS twitter_accounts (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    username    TEXT NOT NULL UNIQUE,
    description TEXT NOT NULL DEFAULT '',
    created_at  TEXT NOT NULL
)`,
		`CREATE TABLE IF NOT EXISTS news_sources (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    name        TEXT NOT NULL,
    url         TEXT NOT NULL UNIQUE,
    description TEXT NOT NULL DEFAULT '',
    created_at  TEXT NOT NULL
)`,
		`CREATE TABLE IF NOT EXISTS findings (
    id           INTEGER PRIMARY KEY AUTOINCREMENT,
    title        TEXT NOT NULL,
    finding_type TEXT NOT NULL,
    description  TEXT NOT NULL DEFAULT '',
    source_url   TEXT NOT NULL DEFAULT '',
    source_name  TEXT NOT NULL DEFAULT '',
    importance   TEXT NOT NULL DEFAULT 'Medium',
    tags         TEXT NOT NULL DEFAULT '[]',
    subject_id   INTEGER,
    created_at   TEXT NOT NULL
)`,
		`CREATE TABLE IF NOT EXISTS contacts (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    label       TEXT NOT NULL,
    value       TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    created_at  TEXT NOT NULL
)`,
		// Listing is always most-recently-created first.
		`CREATE INDEX IF NOT EXISTS idx_subjects_created_at ON subjects(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_subjects_status ON subjects(status)`,
		`CREATE INDEX IF NOT EXISTS idx_findings_created_at ON findings(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_findings_finding_type ON findings(finding_type)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
