// Package db owns the embedded SQLite database file: opening the
// connection with production-safe pragmas and creating the schema.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// DefaultPath returns the documented location of the database file:
// ~/.osint-tracker/tracker.db.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".osint-tracker", "tracker.db"), nil
}

// Open opens (creating if absent) the SQLite database at path and
// applies the pragmas the tracker depends on. The returned handle is
// limited to a single connection: SQLite allows one writer at a time,
// and funnelling every statement through one connection serializes
// writes without an extra mutex.
func Open(path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	// Pragmas ride in the DSN so the driver re-applies them on every
	// new connection, not just the first one.
	dsn := path +
		"?_pragma=busy_timeout(10000)" +
		"&_pragma=journal_mode(WAL)" +
		"&_pragma=foreign_keys(1)" +
		"&_pragma=synchronous(NORMAL)"

	database, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Single writer, single process. Reads share the same connection;
	// the workload is a handful of local requests, not a pool's worth.
	database.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.PingContext(ctx); err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	slog.Info("database opened", slog.String("path", path))
	return database, nil
}
