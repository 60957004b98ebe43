package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store and applies migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &SQLiteStore{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// DefaultPath returns the per-user database location, creating the parent
// directory if needed.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config dir: %w", err)
	}
	appDir := filepath.Join(dir, "podly")
	if err := os.MkdirAll(appDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create config dir: %w", err)
	}
	return filepath.Join(appDir, "podly.db"), nil
}

func (s *SQLiteStore) migrate() error {
	query := `
	CREATE TABLE IF NOT EXISTS credentials (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE TABLE IF NOT EXISTS booking_snapshots (
		user_id TEXT PRIMARY KEY,
		payload TEXT NOT NULL,
		fetched_at DATETIME NOT NULL
	);
	`
	_, err := s.db.Exec(query)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// SetCredential stores a value under key, replacing any previous value.
func (s *SQLiteStore) SetCredential(key, value string) error {
	query := `INSERT OR REPLACE INTO credentials (key, value, updated_at) VALUES (?, ?, ?)`
	_, err := s.db.Exec(query, key, value, time.Now())
	return err
}

// GetCredential returns the value stored under key, or an empty string when
// the key is absent.
func (s *SQLiteStore) GetCredential(key string) (string, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// DeleteCredential removes key. Deleting an absent key is not an error.
func (s *SQLiteStore) DeleteCredential(key string) error {
	_, err := s.db.Exec(`DELETE FROM credentials WHERE key = ?`, key)
	return err
}

// SaveBookingSnapshot replaces the cached booking history for a user.
func (s *SQLiteStore) SaveBookingSnapshot(userID, payload string) error {
	query := `INSERT OR REPLACE INTO booking_snapshots (user_id, payload, fetched_at) VALUES (?, ?, ?)`
	_, err := s.db.Exec(query, userID, payload, time.Now())
	return err
}

// GetBookingSnapshot returns the cached booking history for a user, or nil
// when nothing has been cached yet.
func (s *SQLiteStore) GetBookingSnapshot(userID string) (*Snapshot, error) {
	var snap Snapshot
	err := s.db.QueryRow(
		`SELECT payload, fetched_at FROM booking_snapshots WHERE user_id = ?`, userID,
	).Scan(&snap.Payload, &snap.FetchedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &snap, nil
}
