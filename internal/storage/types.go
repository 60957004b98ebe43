package storage

import "time"

// Snapshot is a locally cached copy of remote data, labeled with the time it
// was fetched so the UI can mark it stale.
type Snapshot struct {
	Payload   string    `json:"payload"` // JSON blob for flexibility
	FetchedAt time.Time `json:"fetched_at"`
}

// Store interface defines the methods for durable client-side state. The
// bearer token lives here under a fixed credential key; only the session
// store writes it.
type Store interface {
	Close() error

	// Credential key/value storage
	SetCredential(key, value string) error
	GetCredential(key string) (string, error) // empty string when absent
	DeleteCredential(key string) error

	// Read cache for the bookings screen
	SaveBookingSnapshot(userID, payload string) error
	GetBookingSnapshot(userID string) (*Snapshot, error) // nil when absent
}
