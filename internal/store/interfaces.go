package store

import (
	"context"

	"github.com/ykarpenko/assistant-bot/models"
)

// Storage persists the whole address book as a snapshot: the book is loaded
// once at startup and written back at exit (and, optionally, after every
// mutating command).
type Storage interface {
	// Load reads the persisted snapshot and returns all records in display
	// order. A missing snapshot yields an empty slice and no error.
	Load(ctx context.Context) ([]*models.Record, error)

	// Save replaces the persisted snapshot with the given records.
	Save(ctx context.Context, records []*models.Record) error

	// Close releases any resources held by the storage backend.
	Close() error
}
