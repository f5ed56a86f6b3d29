package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/ykarpenko/assistant-bot/internal/logger"
	"github.com/ykarpenko/assistant-bot/models"
)

// snapshotVersion is the format number written into every JSON snapshot.
// Bump it when the persisted shape changes.
const snapshotVersion = 1

// fileSnapshotStorage is the JSON-file implementation of [Storage]. The whole
// address book is written as one pretty-printed, versioned document, so the
// snapshot stays inspectable and editable with ordinary tools.
type fileSnapshotStorage struct {
	path   string
	logger *logger.Logger
}

type persistedSnapshot struct {
	Version int               `json:"version"`
	Records []persistedRecord `json:"records"`
}

type persistedRecord struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Birthday string   `json:"birthday,omitempty"`
}

// NewFileSnapshotStorage constructs a [Storage] that persists the book as a
// JSON file at path. The file is created on first Save; a missing file loads
// as an empty book.
func NewFileSnapshotStorage(path string, logger *logger.Logger) Storage {
	logger.Debug().Str("path", path).Msg("creating file snapshot storage")
	return &fileSnapshotStorage{
		path:   path,
		logger: logger,
	}
}

func (s *fileSnapshotStorage) Load(ctx context.Context) ([]*models.Record, error) {
	log := logger.FromContext(ctx)

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read snapshot file: %w", err)
	}

	var snapshot persistedSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		log.Err(err).
			Str("func", "fileSnapshotStorage.Load").
			Str("path", s.path).
			Msg("failed to decode snapshot file")
		return nil, fmt.Errorf("%w: %w", ErrSnapshotCorrupted, err)
	}

	if snapshot.Version != snapshotVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, snapshot.Version)
	}

	records := make([]*models.Record, 0, len(snapshot.Records))
	for _, persisted := range snapshot.Records {
		record := &models.Record{ID: persisted.ID, Name: persisted.Name}
		if record.ID == "" {
			// snapshot predates IDs or was written by hand
			record.ID = uuid.NewString()
		}

		for _, number := range persisted.Phones {
			if err := record.AddPhone(number); err != nil {
				return nil, fmt.Errorf("%w: contact %q: %w", ErrSnapshotCorrupted, persisted.Name, err)
			}
		}
		if persisted.Birthday != "" {
			if err := record.SetBirthday(persisted.Birthday); err != nil {
				return nil, fmt.Errorf("%w: contact %q: %w", ErrSnapshotCorrupted, persisted.Name, err)
			}
		}

		records = append(records, record)
	}

	return records, nil
}

func (s *fileSnapshotStorage) Save(ctx context.Context, records []*models.Record) error {
	log := logger.FromContext(ctx)

	snapshot := persistedSnapshot{
		Version: snapshotVersion,
		Records: make([]persistedRecord, 0, len(records)),
	}
	for _, record := range records {
		persisted := persistedRecord{
			ID:     record.ID,
			Name:   record.Name,
			Phones: make([]string, 0, len(record.Phones)),
		}
		for _, phone := range record.Phones {
			persisted.Phones = append(persisted.Phones, phone.String())
		}
		if record.Birthday != nil {
			persisted.Birthday = record.Birthday.String()
		}

		snapshot.Records = append(snapshot.Records, persisted)
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create snapshot dir: %w", err)
		}
	}

	payload, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}

	if err := os.WriteFile(s.path, payload, 0o600); err != nil {
		log.Err(err).
			Str("func", "fileSnapshotStorage.Save").
			Str("path", s.path).
			Msg("failed to write snapshot file")
		return fmt.Errorf("write snapshot file: %w", err)
	}

	return nil
}

func (s *fileSnapshotStorage) Close() error {
	return nil
}
