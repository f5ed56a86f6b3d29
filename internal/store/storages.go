package store

import (
	"context"
	"fmt"

	"github.com/ykarpenko/assistant-bot/internal/config"
	"github.com/ykarpenko/assistant-bot/internal/logger"
)

// Storages groups the storage backends used by the assistant. Currently it
// holds only the snapshot [Storage]; additional backends can be added here
// as the feature set grows.
type Storages struct {
	// Snapshot persists the whole address book between runs.
	Snapshot Storage
}

// NewStorages initialises the storage layer for the engine selected in cfg:
//
//   - "sqlite" and "postgres": opens the database connection, runs pending
//     goose migrations via [DB.Migrate], and wires a contact repository;
//   - "file": wires the JSON snapshot store, no setup required.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("engine", cfg.DB.Engine).Msg("creating new storages...")

	switch cfg.DB.Engine {
	case config.EngineFile:
		return &Storages{
			Snapshot: NewFileSnapshotStorage(cfg.Files.SnapshotPath, logger),
		}, nil

	case config.EngineSQLite, config.EnginePostgres:
		var db *DB
		var err error
		if cfg.DB.Engine == config.EngineSQLite {
			db, err = NewConnectSQLite(ctx, cfg.DB, logger)
		} else {
			db, err = NewConnectPostgres(ctx, cfg.DB, logger)
		}
		if err != nil {
			return nil, fmt.Errorf("database connection error: %w", err)
		}

		if err := db.Migrate(); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}

		return &Storages{
			Snapshot: NewContactRepository(db, logger),
		}, nil

	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownStorageEngine, cfg.DB.Engine)
	}
}
