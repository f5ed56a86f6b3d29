// Package client assembles the assistant application: it loads the persisted
// address book, runs the interactive command loop, and writes the snapshot
// back when the session ends.
package client

import (
	"context"
	"fmt"

	"github.com/ykarpenko/assistant-bot/internal/cli"
	"github.com/ykarpenko/assistant-bot/internal/logger"
	"github.com/ykarpenko/assistant-bot/internal/service"
	"github.com/ykarpenko/assistant-bot/internal/store"
)

type App struct {
	services *service.Services
	storages *store.Storages
	repl     *cli.REPL
	logger   *logger.Logger
}

func NewApp(services *service.Services, storages *store.Storages, repl *cli.REPL, logger *logger.Logger) (*App, error) {
	return &App{
		services: services,
		storages: storages,
		repl:     repl,
		logger:   logger,
	}, nil
}

// Run drives one assistant session: load the snapshot, serve commands until
// close/exit or end of input, then flush the snapshot and release the
// storage backend.
func (a *App) Run(ctx context.Context) error {
	ctx = a.logger.WithContext(ctx)

	// the storage backend is released on every exit path, including a
	// failed load or flush
	defer func() {
		if err := a.storages.Snapshot.Close(); err != nil {
			a.logger.Err(err).Msg("error closing storage")
		}
	}()

	if err := a.services.Book.Load(ctx); err != nil {
		return fmt.Errorf("load address book: %w", err)
	}

	replErr := a.repl.Run(ctx)

	if err := a.services.Book.Flush(ctx); err != nil {
		return fmt.Errorf("save address book: %w", err)
	}

	return replErr
}
