package service

import (
	"github.com/ykarpenko/assistant-bot/internal/config"
	"github.com/ykarpenko/assistant-bot/internal/logger"
	"github.com/ykarpenko/assistant-bot/internal/store"
)

// Services groups all application services into a single value that can be
// passed around the handler layer.
type Services struct {
	Book Book
}

// NewServices wires the service layer: the book service over the snapshot
// storage, decorated with blank-input validation.
func NewServices(storages *store.Storages, cfg config.App, logger *logger.Logger) *Services {
	book := NewBookService(storages.Snapshot, cfg, logger)

	return &Services{
		Book: NewBookValidationService().Wrap(book),
	}
}
