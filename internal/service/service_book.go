package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ykarpenko/assistant-bot/internal/config"
	"github.com/ykarpenko/assistant-bot/internal/logger"
	"github.com/ykarpenko/assistant-bot/internal/store"
	"github.com/ykarpenko/assistant-bot/models"
)

type bookService struct {
	book         *models.AddressBook
	snapshot     store.Storage
	saveOnChange bool
	now          func() time.Time

	logger *logger.Logger
}

// NewBookService constructs a [Book] over an empty in-memory address book
// backed by the given snapshot storage. Call [Book.Load] before serving
// commands to pick up the persisted state.
func NewBookService(snapshot store.Storage, cfg config.App, logger *logger.Logger) Book {
	return &bookService{
		book:         models.NewAddressBook(),
		snapshot:     snapshot,
		saveOnChange: cfg.SaveOnChange,
		now:          time.Now,
		logger:       logger,
	}
}

func (s *bookService) Load(ctx context.Context) error {
	records, err := s.snapshot.Load(ctx)
	if err != nil {
		return fmt.Errorf("load address book: %w", err)
	}

	book := models.NewAddressBook()
	for _, record := range records {
		book.AddRecord(record)
	}
	s.book = book

	s.logger.Debug().
		Str("func", "bookService.Load").
		Int("records", book.Len()).
		Msg("address book loaded")
	return nil
}

func (s *bookService) Flush(ctx context.Context) error {
	if err := s.snapshot.Save(ctx, s.book.Records()); err != nil {
		return fmt.Errorf("save address book: %w", err)
	}

	s.logger.Debug().
		Str("func", "bookService.Flush").
		Int("records", s.book.Len()).
		Msg("address book saved")
	return nil
}

// flushOnChange persists the book after a successful mutation when the
// save-on-change policy is enabled. A failed write is logged but does not
// fail the command: the in-memory state is already updated and will be
// written again at exit.
func (s *bookService) flushOnChange(ctx context.Context) {
	if !s.saveOnChange {
		return
	}
	if err := s.Flush(ctx); err != nil {
		s.logger.Err(err).
			Str("func", "bookService.flushOnChange").
			Msg("failed to save snapshot after change")
	}
}

func (s *bookService) AddContact(ctx context.Context, name, phone string) (bool, error) {
	record := s.book.Find(name)
	created := record == nil
	if created {
		record = models.NewRecord(name)
	}

	if err := record.AddPhone(phone); err != nil {
		return false, err
	}
	if created {
		s.book.AddRecord(record)
	}

	s.flushOnChange(ctx)
	return created, nil
}

func (s *bookService) ChangePhone(ctx context.Context, name, oldPhone, newPhone string) error {
	record := s.book.Find(name)
	if record == nil {
		return models.ErrRecordNotFound
	}

	if err := record.EditPhone(oldPhone, newPhone); err != nil {
		return err
	}

	s.flushOnChange(ctx)
	return nil
}

func (s *bookService) Phones(ctx context.Context, name string) ([]models.Phone, error) {
	record := s.book.Find(name)
	if record == nil {
		return nil, models.ErrRecordNotFound
	}

	return record.Phones, nil
}

func (s *bookService) SetBirthday(ctx context.Context, name, date string) error {
	record := s.book.Find(name)
	if record == nil {
		return models.ErrRecordNotFound
	}

	if err := record.SetBirthday(date); err != nil {
		return err
	}

	s.flushOnChange(ctx)
	return nil
}

func (s *bookService) Birthday(ctx context.Context, name string) (*models.Birthday, error) {
	record := s.book.Find(name)
	if record == nil {
		return nil, models.ErrRecordNotFound
	}

	return record.Birthday, nil
}

func (s *bookService) Contacts(ctx context.Context) ([]*models.Record, error) {
	return s.book.Records(), nil
}

func (s *bookService) UpcomingBirthdays(ctx context.Context) ([]models.BirthdayReminder, error) {
	return s.book.UpcomingBirthdays(s.now()), nil
}

func (s *bookService) DeleteContact(ctx context.Context, name string) error {
	if err := s.book.Delete(name); err != nil {
		return err
	}

	s.flushOnChange(ctx)
	return nil
}
