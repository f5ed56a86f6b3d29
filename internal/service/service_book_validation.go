package service

import (
	"context"
	"strings"

	"github.com/ykarpenko/assistant-bot/models"
)

// BookValidationService is a [Book] decorator that rejects blank arguments
// before they reach the in-memory book. Format validation of phones and
// birthdays stays with the model constructors; this layer only guards
// against empty and whitespace-only input.
type BookValidationService struct {
	inner Book
}

// NewBookValidationService constructs a [BookWrapper] that adds blank-input
// validation to a [Book].
func NewBookValidationService() BookWrapper {
	return &BookValidationService{}
}

func (v *BookValidationService) Wrap(inner Book) Book {
	v.inner = inner
	return v
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func (v *BookValidationService) Load(ctx context.Context) error {
	return v.inner.Load(ctx)
}

func (v *BookValidationService) Flush(ctx context.Context) error {
	return v.inner.Flush(ctx)
}

func (v *BookValidationService) AddContact(ctx context.Context, name, phone string) (bool, error) {
	if blank(name) {
		return false, ErrValidationEmptyName
	}
	if blank(phone) {
		return false, ErrValidationEmptyValue
	}
	return v.inner.AddContact(ctx, name, phone)
}

func (v *BookValidationService) ChangePhone(ctx context.Context, name, oldPhone, newPhone string) error {
	if blank(name) {
		return ErrValidationEmptyName
	}
	if blank(oldPhone) || blank(newPhone) {
		return ErrValidationEmptyValue
	}
	return v.inner.ChangePhone(ctx, name, oldPhone, newPhone)
}

func (v *BookValidationService) Phones(ctx context.Context, name string) ([]models.Phone, error) {
	if blank(name) {
		return nil, ErrValidationEmptyName
	}
	return v.inner.Phones(ctx, name)
}

func (v *BookValidationService) SetBirthday(ctx context.Context, name, date string) error {
	if blank(name) {
		return ErrValidationEmptyName
	}
	if blank(date) {
		return ErrValidationEmptyValue
	}
	return v.inner.SetBirthday(ctx, name, date)
}

func (v *BookValidationService) Birthday(ctx context.Context, name string) (*models.Birthday, error) {
	if blank(name) {
		return nil, ErrValidationEmptyName
	}
	return v.inner.Birthday(ctx, name)
}

func (v *BookValidationService) Contacts(ctx context.Context) ([]*models.Record, error) {
	return v.inner.Contacts(ctx)
}

func (v *BookValidationService) UpcomingBirthdays(ctx context.Context) ([]models.BirthdayReminder, error) {
	return v.inner.UpcomingBirthdays(ctx)
}

func (v *BookValidationService) DeleteContact(ctx context.Context, name string) error {
	if blank(name) {
		return ErrValidationEmptyName
	}
	return v.inner.DeleteContact(ctx, name)
}
