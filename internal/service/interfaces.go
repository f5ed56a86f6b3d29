package service

import (
	"context"

	"github.com/ykarpenko/assistant-bot/models"
)

// Book is the application-facing surface of the address book. Command
// handlers talk to the book only through this interface; the implementation
// owns the in-memory state and its persistence.
type Book interface {
	// Load replaces the in-memory book with the persisted snapshot.
	Load(ctx context.Context) error
	// Flush writes the current in-memory book to the snapshot storage.
	Flush(ctx context.Context) error

	// AddContact adds phone to the contact, creating the record when the
	// name is seen for the first time. Created reports whether a new
	// record was made.
	AddContact(ctx context.Context, name, phone string) (created bool, err error)
	// ChangePhone replaces oldPhone with newPhone on an existing contact.
	ChangePhone(ctx context.Context, name, oldPhone, newPhone string) error
	// Phones returns the contact's phone numbers in insertion order.
	Phones(ctx context.Context, name string) ([]models.Phone, error)
	// SetBirthday sets the contact's birthday from a DD.MM.YYYY string.
	SetBirthday(ctx context.Context, name, date string) error
	// Birthday returns the contact's birthday, nil when not set.
	Birthday(ctx context.Context, name string) (*models.Birthday, error)
	// Contacts returns all records in display order.
	Contacts(ctx context.Context) ([]*models.Record, error)
	// UpcomingBirthdays reports contacts to congratulate in the next week.
	UpcomingBirthdays(ctx context.Context) ([]models.BirthdayReminder, error)
	// DeleteContact removes the contact from the book.
	DeleteContact(ctx context.Context, name string) error
}

// BookWrapper defines middleware composition for [Book]. Implementations
// wrap an existing Book to add behavior such as validating or logging.
type BookWrapper interface {
	Wrap(Book) Book // returns a decorated Book applying additional behavior
}
