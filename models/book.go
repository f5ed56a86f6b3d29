package models

import (
	"strings"
	"time"
)

// AddressBook is the in-memory store of contact records keyed by name.
// Records are kept in insertion order for stable display output.
//
// AddressBook is not safe for concurrent use; the assistant owns exactly one
// instance and mutates it from a single goroutine.
type AddressBook struct {
	records map[string]*Record
	order   []string
}

// BirthdayReminder is one entry of the upcoming-birthdays report: who to
// congratulate and on which date (weekend birthdays are shifted to the
// following Monday).
type BirthdayReminder struct {
	Name           string
	Congratulation time.Time
}

// NewAddressBook creates an empty address book.
func NewAddressBook() *AddressBook {
	return &AddressBook{
		records: make(map[string]*Record),
	}
}

// AddRecord stores record under its name, replacing any existing record with
// the same name while keeping the original position in display order.
func (b *AddressBook) AddRecord(record *Record) {
	if _, exists := b.records[record.Name]; !exists {
		b.order = append(b.order, record.Name)
	}
	b.records[record.Name] = record
}

// Find returns the record stored under name, or nil when absent.
func (b *AddressBook) Find(name string) *Record {
	return b.records[name]
}

// Delete removes the record stored under name.
// Returns [ErrRecordNotFound] when no such record exists.
func (b *AddressBook) Delete(name string) error {
	if _, exists := b.records[name]; !exists {
		return ErrRecordNotFound
	}

	delete(b.records, name)
	for i, n := range b.order {
		if n == name {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}

	return nil
}

// Len returns the number of records in the book.
func (b *AddressBook) Len() int {
	return len(b.records)
}

// Records returns all records in insertion order.
func (b *AddressBook) Records() []*Record {
	records := make([]*Record, 0, len(b.order))
	for _, name := range b.order {
		records = append(records, b.records[name])
	}
	return records
}

// UpcomingBirthdays reports contacts whose birthday, projected onto the
// current year, falls within the seven-day window starting at now
// (inclusive on both ends, date precision). A projected date landing on
// Saturday or Sunday is rolled forward to the next Monday.
//
// Birthdays in the first days of January are not matched when now is in late
// December: the projection always uses now's year, so the window never wraps
// a year boundary.
func (b *AddressBook) UpcomingBirthdays(now time.Time) []BirthdayReminder {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekLater := today.AddDate(0, 0, 7)

	var reminders []BirthdayReminder
	for _, record := range b.Records() {
		if record.Birthday == nil {
			continue
		}

		birthday := record.Birthday.Date()
		projected := time.Date(today.Year(), birthday.Month(), birthday.Day(), 0, 0, 0, 0, time.UTC)
		if projected.Before(today) || projected.After(weekLater) {
			continue
		}

		switch projected.Weekday() {
		case time.Saturday:
			projected = projected.AddDate(0, 0, 2)
		case time.Sunday:
			projected = projected.AddDate(0, 0, 1)
		}

		reminders = append(reminders, BirthdayReminder{
			Name:           record.Name,
			Congratulation: projected,
		})
	}

	return reminders
}

// String renders the whole book, one record per line, in insertion order.
func (b *AddressBook) String() string {
	if len(b.records) == 0 {
		return "Address book is empty."
	}

	lines := make([]string, 0, len(b.order))
	for _, record := range b.Records() {
		lines = append(lines, record.String())
	}
	return strings.Join(lines, "\n")
}
