package models

import (
	"strings"

	"github.com/google/uuid"
)

// Record represents a single contact: an immutable name, an ordered list of
// phone numbers (duplicates allowed, order = insertion order) and an optional
// birthday.
type Record struct {
	// ID is a stable unique identifier assigned at creation time. It is
	// used as the primary key at the persistence layer so that a record
	// keeps its identity across snapshots.
	ID string `json:"id"`

	// Name is the contact's display name and the lookup key inside an
	// [AddressBook]. It never changes after creation.
	Name string `json:"name"`

	// Phones holds the contact's phone numbers in insertion order.
	Phones []Phone `json:"phones"`

	// Birthday is the contact's date of birth, nil when not set.
	Birthday *Birthday `json:"birthday,omitempty"`
}

// NewRecord creates an empty contact record for the given name.
func NewRecord(name string) *Record {
	return &Record{
		ID:   uuid.NewString(),
		Name: name,
	}
}

// AddPhone validates value and appends it to the record's phone list.
// Duplicates are allowed.
func (r *Record) AddPhone(value string) error {
	phone, err := NewPhone(value)
	if err != nil {
		return err
	}

	r.Phones = append(r.Phones, phone)
	return nil
}

// EditPhone replaces the first occurrence of oldValue with newValue,
// preserving its position in the list.
//
// Returns the validation error of newValue if it is malformed, and
// [ErrPhoneNotFound] if oldValue is not present on the record.
func (r *Record) EditPhone(oldValue, newValue string) error {
	replacement, err := NewPhone(newValue)
	if err != nil {
		return err
	}

	for i, p := range r.Phones {
		if p.String() == oldValue {
			r.Phones[i] = replacement
			return nil
		}
	}

	return ErrPhoneNotFound
}

// SetBirthday validates value and sets it as the record's birthday,
// overwriting any previous one.
func (r *Record) SetBirthday(value string) error {
	birthday, err := NewBirthday(value)
	if err != nil {
		return err
	}

	r.Birthday = &birthday
	return nil
}

// String renders the record in the assistant's display form, e.g.
// "John: Phones: 1234567890, Birthday: 01.01.1990".
func (r *Record) String() string {
	phones := "No phones"
	if len(r.Phones) > 0 {
		values := make([]string, len(r.Phones))
		for i, p := range r.Phones {
			values[i] = p.String()
		}
		phones = strings.Join(values, ", ")
	}

	birthday := "Not set"
	if r.Birthday != nil {
		birthday = r.Birthday.String()
	}

	return r.Name + ": Phones: " + phones + ", Birthday: " + birthday
}
