package models

import "errors"

// Sentinel errors returned by model constructors and mutators to signal
// well-known validation and lookup failures. Callers should use [errors.Is]
// to match against these values.
var (
	// ErrPhoneFormat is returned when a phone number is not exactly ten
	// ASCII digits.
	ErrPhoneFormat = errors.New("phone number must be 10 digits")

	// ErrBirthdayFormat is returned when a birthday string does not parse
	// as a DD.MM.YYYY calendar date.
	ErrBirthdayFormat = errors.New("invalid date format, use DD.MM.YYYY")

	// ErrBirthdayInFuture is returned when a birthday parses correctly but
	// lies strictly after the current moment.
	ErrBirthdayInFuture = errors.New("date of birth cannot be in the future")

	// ErrPhoneNotFound is returned by [Record.EditPhone] when the phone
	// number to replace is not present on the record.
	ErrPhoneNotFound = errors.New("phone number not found")

	// ErrRecordNotFound is returned when an operation targets a contact
	// name that does not exist in the address book.
	ErrRecordNotFound = errors.New("no record")
)
