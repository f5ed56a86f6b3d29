package models

import (
	"fmt"
	"time"
)

// BirthdayLayout is the wire and display format for birthdays (DD.MM.YYYY).
const BirthdayLayout = "02.01.2006"

// Birthday is a validated date of birth. Use [NewBirthday] so every Birthday
// in the system is guaranteed to be a real calendar date not later than the
// moment of creation.
type Birthday struct {
	date time.Time
}

// NewBirthday parses value in [BirthdayLayout] and returns it as a
// [Birthday].
//
// Returns [ErrBirthdayFormat] if value does not parse, and
// [ErrBirthdayInFuture] if the parsed date lies strictly after today.
// The comparison is at date precision in the local calendar, so a birthday
// dated today is accepted in every timezone.
func NewBirthday(value string) (Birthday, error) {
	dt, err := time.Parse(BirthdayLayout, value)
	if err != nil {
		return Birthday{}, fmt.Errorf("%w: %q", ErrBirthdayFormat, value)
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if dt.After(today) {
		return Birthday{}, ErrBirthdayInFuture
	}

	return Birthday{date: dt}, nil
}

// Date returns the underlying calendar date (midnight UTC).
func (b Birthday) Date() time.Time {
	return b.date
}

func (b Birthday) String() string {
	return b.date.Format(BirthdayLayout)
}
