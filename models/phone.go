package models

// Phone is a validated phone number. The zero value is not valid; use
// [NewPhone] so every Phone in the system is guaranteed to hold exactly
// ten ASCII digits.
type Phone string

// NewPhone validates value and returns it as a [Phone].
//
// Returns [ErrPhoneFormat] unless value is exactly ten characters long and
// every character is an ASCII digit.
func NewPhone(value string) (Phone, error) {
	if len(value) != 10 {
		return "", ErrPhoneFormat
	}
	for _, c := range value {
		if c < '0' || c > '9' {
			return "", ErrPhoneFormat
		}
	}

	return Phone(value), nil
}

func (p Phone) String() string {
	return string(p)
}
