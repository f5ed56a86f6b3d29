package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhone_Valid(t *testing.T) {
	phone, err := NewPhone("1234567890")
	require.NoError(t, err)
	assert.Equal(t, "1234567890", phone.String())
}

func TestNewPhone_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "too short", input: "123456789"},
		{name: "too long", input: "12345678901"},
		{name: "letters", input: "12345abcde"},
		{name: "plus prefix", input: "+123456789"},
		{name: "spaces inside", input: "12345 6789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPhone(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrPhoneFormat)
		})
	}
}
