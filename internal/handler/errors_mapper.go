package handler

import (
	"errors"

	"github.com/ykarpenko/assistant-bot/internal/app"
	"github.com/ykarpenko/assistant-bot/internal/service"
	"github.com/ykarpenko/assistant-bot/models"
)

// valueErrors are the recoverable validation failures reported to the user
// as "Value error: ...". Everything here must stay matchable via errors.Is.
var valueErrors = []error{
	models.ErrPhoneFormat,
	models.ErrBirthdayFormat,
	models.ErrBirthdayInFuture,
	models.ErrPhoneNotFound,
	service.ErrValidationEmptyName,
	service.ErrValidationEmptyValue,
}

// MessageFromError converts a command error into the user-facing message
// printed by the REPL. The three recoverable kinds get fixed wording;
// anything else is reported generically so the loop never crashes on
// malformed input.
func MessageFromError(err error) string {
	switch {
	case errors.Is(err, ErrUnknownCommand):
		return app.MsgInvalidCommand
	case errors.Is(err, ErrNotEnoughArguments):
		return app.MsgNotEnoughArguments
	case errors.Is(err, models.ErrRecordNotFound):
		return app.MsgContactNotFound
	}

	for _, target := range valueErrors {
		if errors.Is(err, target) {
			return "Value error: " + err.Error()
		}
	}

	return "Error: " + err.Error()
}
