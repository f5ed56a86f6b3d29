package handler

import (
	"context"
	"errors"

	"github.com/ykarpenko/assistant-bot/internal/app"
	"github.com/ykarpenko/assistant-bot/internal/logger"
	"github.com/ykarpenko/assistant-bot/internal/service"
)

// ErrNotEnoughArguments is returned by a command handler when the user
// supplied fewer arguments than the command requires.
var ErrNotEnoughArguments = errors.New("not enough arguments provided")

// ErrUnknownCommand is returned by [Handler.Handle] when the verb matches no
// known command.
var ErrUnknownCommand = errors.New("unknown command")

// Handler translates parsed user input into address-book operations and
// renders the results as user-facing strings. One handler method per verb;
// [Handler.Handle] routes to them.
type Handler struct {
	services *service.Services
	logger   *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("creating new handlers...")

	return &Handler{
		services: services,
		logger:   logger,
	}
}

// Handle routes the already-lowercased verb to its command handler and
// returns the reply text. The close/exit verbs are owned by the REPL and
// never reach this method.
//
// Returns [ErrUnknownCommand] for verbs with no handler; all other errors
// come from the command handlers and are converted to user-facing text by
// [MessageFromError].
func (h *Handler) Handle(ctx context.Context, verb string, args []string) (string, error) {
	switch verb {
	case "hello":
		return h.Hello(ctx)
	case "help":
		return h.Help(ctx)
	case "add":
		return h.AddContact(ctx, args)
	case "change":
		return h.ChangePhone(ctx, args)
	case "phone":
		return h.ShowPhone(ctx, args)
	case "add-birthday":
		return h.AddBirthday(ctx, args)
	case "show-birthday":
		return h.ShowBirthday(ctx, args)
	case "all":
		return h.ShowAll(ctx)
	case "birthdays":
		return h.Birthdays(ctx)
	case "delete":
		return h.DeleteContact(ctx, args)
	case "copy":
		return h.CopyPhone(ctx, args)
	default:
		return "", ErrUnknownCommand
	}
}

func (h *Handler) Hello(ctx context.Context) (string, error) {
	return app.MsgHowCanIHelp, nil
}

func (h *Handler) Help(ctx context.Context) (string, error) {
	return helpText, nil
}

const helpText = `Available commands:
  hello                              greeting
  add <name> <phone>                 add a contact or another phone (10 digits)
  change <name> <old> <new>          replace a phone number
  phone <name>                       show a contact's phones
  add-birthday <name> <DD.MM.YYYY>   set a contact's birthday
  show-birthday <name>               show a contact's birthday
  all                                list all contacts
  birthdays                          birthdays in the next 7 days
  delete <name>                      remove a contact
  copy <name>                        copy first phone to clipboard
  close | exit                       save and quit`
