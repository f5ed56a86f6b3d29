package handler

import (
	"context"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/ykarpenko/assistant-bot/internal/app"
	"github.com/ykarpenko/assistant-bot/models"
)

// AddContact handles "add <name> <phone>": adds the phone to the contact,
// creating the record when the name is new.
func (h *Handler) AddContact(ctx context.Context, args []string) (string, error) {
	if len(args) < 2 {
		return "", ErrNotEnoughArguments
	}
	name, phone := args[0], args[1]

	if _, err := h.services.Book.AddContact(ctx, name, phone); err != nil {
		return "", err
	}

	return fmt.Sprintf("Contact %s added/updated with phone %s.", name, phone), nil
}

// ChangePhone handles "change <name> <old_phone> <new_phone>".
func (h *Handler) ChangePhone(ctx context.Context, args []string) (string, error) {
	if len(args) < 3 {
		return "", ErrNotEnoughArguments
	}
	name, oldPhone, newPhone := args[0], args[1], args[2]

	if err := h.services.Book.ChangePhone(ctx, name, oldPhone, newPhone); err != nil {
		return "", err
	}

	return fmt.Sprintf("Phone number changed for %s: %s -> %s", name, oldPhone, newPhone), nil
}

// ShowPhone handles "phone <name>".
func (h *Handler) ShowPhone(ctx context.Context, args []string) (string, error) {
	if len(args) < 1 {
		return "", ErrNotEnoughArguments
	}
	name := args[0]

	phones, err := h.services.Book.Phones(ctx, name)
	if err != nil {
		return "", err
	}
	if len(phones) == 0 {
		return fmt.Sprintf("No phone numbers for %s.", name), nil
	}

	values := make([]string, len(phones))
	for i, p := range phones {
		values[i] = p.String()
	}
	return fmt.Sprintf("%s's phones: %s", name, strings.Join(values, ", ")), nil
}

// AddBirthday handles "add-birthday <name> <DD.MM.YYYY>".
func (h *Handler) AddBirthday(ctx context.Context, args []string) (string, error) {
	if len(args) < 2 {
		return "", ErrNotEnoughArguments
	}
	name, date := args[0], args[1]

	if err := h.services.Book.SetBirthday(ctx, name, date); err != nil {
		return "", err
	}

	return fmt.Sprintf("Birthday added for %s.", name), nil
}

// ShowBirthday handles "show-birthday <name>".
func (h *Handler) ShowBirthday(ctx context.Context, args []string) (string, error) {
	if len(args) < 1 {
		return "", ErrNotEnoughArguments
	}
	name := args[0]

	birthday, err := h.services.Book.Birthday(ctx, name)
	if err != nil {
		return "", err
	}
	if birthday == nil {
		return fmt.Sprintf("Birthday not set for %s.", name), nil
	}

	return fmt.Sprintf("%s's birthday: %s", name, birthday), nil
}

// ShowAll handles "all": every record on its own line, in insertion order.
func (h *Handler) ShowAll(ctx context.Context) (string, error) {
	records, err := h.services.Book.Contacts(ctx)
	if err != nil {
		return "", err
	}
	if len(records) == 0 {
		return "Address book is empty.", nil
	}

	lines := make([]string, len(records))
	for i, record := range records {
		lines[i] = record.String()
	}
	return strings.Join(lines, "\n"), nil
}

// Birthdays handles "birthdays": contacts to congratulate within a week,
// weekend dates already shifted to Monday.
func (h *Handler) Birthdays(ctx context.Context) (string, error) {
	reminders, err := h.services.Book.UpcomingBirthdays(ctx)
	if err != nil {
		return "", err
	}
	if len(reminders) == 0 {
		return app.MsgNoUpcomingBirthdays, nil
	}

	lines := make([]string, len(reminders))
	for i, reminder := range reminders {
		lines[i] = fmt.Sprintf("%s: %s", reminder.Name, reminder.Congratulation.Format(models.BirthdayLayout))
	}
	return strings.Join(lines, "\n"), nil
}

// DeleteContact handles "delete <name>".
func (h *Handler) DeleteContact(ctx context.Context, args []string) (string, error) {
	if len(args) < 1 {
		return "", ErrNotEnoughArguments
	}
	name := args[0]

	if err := h.services.Book.DeleteContact(ctx, name); err != nil {
		return "", err
	}

	return fmt.Sprintf("Contact %s deleted.", name), nil
}

// CopyPhone handles "copy <name>": puts the contact's first phone number on
// the system clipboard.
func (h *Handler) CopyPhone(ctx context.Context, args []string) (string, error) {
	if len(args) < 1 {
		return "", ErrNotEnoughArguments
	}
	name := args[0]

	phones, err := h.services.Book.Phones(ctx, name)
	if err != nil {
		return "", err
	}
	if len(phones) == 0 {
		return fmt.Sprintf("No phone numbers for %s.", name), nil
	}

	if err := clipboard.WriteAll(phones[0].String()); err != nil {
		h.logger.Err(err).
			Str("func", "Handler.CopyPhone").
			Msg("failed to write to clipboard")
		return "", fmt.Errorf("clipboard is not available: %w", err)
	}

	return fmt.Sprintf("Phone %s copied to clipboard.", phones[0]), nil
}
