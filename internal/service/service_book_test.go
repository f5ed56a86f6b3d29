package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ykarpenko/assistant-bot/internal/config"
	"github.com/ykarpenko/assistant-bot/internal/logger"
	"github.com/ykarpenko/assistant-bot/internal/mock"
	"github.com/ykarpenko/assistant-bot/models"
)

func newTestBookService(t *testing.T, cfg config.App) (*bookService, *mock.MockStorage) {
	t.Helper()

	ctrl := gomock.NewController(t)
	snapshot := mock.NewMockStorage(ctrl)

	svc := NewBookService(snapshot, cfg, logger.Nop()).(*bookService)
	return svc, snapshot
}

func TestBookService_LoadReplacesBook(t *testing.T) {
	svc, snapshot := newTestBookService(t, config.App{})
	ctx := context.Background()

	john := models.NewRecord("John")
	require.NoError(t, john.AddPhone("1234567890"))
	snapshot.EXPECT().Load(ctx).Return([]*models.Record{john}, nil)

	err := svc.Load(ctx)

	require.NoError(t, err)
	contacts, err := svc.Contacts(ctx)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "John", contacts[0].Name)
}

func TestBookService_LoadError(t *testing.T) {
	svc, snapshot := newTestBookService(t, config.App{})
	ctx := context.Background()

	snapshot.EXPECT().Load(ctx).Return(nil, errors.New("disk error"))

	err := svc.Load(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load address book")
}

func TestBookService_AddContact(t *testing.T) {
	svc, _ := newTestBookService(t, config.App{})
	ctx := context.Background()

	created, err := svc.AddContact(ctx, "John", "1234567890")
	require.NoError(t, err)
	assert.True(t, created)

	// second phone on the same name updates the existing record
	created, err = svc.AddContact(ctx, "John", "0987654321")
	require.NoError(t, err)
	assert.False(t, created)

	phones, err := svc.Phones(ctx, "John")
	require.NoError(t, err)
	assert.Equal(t, []models.Phone{"1234567890", "0987654321"}, phones)
}

func TestBookService_AddContact_InvalidPhoneDoesNotCreate(t *testing.T) {
	svc, _ := newTestBookService(t, config.App{})
	ctx := context.Background()

	_, err := svc.AddContact(ctx, "John", "12345")
	assert.ErrorIs(t, err, models.ErrPhoneFormat)

	// a record with a bad phone must not enter the book
	_, err = svc.Phones(ctx, "John")
	assert.ErrorIs(t, err, models.ErrRecordNotFound)
}

func TestBookService_ChangePhone(t *testing.T) {
	svc, _ := newTestBookService(t, config.App{})
	ctx := context.Background()

	_, err := svc.AddContact(ctx, "John", "1234567890")
	require.NoError(t, err)

	require.NoError(t, svc.ChangePhone(ctx, "John", "1234567890", "0987654321"))

	phones, err := svc.Phones(ctx, "John")
	require.NoError(t, err)
	assert.Equal(t, []models.Phone{"0987654321"}, phones)
}

func TestBookService_ChangePhone_UnknownContact(t *testing.T) {
	svc, _ := newTestBookService(t, config.App{})

	err := svc.ChangePhone(context.Background(), "Ghost", "1234567890", "0987654321")

	assert.ErrorIs(t, err, models.ErrRecordNotFound)
}

func TestBookService_Birthday(t *testing.T) {
	svc, _ := newTestBookService(t, config.App{})
	ctx := context.Background()

	_, err := svc.AddContact(ctx, "John", "1234567890")
	require.NoError(t, err)

	birthday, err := svc.Birthday(ctx, "John")
	require.NoError(t, err)
	assert.Nil(t, birthday)

	require.NoError(t, svc.SetBirthday(ctx, "John", "21.03.1990"))

	birthday, err = svc.Birthday(ctx, "John")
	require.NoError(t, err)
	require.NotNil(t, birthday)
	assert.Equal(t, "21.03.1990", birthday.String())
}

func TestBookService_UpcomingBirthdays(t *testing.T) {
	svc, _ := newTestBookService(t, config.App{})
	ctx := context.Background()

	// Wednesday
	svc.now = func() time.Time {
		return time.Date(2024, time.July, 10, 12, 0, 0, 0, time.UTC)
	}

	_, err := svc.AddContact(ctx, "John", "1234567890")
	require.NoError(t, err)
	require.NoError(t, svc.SetBirthday(ctx, "John", "12.07.1990"))

	_, err = svc.AddContact(ctx, "Jane", "0987654321")
	require.NoError(t, err)
	require.NoError(t, svc.SetBirthday(ctx, "Jane", "01.09.1985"))

	reminders, err := svc.UpcomingBirthdays(ctx)
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, "John", reminders[0].Name)
}

func TestBookService_DeleteContact(t *testing.T) {
	svc, _ := newTestBookService(t, config.App{})
	ctx := context.Background()

	_, err := svc.AddContact(ctx, "John", "1234567890")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteContact(ctx, "John"))

	err = svc.DeleteContact(ctx, "John")
	assert.ErrorIs(t, err, models.ErrRecordNotFound)
}

func TestBookService_Flush(t *testing.T) {
	svc, snapshot := newTestBookService(t, config.App{})
	ctx := context.Background()

	_, err := svc.AddContact(ctx, "John", "1234567890")
	require.NoError(t, err)

	snapshot.EXPECT().
		Save(ctx, gomock.Len(1)).
		Return(nil)

	require.NoError(t, svc.Flush(ctx))
}

func TestBookService_SaveOnChange(t *testing.T) {
	svc, snapshot := newTestBookService(t, config.App{SaveOnChange: true})
	ctx := context.Background()

	// every successful mutation writes the snapshot
	snapshot.EXPECT().Save(ctx, gomock.Any()).Return(nil).Times(3)

	_, err := svc.AddContact(ctx, "John", "1234567890")
	require.NoError(t, err)
	require.NoError(t, svc.SetBirthday(ctx, "John", "21.03.1990"))
	require.NoError(t, svc.DeleteContact(ctx, "John"))
}

func TestBookService_SaveOnChange_WriteFailureDoesNotFailCommand(t *testing.T) {
	svc, snapshot := newTestBookService(t, config.App{SaveOnChange: true})
	ctx := context.Background()

	snapshot.EXPECT().Save(ctx, gomock.Any()).Return(errors.New("disk full"))

	created, err := svc.AddContact(ctx, "John", "1234567890")

	require.NoError(t, err)
	assert.True(t, created)
}
