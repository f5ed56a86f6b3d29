package client

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ykarpenko/assistant-bot/internal/cli"
	"github.com/ykarpenko/assistant-bot/internal/config"
	"github.com/ykarpenko/assistant-bot/internal/handler"
	"github.com/ykarpenko/assistant-bot/internal/logger"
	"github.com/ykarpenko/assistant-bot/internal/mock"
	"github.com/ykarpenko/assistant-bot/internal/service"
	"github.com/ykarpenko/assistant-bot/internal/store"
	"github.com/ykarpenko/assistant-bot/models"
)

func newTestApp(t *testing.T, snapshot store.Storage, script string) (*App, *bytes.Buffer) {
	t.Helper()

	log := logger.Nop()
	storages := &store.Storages{Snapshot: snapshot}
	services := service.NewServices(storages, config.App{}, log)
	h := handler.NewHandler(services, log)

	out := &bytes.Buffer{}
	repl := cli.New(h, strings.NewReader(script), out, log)

	app, err := NewApp(services, storages, repl, log)
	require.NoError(t, err)
	return app, out
}

func TestAppRun_LoadsServesAndFlushes(t *testing.T) {
	ctrl := gomock.NewController(t)
	snapshot := mock.NewMockStorage(ctrl)

	john := models.NewRecord("John")
	require.NoError(t, john.AddPhone("1234567890"))

	snapshot.EXPECT().Load(gomock.Any()).Return([]*models.Record{john}, nil)
	snapshot.EXPECT().Save(gomock.Any(), gomock.Len(2)).Return(nil)
	snapshot.EXPECT().Close().Return(nil)

	app, out := newTestApp(t, snapshot, "add Jane 0987654321\nall\nexit\n")

	require.NoError(t, app.Run(context.Background()))

	assert.Contains(t, out.String(), "John: Phones: 1234567890")
	assert.Contains(t, out.String(), "Contact Jane added/updated with phone 0987654321.")
}

func TestAppRun_LoadFailureAborts(t *testing.T) {
	ctrl := gomock.NewController(t)
	snapshot := mock.NewMockStorage(ctrl)

	snapshot.EXPECT().Load(gomock.Any()).Return(nil, errors.New("disk error"))
	snapshot.EXPECT().Close().Return(nil)

	app, out := newTestApp(t, snapshot, "hello\nexit\n")

	err := app.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "load address book")
	assert.NotContains(t, out.String(), "How can I help you?")
}

func TestAppRun_FlushFailureReported(t *testing.T) {
	ctrl := gomock.NewController(t)
	snapshot := mock.NewMockStorage(ctrl)

	snapshot.EXPECT().Load(gomock.Any()).Return(nil, nil)
	snapshot.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))
	snapshot.EXPECT().Close().Return(nil)

	app, _ := newTestApp(t, snapshot, "exit\n")

	err := app.Run(context.Background())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "save address book")
}
