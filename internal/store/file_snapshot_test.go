package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/ykarpenko/assistant-bot/internal/logger"
	"github.com/ykarpenko/assistant-bot/models"
)

func newTestFileStorage(t *testing.T) (Storage, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "addressbook.json")
	return NewFileSnapshotStorage(path, logger.Nop()), path
}

func TestFileSnapshot_RoundTrip(t *testing.T) {
	storage, _ := newTestFileStorage(t)
	ctx := context.Background()

	john := models.NewRecord("John")
	if err := john.AddPhone("1234567890"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := john.AddPhone("0987654321"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := john.SetBirthday("21.03.1990"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	jane := models.NewRecord("Jane")

	if err := storage.Save(ctx, []*models.Record{john, jane}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := storage.Load(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(loaded) != 2 {
		t.Fatalf("expected 2 records, got %d", len(loaded))
	}

	got := loaded[0]
	if got.ID != john.ID || got.Name != "John" {
		t.Errorf("unexpected first record: %+v", got)
	}
	if len(got.Phones) != 2 || got.Phones[0] != "1234567890" || got.Phones[1] != "0987654321" {
		t.Errorf("unexpected phones: %v", got.Phones)
	}
	if got.Birthday == nil || got.Birthday.String() != "21.03.1990" {
		t.Errorf("unexpected birthday: %v", got.Birthday)
	}
	if loaded[1].Name != "Jane" || loaded[1].Birthday != nil {
		t.Errorf("unexpected second record: %+v", loaded[1])
	}
}

func TestFileSnapshot_MissingFileLoadsEmpty(t *testing.T) {
	storage, _ := newTestFileStorage(t)

	records, err := storage.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if records != nil {
		t.Errorf("expected nil records, got %v", records)
	}
}

func TestFileSnapshot_CorruptedJSON(t *testing.T) {
	storage, path := newTestFileStorage(t)
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := storage.Load(context.Background())
	if !errors.Is(err, ErrSnapshotCorrupted) {
		t.Fatalf("expected ErrSnapshotCorrupted, got %v", err)
	}
}

func TestFileSnapshot_UnsupportedVersion(t *testing.T) {
	storage, path := newTestFileStorage(t)
	payload := `{"version": 99, "records": []}`
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := storage.Load(context.Background())
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Fatalf("expected ErrUnsupportedVersion, got %v", err)
	}
}

func TestFileSnapshot_InvalidPhoneRejected(t *testing.T) {
	storage, path := newTestFileStorage(t)
	payload := `{"version": 1, "records": [{"id": "id-1", "name": "John", "phones": ["12345"]}]}`
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := storage.Load(context.Background())
	if !errors.Is(err, ErrSnapshotCorrupted) {
		t.Fatalf("expected ErrSnapshotCorrupted, got %v", err)
	}
	if !errors.Is(err, models.ErrPhoneFormat) {
		t.Fatalf("expected wrapped ErrPhoneFormat, got %v", err)
	}
}

func TestFileSnapshot_MissingIDGenerated(t *testing.T) {
	storage, path := newTestFileStorage(t)
	payload := `{"version": 1, "records": [{"name": "John", "phones": []}]}`
	if err := os.WriteFile(path, []byte(payload), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := storage.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].ID == "" {
		t.Fatalf("expected generated ID, got %+v", records)
	}
}

func TestFileSnapshot_FilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file mode bits are not meaningful on windows")
	}

	storage, path := newTestFileStorage(t)
	if err := storage.Save(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if perm := info.Mode().Perm(); perm != 0o600 {
		t.Errorf("expected mode 0600, got %o", perm)
	}
}

func TestFileSnapshot_SaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "addressbook.json")
	storage := NewFileSnapshotStorage(path, logger.Nop())

	if err := storage.Save(context.Background(), nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected snapshot file to exist: %v", err)
	}
}
