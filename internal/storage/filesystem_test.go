package storage_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/billforge/billforge/internal/config"
	"github.com/billforge/billforge/internal/lifecycle"
	"github.com/billforge/billforge/internal/storage"
)

func newStorage(t *testing.T) storage.System {
	t.Helper()

	cfg := &config.StorageConfig{BasePath: t.TempDir()}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := storage.New(cfg, logger)
	if err != nil {
		t.Fatalf("create storage: %v", err)
	}

	lc := lifecycle.New()
	if err := store.Start(lc); err != nil {
		t.Fatalf("start storage: %v", err)
	}
	lc.WaitForStartup()

	return store
}

func TestFilesystem_StoreAndRetrieve(t *testing.T) {
	store := newStorage(t)
	ctx := context.Background()

	data := []byte("exported document")
	if err := store.Store(ctx, "exports/alice/receipt.pdf", data); err != nil {
		t.Fatalf("Store() error = %v", err)
	}

	got, err := store.Retrieve(ctx, "exports/alice/receipt.pdf")
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if string(got) != string(data) {
		t.Errorf("Retrieve() = %q, want %q", got, data)
	}
}

func TestFilesystem_StoreOverwrites(t *testing.T) {
	store := newStorage(t)
	ctx := context.Background()

	store.Store(ctx, "drafts/a.json", []byte("first"))
	store.Store(ctx, "drafts/a.json", []byte("second"))

	got, err := store.Retrieve(ctx, "drafts/a.json")
	if err != nil {
		t.Fatalf("Retrieve() error = %v", err)
	}
	if string(got) != "second" {
		t.Errorf("Retrieve() = %q, want second", got)
	}
}

func TestFilesystem_RetrieveMissing(t *testing.T) {
	store := newStorage(t)

	_, err := store.Retrieve(context.Background(), "exports/missing.pdf")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Retrieve() error = %v, want ErrNotFound", err)
	}
}

func TestFilesystem_DeleteIsIdempotent(t *testing.T) {
	store := newStorage(t)
	ctx := context.Background()

	store.Store(ctx, "exports/alice/invoice.pdf", []byte("data"))

	if err := store.Delete(ctx, "exports/alice/invoice.pdf"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if err := store.Delete(ctx, "exports/alice/invoice.pdf"); err != nil {
		t.Errorf("second Delete() error = %v, want nil", err)
	}

	exists, err := store.Validate(ctx, "exports/alice/invoice.pdf")
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if exists {
		t.Error("key still exists after delete")
	}
}

func TestFilesystem_Validate(t *testing.T) {
	store := newStorage(t)
	ctx := context.Background()

	store.Store(ctx, "previews/alice/invoice.png", []byte("png"))

	exists, err := store.Validate(ctx, "previews/alice/invoice.png")
	if err != nil || !exists {
		t.Errorf("Validate(existing) = %v, %v, want true, nil", exists, err)
	}

	exists, err = store.Validate(ctx, "previews/alice/receipt.png")
	if err != nil || exists {
		t.Errorf("Validate(missing) = %v, %v, want false, nil", exists, err)
	}
}

func TestFilesystem_InvalidKeys(t *testing.T) {
	store := newStorage(t)
	ctx := context.Background()

	keys := []string{"", "../escape", "/etc/passwd", "exports/../../escape"}
	for _, key := range keys {
		if err := store.Store(ctx, key, []byte("x")); !errors.Is(err, storage.ErrInvalidKey) {
			t.Errorf("Store(%q) error = %v, want ErrInvalidKey", key, err)
		}
	}
}

func TestFilesystem_List(t *testing.T) {
	store := newStorage(t)
	ctx := context.Background()

	store.Store(ctx, "previews/alice/invoice.png", []byte("one"))
	store.Store(ctx, "previews/alice/receipt.png", []byte("two"))
	store.Store(ctx, "previews/bob/invoice.png", []byte("three"))

	entries, err := store.List(ctx, "previews/alice")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	for _, e := range entries {
		if e.Key != "previews/alice/invoice.png" && e.Key != "previews/alice/receipt.png" {
			t.Errorf("unexpected key %q", e.Key)
		}
		if e.SizeBytes != 3 {
			t.Errorf("SizeBytes = %d, want 3", e.SizeBytes)
		}
	}
}

func TestFilesystem_ListMissingPrefix(t *testing.T) {
	store := newStorage(t)

	entries, err := store.List(context.Background(), "previews/nobody")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("len(entries) = %d, want 0", len(entries))
	}
}
