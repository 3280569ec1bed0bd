package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileStoreCreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "candy.txt")
	store := NewFileStore(path)

	lines, err := store.LoadLines(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected empty load, got %v", lines)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("expected data file to exist: %v", err)
	}
	if info.Size() != 0 {
		t.Fatalf("expected empty file, got %d bytes", info.Size())
	}

	// A second load must not fail or truncate anything.
	if _, err := store.LoadLines(context.Background()); err != nil {
		t.Fatalf("second load: %v", err)
	}
}

func TestFileStoreSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candy.txt")
	store := NewFileStore(path)
	lines := []string{"T | 0 | read book", "D | 1 | submit | 2024-01-05"}

	if err := store.SaveLines(context.Background(), lines); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(raw) != "T | 0 | read book\nD | 1 | submit | 2024-01-05\n" {
		t.Fatalf("unexpected file contents: %q", raw)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temp file left behind: %v", err)
	}

	got, err := store.LoadLines(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 || got[0] != lines[0] || got[1] != lines[1] {
		t.Fatalf("unexpected lines: %v", got)
	}

	if err := store.SaveLines(context.Background(), nil); err != nil {
		t.Fatalf("save empty: %v", err)
	}
	got, err = store.LoadLines(context.Background())
	if err != nil || len(got) != 0 {
		t.Fatalf("expected empty after rewrite, got %v, %v", got, err)
	}
}

func TestFileStoreUnwritableDirectory(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}
	store := NewFileStore(filepath.Join(blocker, "candy.txt"))
	if _, err := store.LoadLines(context.Background()); err == nil {
		t.Fatal("expected load error when parent is a file")
	}
	if err := store.SaveLines(context.Background(), []string{"T | 0 | x"}); err == nil {
		t.Fatal("expected save error when parent is a file")
	}
}

func TestFileStoreHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := NewFileStore(filepath.Join(t.TempDir(), "candy.txt"))
	if _, err := store.LoadLines(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestWarningMessage(t *testing.T) {
	w := &Warning{Op: OpSave, Err: errors.New("disk full")}
	if w.Message() != "Warning: could not save data." {
		t.Fatalf("unexpected message %q", w.Message())
	}
	if !errors.Is(w, w.Err) {
		t.Fatal("warning should unwrap to its cause")
	}
	load := &Warning{Op: OpLoad, Err: errors.New("x")}
	if load.Message() != "Warning: could not load data (starting with empty list)." {
		t.Fatalf("unexpected load message %q", load.Message())
	}
}

func TestOpenUnknownKind(t *testing.T) {
	if _, err := Open(Kind("redis"), "x"); err == nil {
		t.Fatal("expected error for unknown kind")
	}
	gw, err := Open(KindFile, filepath.Join(t.TempDir(), "f.txt"))
	if err != nil {
		t.Fatalf("open file kind: %v", err)
	}
	if _, ok := gw.(*FileStore); !ok {
		t.Fatalf("expected *FileStore, got %T", gw)
	}
}
