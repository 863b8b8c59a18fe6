package datastore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func newFile(t *testing.T, backups int) *File {
	t.Helper()
	cfg := DefaultConfig(filepath.Join(t.TempDir(), "nested", "state.json"))
	cfg.BackupCount = backups
	f, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return f
}

func TestReadMissing(t *testing.T) {
	f := newFile(t, 0)
	if _, err := f.Read(); !errors.Is(err, ErrNotExist) {
		t.Fatalf("Read error = %v, want ErrNotExist", err)
	}
}

func TestWriteRead(t *testing.T) {
	f := newFile(t, 0)
	want := []byte(`{"production_total": 3}`)
	if err := f.Write(want); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := f.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if string(got) != string(want) {
		t.Fatalf("Read = %s, want %s", got, want)
	}
	if _, err := os.Stat(f.Path() + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("temp file left behind: %v", err)
	}
}

func TestBackupsRotate(t *testing.T) {
	f := newFile(t, 2)
	for i := 0; i < 5; i++ {
		if err := f.Write([]byte(fmt.Sprintf(`{"n": %d}`, i))); err != nil {
			t.Fatalf("Write %d: %v", i, err)
		}
	}
	backups := f.Backups()
	if len(backups) != 2 {
		t.Fatalf("backups = %d, want 2", len(backups))
	}
	newest, err := os.ReadFile(backups[len(backups)-1])
	if err != nil {
		t.Fatalf("read backup: %v", err)
	}
	if string(newest) != `{"n": 3}` {
		t.Fatalf("newest backup = %s", newest)
	}
}

func TestUnchangedWriteSkipped(t *testing.T) {
	f := newFile(t, 3)
	doc := []byte(`{"a": 1}`)
	if err := f.Write(doc); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := f.Write(doc); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if n := len(f.Backups()); n != 0 {
		t.Fatalf("unchanged write produced %d backups", n)
	}
}

func TestNewRejectsEmptyPath(t *testing.T) {
	if _, err := New(Config{}); err == nil {
		t.Fatal("New accepted an empty path")
	}
}
