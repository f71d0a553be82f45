package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_SignalsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "timeline.txt")
	if err := os.WriteFile(path, []byte("09:00 - 10:00 A\n"), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	w, err := New(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	defer w.Close()

	if err := os.WriteFile(path, []byte("09:00 - 10:00 B\n"), 0644); err != nil {
		t.Fatalf("rewriting file: %v", err)
	}

	select {
	case <-w.Events():
	case <-time.After(2 * time.Second):
		t.Fatal("no event after file write")
	}
}

func TestWatcher_IgnoresSiblingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "timeline.txt")
	if err := os.WriteFile(path, []byte("09:00 - 10:00 A\n"), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	w, err := New(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	defer w.Close()

	sibling := filepath.Join(dir, "other.txt")
	if err := os.WriteFile(sibling, []byte("noise"), 0644); err != nil {
		t.Fatalf("writing sibling: %v", err)
	}

	select {
	case <-w.Events():
		t.Fatal("received event for an unrelated file")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestWatcher_SignalsAfterReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "timeline.txt")
	if err := os.WriteFile(path, []byte("09:00 - 10:00 A\n"), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	w, err := New(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	defer w.Close()

	// Editor-style save: write a temp file and rename it over the target.
	tmp := filepath.Join(dir, ".timeline.txt.tmp")
	if err := os.WriteFile(tmp, []byte("10:00 - 11:00 B\n"), 0644); err != nil {
		t.Fatalf("writing temp file: %v", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("renaming over target: %v", err)
	}

	select {
	case <-w.Events():
	case <-time.After(2 * time.Second):
		t.Fatal("no event after rename-and-replace")
	}
}

func TestWatcher_CloseIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "timeline.txt")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("writing file: %v", err)
	}

	w, err := New(path, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	if err := w.Close(); err != nil {
		t.Errorf("first Close() returned error: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("second Close() returned error: %v", err)
	}
}
