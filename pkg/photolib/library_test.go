package photolib

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestDirLibraryListFiltersJPEGs(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"roof.jpg", "serial.JPEG", "notes.txt", "video.mp4"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	names, err := NewDirLibrary(dir).List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"roof.jpg", "serial.JPEG"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d]: got %q, want %q", i, names[i], want[i])
		}
	}
}

func TestDirLibraryFetch(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "roof.jpg"), []byte("x"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	lib := NewDirLibrary(dir)

	path, err := lib.Fetch(context.Background(), "roof.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path != filepath.Join(dir, "roof.jpg") {
		t.Errorf("path: got %q", path)
	}

	if _, err := lib.Fetch(context.Background(), "missing.jpg"); err == nil {
		t.Error("expected error for missing photo")
	}

	// Path traversal in a picked name must not escape the media dir.
	if _, err := lib.Fetch(context.Background(), "../../etc/passwd"); err == nil {
		t.Error("expected error for traversal name")
	}
}
