package fakebook_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	fakebook "github.com/elliotvilhelm/fakebook-generator"
)

// touch creates an empty placeholder file; Discover never opens the files.
func touch(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscoverSortOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.pdf", "A.pdf", "c.pdf"} {
		touch(t, filepath.Join(dir, name))
	}

	files, err := fakebook.Discover(dir)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	want := []string{"A.pdf", "b.pdf", "c.pdf"}
	if len(files) != len(want) {
		t.Fatalf("expected %d files, got %d", len(want), len(files))
	}
	for i, f := range files {
		if f.Name != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], f.Name)
		}
	}
}

func TestDiscoverFilters(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "song.pdf"))
	touch(t, filepath.Join(dir, "UPPER.PDF"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "readme"))
	if err := os.MkdirAll(filepath.Join(dir, "nested.pdf"), 0o755); err != nil {
		t.Fatal(err)
	}

	files, err := fakebook.Discover(dir)
	if err != nil {
		t.Fatalf("discover: %v", err)
	}
	want := []string{"song.pdf", "UPPER.PDF"}
	if len(files) != len(want) {
		t.Fatalf("expected %v, got %d files", want, len(files))
	}
	for i, f := range files {
		if f.Name != want[i] {
			t.Errorf("position %d: expected %s, got %s", i, want[i], f.Name)
		}
	}
}

func TestDiscoverMissingDir(t *testing.T) {
	_, err := fakebook.Discover(filepath.Join(t.TempDir(), "nope"))
	if !errors.Is(err, fakebook.ErrDirectoryNotFound) {
		t.Fatalf("expected ErrDirectoryNotFound, got %v", err)
	}
}

func TestDiscoverNotADir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "file.pdf")
	touch(t, path)

	_, err := fakebook.Discover(path)
	if !errors.Is(err, fakebook.ErrDirectoryNotFound) {
		t.Fatalf("expected ErrDirectoryNotFound, got %v", err)
	}
}

func TestDiscoverEmpty(t *testing.T) {
	_, err := fakebook.Discover(t.TempDir())
	if !errors.Is(err, fakebook.ErrNoInputFiles) {
		t.Fatalf("expected ErrNoInputFiles, got %v", err)
	}
}

func TestDisplayTitle(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"all_of_me.pdf", "All Of Me"},
		{"Autumn-Leaves.pdf", "Autumn Leaves"},
		{"blue bossa.pdf", "Blue Bossa"},
		{"MySong_v2.pdf", "MySong V2"},
		{"take_five-alt.PDF", "Take Five Alt"},
		{"solo.pdf", "Solo"},
	}
	for _, c := range cases {
		got := fakebook.SourceFile{Name: c.name}.DisplayTitle()
		if got != c.want {
			t.Errorf("%s: expected %q, got %q", c.name, c.want, got)
		}
	}
}
