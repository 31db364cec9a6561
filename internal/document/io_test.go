package document

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// TestRead tests whole-file reads.
func TestRead(t *testing.T) {
	t.Parallel()

	t.Run("existing file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "README.md")
		if err := os.WriteFile(path, []byte("# hi\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		got, err := Read(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != "# hi\n" {
			t.Errorf("expected %q, got %q", "# hi\n", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := Read(filepath.Join(t.TempDir(), "missing.md"))
		if !errors.Is(err, ErrRead) {
			t.Errorf("expected ErrRead, got %v", err)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("expected os.ErrNotExist in chain, got %v", err)
		}
	})
}

// TestWriteAtomic tests replacement, permissions and temp file cleanup.
func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("creates new file", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.md")
		if err := WriteAtomic(path, []byte("new")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "new" {
			t.Errorf("expected %q, got %q", "new", got)
		}

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 1 {
			t.Errorf("expected only the target file, got %d entries", len(entries))
		}
	})

	t.Run("replaces and keeps mode", func(t *testing.T) {
		t.Parallel()

		if runtime.GOOS == "windows" {
			t.Skip("permission bits are not meaningful on windows")
		}

		path := filepath.Join(t.TempDir(), "README.md")
		if err := os.WriteFile(path, []byte("old"), 0o600); err != nil {
			t.Fatal(err)
		}
		if err := WriteAtomic(path, []byte("replaced")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatal(err)
		}
		if info.Mode().Perm() != 0o600 {
			t.Errorf("expected mode 0600, got %v", info.Mode().Perm())
		}
		got, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != "replaced" {
			t.Errorf("expected %q, got %q", "replaced", got)
		}
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		err := WriteAtomic(filepath.Join(t.TempDir(), "nope", "out.md"), []byte("x"))
		if !errors.Is(err, ErrWrite) {
			t.Errorf("expected ErrWrite, got %v", err)
		}
	})
}

// TestRelativeRef tests image paths relative to the document.
func TestRelativeRef(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		doc   string
		image string
		want  string
	}{
		{name: "same directory", doc: "README.md", image: "country_distribution.png", want: "country_distribution.png"},
		{name: "image in subdirectory", doc: "README.md", image: filepath.Join("assets", "chart.png"), want: "assets/chart.png"},
		{name: "document in subdirectory", doc: filepath.Join("docs", "README.md"), image: "chart.png", want: "../chart.png"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if got := RelativeRef(tc.doc, tc.image); got != tc.want {
				t.Errorf("RelativeRef(%q, %q): expected %q, got %q", tc.doc, tc.image, tc.want, got)
			}
		})
	}
}
