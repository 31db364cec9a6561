package document

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

var (
	// ErrRead is returned when the document cannot be read.
	ErrRead = errors.New("failed to read document")

	// ErrWrite is returned when the document cannot be written.
	ErrWrite = errors.New("failed to write document")
)

// defaultPerm is used when the target does not exist yet.
const defaultPerm fs.FileMode = 0o644

// Read returns the whole content of the file at path.
func Read(path string) (string, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrRead, path, err)
	}
	return string(data), nil
}

// WriteAtomic replaces the file at path with data.
//
// The data goes to a temporary file in the same directory, is synced, and
// is then renamed over path. The permission bits of an existing file are
// kept.
func WriteAtomic(path string, data []byte) (err error) {
	perm := defaultPerm
	if info, statErr := os.Stat(path); statErr == nil {
		perm = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName) //nolint:errcheck // best effort cleanup
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close() //nolint:errcheck // write error takes precedence
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	if err = tmp.Sync(); err != nil {
		_ = tmp.Close() //nolint:errcheck // sync error takes precedence
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	if err = os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWrite, path, err)
	}
	return nil
}

// RelativeRef returns imagePath relative to the directory of docPath, in
// forward-slash form for use inside Markdown. When no relative path exists
// (different volumes) the slash form of imagePath is returned.
func RelativeRef(docPath, imagePath string) string {
	docDir, err := filepath.Abs(filepath.Dir(docPath))
	if err != nil {
		return filepath.ToSlash(imagePath)
	}
	img, err := filepath.Abs(imagePath)
	if err != nil {
		return filepath.ToSlash(imagePath)
	}
	rel, err := filepath.Rel(docDir, img)
	if err != nil {
		return filepath.ToSlash(imagePath)
	}
	return filepath.ToSlash(rel)
}
