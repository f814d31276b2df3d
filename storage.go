package fixtures

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// storageInterface defines the filesystem operations a Fetcher needs.
// Implemented by *storage for production and by test doubles.
type storageInterface interface {
	// ensureDir creates a directory and all parent directories if they don't exist.
	ensureDir(dir string) error

	// filePath returns the destination path of a fixture inside dir.
	filePath(dir, name string) string

	// create opens path for writing, truncating any existing file.
	create(path string) (io.WriteCloser, error)

	// stat returns the size of the file at path, or ok=false if it is absent.
	stat(path string) (size int64, ok bool, err error)
}

// storage handles local filesystem operations.
// Implements storageInterface.
type storage struct{}

// Ensure storage implements storageInterface.
var _ storageInterface = (*storage)(nil)

// ensureDir creates dir and any missing parents.
// An existing directory is not an error; an existing non-directory is.
func (s *storage) ensureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("%w: failed to create directory %s: %w", ErrStorageError, dir, err)
	}
	return nil
}

// filePath joins dir and name, so callers need not supply a trailing separator.
func (s *storage) filePath(dir, name string) string {
	return filepath.Join(dir, name)
}

// create opens path for writing. The returned file is synced on Close.
func (s *storage) create(path string) (io.WriteCloser, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create file %s: %w", ErrStorageError, path, err)
	}
	return &syncedFile{File: f}, nil
}

// stat reports the size of a regular file at path.
func (s *storage) stat(path string) (int64, bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("%w: failed to stat %s: %w", ErrStorageError, path, err)
	}
	if info.IsDir() {
		return 0, false, nil
	}
	return info.Size(), true, nil
}

// syncedFile flushes file contents to disk before closing.
type syncedFile struct {
	*os.File
}

func (f *syncedFile) Close() error {
	syncErr := f.File.Sync()
	closeErr := f.File.Close()
	if syncErr != nil {
		return fmt.Errorf("%w: failed to sync %s: %w", ErrStorageError, f.Name(), syncErr)
	}
	if closeErr != nil {
		return fmt.Errorf("%w: failed to close %s: %w", ErrStorageError, f.Name(), closeErr)
	}
	return nil
}
