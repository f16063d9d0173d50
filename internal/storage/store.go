package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

var ErrEmptyFilename = errors.New("filename is empty after sanitizing")

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.-]`)

// Store writes uploaded photos into a single local directory. Stored names are
// the sanitized client filenames, so a repeated name overwrites the earlier file.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload directory: %w", err)
	}

	return &Store{
		dir: dir,
	}, nil
}

// SanitizeFilename reduces a client-supplied filename to a safe storage key:
// path components are stripped, whitespace collapses to underscores and any
// character outside [A-Za-z0-9_.-] is dropped.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	name = filepath.Base(filepath.Clean(name))
	name = strings.Join(strings.Fields(name), "_")
	name = unsafeChars.ReplaceAllString(name, "")
	return strings.Trim(name, "._-")
}

// Save writes the content under the sanitized filename and returns the name
// the file was stored as.
func (s *Store) Save(name string, content io.Reader) (string, error) {
	filename := SanitizeFilename(name)
	if filename == "" {
		return "", ErrEmptyFilename
	}

	path := filepath.Join(s.dir, filename)
	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}

	if _, err := io.Copy(dst, content); err != nil {
		dst.Close()
		os.Remove(path)
		return "", fmt.Errorf("write file: %w", err)
	}

	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("close file: %w", err)
	}

	return filename, nil
}

// Remove deletes a previously stored file.
func (s *Store) Remove(name string) error {
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		return fmt.Errorf("remove file: %w", err)
	}

	return nil
}
