package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// PublicPrefix is the URL path prefix under which saved files are
// served back, mirrored by the router's static mount.
const PublicPrefix = "uploads"

// Store persists uploaded files on disk under a single directory,
// naming them with a millisecond timestamp prefix for best-effort
// uniqueness. Files are never deleted; rows referencing them may be.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir. The directory is created
// lazily on first save.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Dir returns the directory files are written to.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes the uploaded bytes to disk and returns the public path
// reference to store alongside the row, e.g. "uploads/1693526400000-photo.jpg".
func (s *Store) Save(originalName string, src io.Reader) (string, error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return "", fmt.Errorf("create upload directory: %w", err)
	}

	filename := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeName(originalName))

	dst, err := os.Create(filepath.Join(s.dir, filename))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return PublicPrefix + "/" + filename, nil
}

// sanitizeName strips any directory components from a client-supplied
// filename and replaces characters that don't belong in one.
func sanitizeName(name string) string {
	name = filepath.Base(filepath.Clean(name))
	if name == "." || name == string(filepath.Separator) {
		return "file"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
