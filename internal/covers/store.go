// Package covers stores uploaded book cover images on disk.
//
// Files are written under the media directory keyed by a generated UUID plus
// the original extension, never the client-supplied filename, so concurrent
// uploads of "cover.jpg" cannot collide or traverse paths.
package covers

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// allowed upload extensions, lowercased
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// MaxUploadSize caps cover uploads at 5 MiB.
const MaxUploadSize = 5 << 20

// Store persists uploaded covers in a single directory.
type Store struct {
	dir string
}

// NewStore creates the media directory if needed and returns a store.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create media dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes an uploaded cover and returns the stored filename.
func (s *Store) Save(file *multipart.FileHeader) (string, error) {
	if file.Size > MaxUploadSize {
		return "", fmt.Errorf("cover exceeds maximum size of %d bytes", int64(MaxUploadSize))
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("unsupported cover format %q", ext)
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	filename := uuid.NewString() + ext

	// Write to a temp file first for an atomic rename
	tmpFile, err := os.CreateTemp(s.dir, "cover_tmp_")
	if err != nil {
		return "", err
	}
	tmpPath := tmpFile.Name()
	defer func() {
		tmpFile.Close()
		os.Remove(tmpPath) // Clean up if we didn't rename
	}()

	if _, err := io.Copy(tmpFile, src); err != nil {
		return "", err
	}
	tmpFile.Close()

	if err := os.Rename(tmpPath, filepath.Join(s.dir, filename)); err != nil {
		return "", err
	}

	return filename, nil
}

// Path resolves a stored filename to an absolute path, rejecting anything
// that escapes the media directory.
func (s *Store) Path(filename string) (string, error) {
	if filename == "" || filepath.Base(filename) != filename {
		return "", fmt.Errorf("invalid cover filename %q", filename)
	}
	path := filepath.Join(s.dir, filename)
	if _, err := os.Stat(path); err != nil {
		return "", err
	}
	return path, nil
}

// Remove deletes a stored cover file. Missing files are not an error so a
// book whose cover was pruned can still be deleted.
func (s *Store) Remove(filename string) error {
	if filename == "" {
		return nil
	}
	if filepath.Base(filename) != filename {
		return fmt.Errorf("invalid cover filename %q", filename)
	}
	err := os.Remove(filepath.Join(s.dir, filename))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Dir returns the media directory path.
func (s *Store) Dir() string {
	return s.dir
}
