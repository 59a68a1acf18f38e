package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalStorage keeps uploaded files under a base directory
type LocalStorage struct {
	basePath string
	now      func() time.Time
}

// NewLocalStorage creates a new local storage instance
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	// Ensure the base directory exists
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{basePath: basePath, now: time.Now}, nil
}

// Save copies r to subDir/YYYY/MM/<id><ext> and returns the path relative to
// the base directory, always with forward slashes.
func (s *LocalStorage) Save(r io.Reader, name, ext, subDir string) (string, error) {
	dir := filepath.Join(s.basePath, subDir, s.now().Format("2006/01"))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	if name == "" {
		name = uuid.NewString()
	}
	filePath := filepath.Join(dir, name+strings.ToLower(ext))

	dst, err := os.Create(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, r); err != nil {
		// Clean up on failure
		os.Remove(filePath)
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	relPath, err := filepath.Rel(s.basePath, filePath)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(relPath), nil
}

// Delete removes a stored file; a missing file is not an error
func (s *LocalStorage) Delete(relativePath string) error {
	err := os.Remove(s.GetFullPath(relativePath))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// Exists checks if a file exists
func (s *LocalStorage) Exists(relativePath string) bool {
	_, err := os.Stat(s.GetFullPath(relativePath))
	return err == nil
}

// GetFullPath returns the filesystem path of a stored file
func (s *LocalStorage) GetFullPath(relativePath string) string {
	return filepath.Join(s.basePath, filepath.FromSlash(relativePath))
}

// BasePath returns the storage root, served under /media
func (s *LocalStorage) BasePath() string {
	return s.basePath
}

// ValidImageTypes returns allowed MIME types for photos
func ValidImageTypes() map[string]bool {
	return map[string]bool{
		"image/jpeg": true,
		"image/jpg":  true,
		"image/png":  true,
	}
}

// MaxFileSize returns the maximum allowed file size (5MB)
func MaxFileSize() int64 {
	return 5 * 1024 * 1024
}

// IsValidImageType checks if the content type is allowed
func IsValidImageType(contentType string) bool {
	return ValidImageTypes()[contentType]
}
