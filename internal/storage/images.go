package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ImageStore persists uploaded recipe images and disposes of replaced
// ones.
type ImageStore interface {
	Save(data []byte, ext string) (string, error)
	Remove(path string) error
}

// DiskStore writes images beneath a base directory on the local
// filesystem.
type DiskStore struct {
	baseDir string
}

// NewDiskStore creates an image store rooted at baseDir.
func NewDiskStore(baseDir string) *DiskStore {
	return &DiskStore{baseDir: baseDir}
}

// Save writes the image under a random filename and returns its path.
func (s *DiskStore) Save(data []byte, ext string) (string, error) {
	dir := filepath.Join(s.baseDir, "recipes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := uuid.New().String() + "." + ext
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("write image: %w", err)
	}
	return path, nil
}

// Remove deletes a previously stored image. Missing files are not an
// error since the path may already have been cleaned up.
func (s *DiskStore) Remove(path string) error {
	if path == "" {
		return nil
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove image: %w", err)
	}
	return nil
}
