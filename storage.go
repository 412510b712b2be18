package wordimage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Storage persists generated images.
type Storage interface {
	// SaveFile writes data to path and returns where it can be found.
	// An existing object at path is replaced.
	SaveFile(ctx context.Context, data []byte, path string, contentType string) (string, error)
}

// StorageResult contains information about a saved image.
type StorageResult struct {
	// Location is what the Storage returned for the saved object
	Location string

	// Path is the storage path/key where the image was saved
	Path string

	// Size is the number of bytes saved
	Size int
}

// LocalStorage writes images to the local filesystem.
type LocalStorage struct {
	// DirPerm is used when creating missing parent directories.
	DirPerm os.FileMode

	// FilePerm is used for the written file.
	FilePerm os.FileMode
}

var _ Storage = (*LocalStorage)(nil)

// NewLocalStorage returns a LocalStorage with conventional permissions.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{DirPerm: 0o755, FilePerm: 0o644}
}

// SaveFile creates missing parent directories and overwrites path.
func (s *LocalStorage) SaveFile(ctx context.Context, data []byte, path string, contentType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), s.DirPerm); err != nil {
		return "", fmt.Errorf("creating directory for %s: %w", path, err)
	}

	if err := os.WriteFile(path, data, s.FilePerm); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}

	return path, nil
}

// SaveImage stores a single image under path.
func SaveImage(ctx context.Context, storage Storage, data []byte, path string) (StorageResult, error) {
	if storage == nil {
		return StorageResult{}, ErrStorageNotConfigured
	}

	location, err := storage.SaveFile(ctx, data, path, GetMIMEType(path))
	if err != nil {
		return StorageResult{}, err
	}

	return StorageResult{
		Location: location,
		Path:     path,
		Size:     len(data),
	}, nil
}

// GetMIMEType guesses an image MIME type from a file extension.
func GetMIMEType(filePath string) string {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".png":
		return "image/png"
	case ".jpg", ".jpeg":
		return "image/jpeg"
	case ".webp":
		return "image/webp"
	default:
		return "image/png"
	}
}
