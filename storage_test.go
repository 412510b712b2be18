package wordimage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type recordingStorage struct {
	path        string
	contentType string
	err         error
}

func (s *recordingStorage) SaveFile(ctx context.Context, data []byte, path string, contentType string) (string, error) {
	s.path = path
	s.contentType = contentType
	if s.err != nil {
		return "", s.err
	}
	return "mem://" + path, nil
}

func TestLocalStorage_SaveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "out.png")
	s := NewLocalStorage()

	got, err := s.SaveFile(context.Background(), []byte("first"), path, "image/png")
	if err != nil {
		t.Fatalf("SaveFile() error = %v", err)
	}
	if got != path {
		t.Errorf("location = %q, want %q", got, path)
	}

	if _, err := s.SaveFile(context.Background(), []byte("2nd"), path, "image/png"); err != nil {
		t.Fatalf("second SaveFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "2nd" {
		t.Errorf("contents = %q, want %q", data, "2nd")
	}
}

func TestLocalStorage_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "out.png")
	if _, err := NewLocalStorage().SaveFile(ctx, []byte("x"), path, "image/png"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("file should not exist, stat err = %v", err)
	}
}

func TestSaveImage(t *testing.T) {
	if _, err := SaveImage(context.Background(), nil, []byte("x"), "out.png"); !errors.Is(err, ErrStorageNotConfigured) {
		t.Fatalf("expected ErrStorageNotConfigured, got %v", err)
	}

	rec := &recordingStorage{}
	res, err := SaveImage(context.Background(), rec, []byte("abc"), "dir/out.PNG")
	if err != nil {
		t.Fatalf("SaveImage() error = %v", err)
	}
	if res.Location != "mem://dir/out.PNG" || res.Path != "dir/out.PNG" || res.Size != 3 {
		t.Errorf("result = %+v", res)
	}
	if rec.contentType != "image/png" {
		t.Errorf("content type = %q", rec.contentType)
	}

	rec.err = errors.New("disk full")
	if _, err := SaveImage(context.Background(), rec, []byte("abc"), "out.png"); !errors.Is(err, rec.err) {
		t.Errorf("expected storage error, got %v", err)
	}
}

func TestGetMIMEType(t *testing.T) {
	tests := map[string]string{
		"a.png":  "image/png",
		"a.JPG":  "image/jpeg",
		"a.jpeg": "image/jpeg",
		"a.webp": "image/webp",
		"a":      "image/png",
	}
	for path, want := range tests {
		if got := GetMIMEType(path); got != want {
			t.Errorf("GetMIMEType(%q) = %q, want %q", path, got, want)
		}
	}
}
