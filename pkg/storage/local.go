package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mdhnkumar/faculty-econtent/pkg/apperror"
)

// LocalStorage is the disk-backed FileStorage implementation.
type LocalStorage struct {
	dir string
}

// NewLocalStorage creates a disk-backed FileStorage rooted at dir, creating
// the directory if needed.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

func (s *LocalStorage) Save(ctx context.Context, r io.Reader, fileName string) (string, error) {
	// Timestamp prefix keeps refs unique even for repeated uploads of the
	// same file name.
	name := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), sanitizeFileName(fileName))

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return name, nil
}

func (s *LocalStorage) Resolve(ctx context.Context, ref string) (*Blob, error) {
	path := filepath.Join(s.dir, filepath.Base(ref))
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperror.ErrNotFound
		}
		return nil, fmt.Errorf("failed to stat upload file: %w", err)
	}
	return &Blob{Path: path}, nil
}

func (s *LocalStorage) Delete(ctx context.Context, ref string) error {
	err := os.Remove(filepath.Join(s.dir, filepath.Base(ref)))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove upload file: %w", err)
	}
	return nil
}

// Dir exposes the upload root so the server can mount it for static serving.
func (s *LocalStorage) Dir() string {
	return s.dir
}

func sanitizeFileName(name string) string {
	name = filepath.Base(name)
	return strings.ReplaceAll(name, " ", "_")
}
