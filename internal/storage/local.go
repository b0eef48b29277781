package storage

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/courtlab/backend/pkg/logger"
)

// LocalStore writes avatar files under a fixed uploads directory.
type LocalStore struct {
	dir string
}

func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{dir: dir}, nil
}

func (s *LocalStore) Dir() string {
	return s.dir
}

func (s *LocalStore) Save(ctx context.Context, filename string, reader io.Reader, size int64, contentType string) error {
	path := filepath.Join(s.dir, filepath.Base(filename))

	file, err := os.Create(path)
	if err != nil {
		logger.Error("avatar_save_failed", err, map[string]interface{}{
			"filename": filename,
		})
		return err
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		_ = os.Remove(path)
		logger.Error("avatar_save_failed", err, map[string]interface{}{
			"filename": filename,
		})
		return err
	}

	return nil
}

func (s *LocalStore) Delete(ctx context.Context, filename string) error {
	path := filepath.Join(s.dir, filepath.Base(filename))
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Error("avatar_delete_failed", err, map[string]interface{}{
			"filename": filename,
		})
		return err
	}
	return nil
}
