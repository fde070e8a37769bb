package snapshot

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var ErrInvalidKey = errors.New("snapshot: key must be a plain file name")

// FileStorage keeps one file per key under dir. Writes go to a temporary
// file that is renamed over the old one.
type FileStorage struct {
	dir string
}

func NewFileStorage(dir string) *FileStorage {
	return &FileStorage{dir: dir}
}

func (s *FileStorage) Get(ctx context.Context, key string) (string, bool, error) {
	path, err := s.path(key)
	if err != nil {
		return "", false, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return string(data), true, nil
}

func (s *FileStorage) Set(ctx context.Context, key, value string) error {
	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "."+key+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.WriteString(value); err != nil {
		tmp.Close()
		return err
	}

	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}

	if err = tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

func (s *FileStorage) path(key string) (string, error) {
	if key == "" || key != filepath.Base(key) || strings.HasPrefix(key, ".") {
		return "", ErrInvalidKey
	}

	return filepath.Join(s.dir, key+".json"), nil
}
