// Package localfs stores design images on the local filesystem, served
// back under /uploads/.
package localfs

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Storage struct{ dir string }

func New(dir string) *Storage { return &Storage{dir: dir} }

// Save writes the file under a fresh name and returns the public path.
func (s *Storage) Save(name string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(name))
	if ext == "" {
		ext = ".jpg"
	}
	fname := uuid.New().String() + ext
	f, err := os.Create(filepath.Join(s.dir, fname))
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return "/uploads/" + fname, nil
}

func (s *Storage) Open(path string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.dir, strings.TrimPrefix(path, "/uploads/")))
}

func (s *Storage) Remove(path string) error {
	return os.Remove(filepath.Join(s.dir, strings.TrimPrefix(path, "/uploads/")))
}
