package staging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Store holds selected photo files on local disk between selection and
// publish. Files are removed once the publish upload succeeds.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create staging dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save copies the uploaded file into the staging area and returns its
// staged path. The original filename is kept for the eventual object key.
func (s *Store) Save(fileName string, r io.Reader) (string, error) {
	name := fmt.Sprintf("%s_%s", uuid.New().String(), filepath.Base(fileName))
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to stage file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to stage file: %w", err)
	}
	return path, nil
}

func (s *Store) Open(path string) (io.ReadCloser, error) {
	return os.Open(path)
}

func (s *Store) Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
