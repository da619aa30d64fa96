package docstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileStore writes analysis artifacts into a single directory.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create analysis dir %s: %w", dir, err)
	}

	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Path(name string) string {
	return filepath.Join(s.dir, name)
}

// WriteJSON stores v as indented JSON.
func (s *FileStore) WriteJSON(name string, v any) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", name, err)
	}

	return s.WriteText(name, string(raw)+"\n")
}

func (s *FileStore) WriteText(name string, text string) error {
	err := os.WriteFile(s.Path(name), []byte(text), 0o644)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}

	return nil
}
