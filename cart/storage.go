package cart

import (
	"encoding/json"
	"errors"
	"os"
)

// Storage is the persistence port behind the cart. Implementations hold
// one JSON document, the whole cart at once.
type Storage interface {
	Load() ([]Item, error)
	Save(items []Item) error
}

// FileStorage keeps the cart in a JSON file on the local device.
type FileStorage struct {
	Path string
}

func NewFileStorage(path string) *FileStorage {
	return &FileStorage{Path: path}
}

func (f *FileStorage) Load() ([]Item, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var items []Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (f *FileStorage) Save(items []Item) error {
	data, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return os.WriteFile(f.Path, data, 0o644)
}

// MemoryStorage backs tests with a plain slice.
type MemoryStorage struct {
	items []Item
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (m *MemoryStorage) Load() ([]Item, error) {
	out := make([]Item, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *MemoryStorage) Save(items []Item) error {
	m.items = make([]Item, len(items))
	copy(m.items, items)
	return nil
}
