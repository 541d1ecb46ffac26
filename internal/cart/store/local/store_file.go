// Package local persists the anonymous device cart as a JSON file, the
// server-side equivalent of the storefront's localStorage entry.
package local

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"codedrip/internal/cart"
)

// StorageKey matches the storefront's localStorage key for the device cart.
const StorageKey = "codedrip-cart"

// FileStore writes the full item list to
// <dir>/<deviceID>/codedrip-cart.json on every save and reads it back at
// session start. One device, one file.
type FileStore struct {
	path string
}

func NewFileStore(dir, deviceID string) *FileStore {
	return &FileStore{path: filepath.Join(dir, deviceID, StorageKey+".json")}
}

// Load returns the persisted items. A missing file or an unparseable payload
// yields an empty list; a session must never fail to start because the
// mirror is corrupt.
func (s *FileStore) Load(_ context.Context) ([]cart.LineItem, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []cart.LineItem{}, nil
		}
		return nil, fmt.Errorf("read cart file: %w", err)
	}

	var items []cart.LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return []cart.LineItem{}, nil
	}
	if items == nil {
		items = []cart.LineItem{}
	}
	return items, nil
}

// Save overwrites the file with a full snapshot of items.
func (s *FileStore) Save(_ context.Context, items []cart.LineItem) error {
	if items == nil {
		items = []cart.LineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode cart items: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create cart dir: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write cart file: %w", err)
	}
	return nil
}
