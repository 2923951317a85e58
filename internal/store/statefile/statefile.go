// Package statefile is a lifecycle.Bundle kept in a single JSON file, so a
// screen torn down with the process can be recreated on the next start.
package statefile

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/idilsaglam/sports/internal/lifecycle"
)

// File is a JSON-backed bundle. Values are opaque bytes, stored base64
// encoded, so any value accepted by Put can be saved.
// No locking; one screen owns the file at a time.
type File struct {
	path   string
	values map[string][]byte
}

var _ lifecycle.Bundle = (*File)(nil)

// Open reads the bundle at path. A missing file yields an empty bundle.
func Open(path string) (*File, error) {
	f := &File{path: path, values: map[string][]byte{}}
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return f, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	if err := json.Unmarshal(b, &f.values); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}
	if f.values == nil {
		f.values = map[string][]byte{}
	}
	return f, nil
}

// Path returns the backing file path.
func (f *File) Path() string { return f.path }

// Empty reports whether the bundle holds no keys.
func (f *File) Empty() bool { return len(f.values) == 0 }

func (f *File) Get(key string) ([]byte, bool) {
	v, ok := f.values[key]
	return v, ok
}

func (f *File) Put(key string, value []byte) {
	f.values[key] = append([]byte(nil), value...)
}

func (f *File) Delete(key string) {
	delete(f.values, key)
}

// Save writes the bundle to disk, creating parent directories. An empty
// bundle removes the file instead.
func (f *File) Save() error {
	if len(f.values) == 0 {
		return Remove(f.path)
	}
	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := json.MarshalIndent(f.values, "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	if err := os.WriteFile(f.path, b, 0o600); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}

// Remove deletes the state file at path without reading it. A missing
// file is not an error.
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove: %w", err)
	}
	return nil
}
