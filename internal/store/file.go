package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// File keeps saved designs as a JSON array of strings in a single file.
// A missing file is an empty list.
type File struct {
	mu   sync.Mutex
	path string
}

func NewFile(path string) *File {
	return &File{path: path}
}

// Path is the backing file.
func (f *File) Path() string { return f.path }

func (f *File) List(context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.read()
}

func (f *File) Append(_ context.Context, serialized string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	items, err := f.read()
	if err != nil {
		return err
	}
	return f.write(append(items, serialized))
}

func (f *File) Remove(_ context.Context, index int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	items, err := f.read()
	if err != nil {
		return err
	}
	if index < 0 || index >= len(items) {
		return outOfRange(index, len(items))
	}
	return f.write(append(items[:index], items[index+1:]...))
}

func (f *File) read() ([]string, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read saved designs: %w", err)
	}
	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse saved designs %s: %w", f.path, err)
	}
	if items == nil {
		items = []string{}
	}
	return items, nil
}

func (f *File) write(items []string) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode saved designs: %w", err)
	}
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create designs directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".designs-*.json")
	if err != nil {
		return fmt.Errorf("write saved designs: %w", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write saved designs: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write saved designs: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("replace saved designs: %w", err)
	}
	return nil
}
