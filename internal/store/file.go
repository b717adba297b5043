package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileBackend persists the whole key space as a single JSON file. Every write
// rewrites the file through a rename, so readers never observe a partial
// write.
type FileBackend struct {
	path string

	mu   sync.Mutex
	data map[string]json.RawMessage
}

func NewFileBackend(path string) (*FileBackend, error) {
	b := &FileBackend{
		path: path,
		data: make(map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read store file %s: %w", path, err)
		}
		return b, nil
	}

	// A corrupt file degrades to an empty store rather than failing open.
	if err := json.Unmarshal(raw, &b.data); err != nil {
		b.data = make(map[string]json.RawMessage)
	}

	return b, nil
}

func (b *FileBackend) Get(key string) ([]byte, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	value, ok := b.data[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (b *FileBackend) Set(key string, value []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	stored := make(json.RawMessage, len(value))
	copy(stored, value)
	b.data[key] = stored
	return b.flushLocked()
}

func (b *FileBackend) Delete(key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.data, key)
	return b.flushLocked()
}

func (b *FileBackend) Keys() ([]string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	keys := make([]string, 0, len(b.data))
	for k := range b.data {
		keys = append(keys, k)
	}
	return keys, nil
}

func (b *FileBackend) Close() error {
	return nil
}

func (b *FileBackend) flushLocked() error {
	raw, err := json.Marshal(b.data)
	if err != nil {
		return fmt.Errorf("failed to encode store file: %w", err)
	}

	tmp := b.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(b.path), 0o755); err != nil {
		return fmt.Errorf("failed to create store directory: %w", err)
	}
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := os.Rename(tmp, b.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}
