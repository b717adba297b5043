package store

import "strings"

// Open selects a backend from a storage path: empty means in-memory, a
// ".db" suffix means SQLite, anything else the JSON file backend.
func Open(path string) (Backend, error) {
	switch {
	case path == "":
		return NewMemoryBackend(), nil
	case strings.HasSuffix(path, ".db"):
		return NewSQLiteBackend(path)
	default:
		return NewFileBackend(path)
	}
}
