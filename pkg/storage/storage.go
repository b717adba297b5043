package storage

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"
)

// MediaStorage is the contract for media file storage. The real backend mode
// uses the Cloudinary implementation; the mock backend uses LocalStorage so
// uploads never leave the process.
type MediaStorage interface {
	// Upload stores the file content and returns its public URL.
	// folder is a logical folder (e.g. "forums", "avatars").
	Upload(ctx context.Context, r io.Reader, folder, fileName string) (string, error)
	// Delete removes a previously uploaded file by its URL.
	Delete(ctx context.Context, fileURL string) error
	// SignedURL returns a time-limited access URL for the file.
	SignedURL(ctx context.Context, fileURL string, expires time.Duration) (string, error)
}

// LocalStorage is an in-process MediaStorage used by the mock backend. It
// records uploaded names and hands out deterministic fake URLs.
type LocalStorage struct {
	baseURL string

	mu    sync.Mutex
	seq   int
	files map[string]string // url -> file name
}

func NewLocalStorage(baseURL string) *LocalStorage {
	if baseURL == "" {
		baseURL = "local://media"
	}
	return &LocalStorage{
		baseURL: baseURL,
		files:   make(map[string]string),
	}
}

func (s *LocalStorage) Upload(ctx context.Context, r io.Reader, folder, fileName string) (string, error) {
	if r != nil {
		if _, err := io.Copy(io.Discard, r); err != nil {
			return "", fmt.Errorf("failed to read upload: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	url := fmt.Sprintf("%s/%s/%d-%s", s.baseURL, folder, s.seq, fileName)
	s.files[url] = fileName
	return url, nil
}

func (s *LocalStorage) Delete(ctx context.Context, fileURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.files, fileURL)
	return nil
}

func (s *LocalStorage) SignedURL(ctx context.Context, fileURL string, expires time.Duration) (string, error) {
	return fmt.Sprintf("%s?expires=%d", fileURL, int(expires.Seconds())), nil
}

// Has reports whether a URL is currently stored. Used by tests.
func (s *LocalStorage) Has(fileURL string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.files[fileURL]
	return ok
}
