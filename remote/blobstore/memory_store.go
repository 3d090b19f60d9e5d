package blobstore

import (
	"context"
	"io"
	"sync"

	"github.com/pkg/errors"
)

// MemoryStore keeps uploaded blobs in process, for tests and local
// development.
type MemoryStore struct {
	mu      sync.RWMutex
	baseUrl string
	blobs   map[string][]byte
	failure error
}

func NewMemoryStore(baseUrl string) *MemoryStore {
	return &MemoryStore{
		baseUrl: baseUrl,
		blobs:   make(map[string][]byte),
	}
}

// FailWith makes every following upload return err, nil clears it.
func (s *MemoryStore) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failure = err
}

func (s *MemoryStore) Upload(ctx context.Context, path string, body io.Reader, contentType string) (string, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", path)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failure != nil {
		return "", s.failure
	}
	s.blobs[path] = data
	return s.baseUrl + path, nil
}

// Blob returns the content uploaded at path.
func (s *MemoryStore) Blob(path string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.blobs[path]
	return data, ok
}
