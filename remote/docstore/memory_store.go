package docstore

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Luismorlan/choirmux/remote"
	"github.com/pkg/errors"
)

type Op string

const (
	OpSet    Op = "set"
	OpGet    Op = "get"
	OpDelete Op = "delete"
)

// MemoryStore keeps documents in process. It is used by tests and local
// development, failures can be injected per operation.
type MemoryStore struct {
	mu       sync.RWMutex
	docs     map[string][]byte
	failures map[Op]error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs:     make(map[string][]byte),
		failures: make(map[Op]error),
	}
}

// FailOn makes every following op return err. A nil err clears the failure.
func (s *MemoryStore) FailOn(op Op, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err == nil {
		delete(s.failures, op)
		return
	}
	s.failures[op] = err
}

func (s *MemoryStore) Set(ctx context.Context, collection, id string, doc interface{}) error {
	body, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrapf(err, "encode %s", remote.DocumentKey(collection, id))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failures[OpSet]; err != nil {
		return err
	}
	s.docs[remote.DocumentKey(collection, id)] = body
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, collection, id string, out interface{}) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.failures[OpGet]; err != nil {
		return false, err
	}
	body, ok := s.docs[remote.DocumentKey(collection, id)]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(body, out)
}

func (s *MemoryStore) Delete(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.failures[OpDelete]; err != nil {
		return err
	}
	delete(s.docs, remote.DocumentKey(collection, id))
	return nil
}

// Has reports whether the document exists, ignoring injected failures.
func (s *MemoryStore) Has(collection, id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.docs[remote.DocumentKey(collection, id)]
	return ok
}
