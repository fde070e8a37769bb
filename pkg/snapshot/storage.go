package snapshot

import (
	"context"
	"sync"
)

//go:generate counterfeiter . Storage

// Storage is a string keyed store of string values.
type Storage interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

type MemoryStorage struct {
	lock    sync.RWMutex
	entries map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{
		entries: make(map[string]string),
	}
}

func (s *MemoryStorage) Get(ctx context.Context, key string) (string, bool, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	value, ok := s.entries[key]
	return value, ok, nil
}

func (s *MemoryStorage) Set(ctx context.Context, key, value string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.entries[key] = value
	return nil
}
