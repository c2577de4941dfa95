package cart

import (
	"context"
	"sync"
)

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{data: make(map[string][]byte)}
}

// MemoryStorage is the in-process Storage used in tests.
type MemoryStorage struct {
	m    sync.RWMutex
	data map[string][]byte
}

func (s *MemoryStorage) Get(_ context.Context, key string) ([]byte, error) {
	s.m.RLock()
	defer s.m.RUnlock()
	data, ok := s.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}

func (s *MemoryStorage) Set(_ context.Context, key string, value []byte) error {
	s.m.Lock()
	defer s.m.Unlock()
	s.data[key] = value
	return nil
}

func (s *MemoryStorage) Delete(_ context.Context, key string) error {
	s.m.Lock()
	defer s.m.Unlock()
	delete(s.data, key)
	return nil
}
