// Package memory provides an in-process ObjectStore keeping codec text
// in a B-tree. Useful for tests and as the reference adapter the
// relational implementations are checked against.
package memory

import (
	"context"
	"sync"

	"github.com/mwantia/mantameta/codec"
	"github.com/mwantia/mantameta/data"
	"github.com/mwantia/mantameta/store"
	"github.com/tidwall/btree"
)

type Store struct {
	mu      sync.RWMutex
	records *btree.Map[string, []byte]
}

func New() *Store {
	return &Store{
		records: btree.NewMap[string, []byte](0),
	}
}

func (s *Store) Put(ctx context.Context, key string, rec *data.ObjectRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.records.Get(key); exists {
		return store.ErrExist
	}

	text, err := codec.Encode(rec)
	if err != nil {
		return err
	}

	s.records.Set(key, text)
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (*data.ObjectRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	text, exists := s.records.Get(key)
	if !exists {
		return nil, store.ErrNotExist
	}

	return codec.Decode(text)
}

func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, deleted := s.records.Delete(key); !deleted {
		return store.ErrNotExist
	}
	return nil
}

func (s *Store) Keys(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, s.records.Len())
	s.records.Scan(func(key string, _ []byte) bool {
		keys = append(keys, key)
		return true
	})
	return keys, nil
}

func (s *Store) Close() error {
	return nil
}
