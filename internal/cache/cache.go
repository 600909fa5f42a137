package cache

import (
	"context"
	"sync"
	"time"
)

// Store is a TTL cache for aggregated upstream results. Values are the
// already-serialized JSON payloads handlers would return, so both the
// in-memory and redis backends store the same bytes.
type Store interface {
	// Get returns the cached value for key when it is still fresh.
	Get(ctx context.Context, key string) ([]byte, bool)
	// Put stores value under key with the given TTL.
	Put(ctx context.Context, key string, value []byte, ttl time.Duration)
}

type entry struct {
	ts       time.Time
	value    []byte
	lifetime time.Duration
}

// MemoryStore keeps entries in a mutex-guarded map. Stale entries are
// overwritten on the next Put for the same key, never swept; the key
// set is small and fixed in practice.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]entry
	now  func() time.Time
}

// NewMemoryStore creates an in-memory store. now may be nil, in which
// case wall time is used; tests inject a fake clock.
func NewMemoryStore(now func() time.Time) *MemoryStore {
	if now == nil {
		now = time.Now
	}
	return &MemoryStore{
		data: make(map[string]entry),
		now:  now,
	}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.data[key]
	if !ok {
		return nil, false
	}
	if s.now().Sub(e.ts) >= e.lifetime {
		return nil, false
	}
	return e.value, true
}

func (s *MemoryStore) Put(_ context.Context, key string, value []byte, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{ts: s.now(), value: value, lifetime: ttl}
}
