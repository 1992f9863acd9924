// Package syncutil provides concurrent containers.
package syncutil

import (
	"hash/fnv"
	"sync"
)

// DefaultShards is the shard count used by [NewShardMap] when n is not positive.
const DefaultShards = 32

// ShardMap is a concurrent map with string keys split over independently locked shards.
type ShardMap[V any] struct {
	shards []*shard[V]
}

type shard[V any] struct {
	mu    sync.RWMutex
	items map[string]V
}

// NewShardMap returns an empty map with n shards.
func NewShardMap[V any](n int) *ShardMap[V] {
	if n <= 0 {
		n = DefaultShards
	}
	m := &ShardMap[V]{shards: make([]*shard[V], n)}
	for i := range m.shards {
		m.shards[i] = &shard[V]{items: make(map[string]V)}
	}
	return m
}

func (m *ShardMap[V]) shard(key string) *shard[V] {
	h := fnv.New32a()
	h.Write([]byte(key)) //nolint:errcheck
	return m.shards[h.Sum32()%uint32(len(m.shards))]
}

// Get returns the value stored for key.
func (m *ShardMap[V]) Get(key string) (V, bool) {
	s := m.shard(key)
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok
}

// Set stores val for key.
func (m *ShardMap[V]) Set(key string, val V) {
	s := m.shard(key)
	s.mu.Lock()
	s.items[key] = val
	s.mu.Unlock()
}

// GetOrCompute returns the value stored for key, or stores and returns fn().
// fn runs at most once per key, with the key's shard locked.
// The second result reports whether the value was already stored.
func (m *ShardMap[V]) GetOrCompute(key string, fn func() V) (V, bool) {
	if v, ok := m.Get(key); ok {
		return v, true
	}

	s := m.shard(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	if v, ok := s.items[key]; ok {
		return v, true
	}
	v := fn()
	s.items[key] = v
	return v, false
}

// Len returns the number of stored keys.
func (m *ShardMap[V]) Len() int {
	n := 0
	for _, s := range m.shards {
		s.mu.RLock()
		n += len(s.items)
		s.mu.RUnlock()
	}
	return n
}
