package cmap

import (
	"sync"

	"github.com/spaolacci/murmur3"
)

// DefaultShardCount is the default number of shards.
const DefaultShardCount = 16

// Map is a concurrent-safe sharded map keyed by string.
//
// Player registries are keyed by normalized (lower-cased) player names,
// so a string-specialized map with a fast non-cryptographic hash is
// sufficient for shard selection.
type Map[V any] struct {
	shards    []*shard[V]
	shardMask uint32
}

type shard[V any] struct {
	mu    sync.RWMutex
	items map[string]V
}

// New creates a new sharded map with the default shard count.
func New[V any]() *Map[V] {
	return NewWithShards[V](DefaultShardCount)
}

// NewWithShards creates a new sharded map with the specified shard count.
// shardCount must be a power of 2; invalid values fall back to the default.
func NewWithShards[V any](shardCount int) *Map[V] {
	if shardCount <= 0 || shardCount&(shardCount-1) != 0 {
		shardCount = DefaultShardCount
	}

	m := &Map[V]{
		shards:    make([]*shard[V], shardCount),
		shardMask: uint32(shardCount - 1),
	}

	for i := 0; i < shardCount; i++ {
		m.shards[i] = &shard[V]{
			items: make(map[string]V),
		}
	}

	return m
}

// getShard returns the shard for a key using murmur3 for distribution.
func (m *Map[V]) getShard(key string) *shard[V] {
	hash := murmur3.Sum32([]byte(key))
	return m.shards[hash&m.shardMask]
}

// Get retrieves a value by key.
func (m *Map[V]) Get(key string) (V, bool) {
	shard := m.getShard(key)
	shard.mu.RLock()
	defer shard.mu.RUnlock()
	val, ok := shard.items[key]
	return val, ok
}

// Set stores a key-value pair.
func (m *Map[V]) Set(key string, value V) {
	shard := m.getShard(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	shard.items[key] = value
}

// SetIfAbsent sets the value only if the key does not exist.
// Returns true if the value was set, false if the key already exists.
func (m *Map[V]) SetIfAbsent(key string, value V) bool {
	shard := m.getShard(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	if _, ok := shard.items[key]; ok {
		return false
	}

	shard.items[key] = value
	return true
}

// Delete removes a key. Deleting an absent key is a no-op.
func (m *Map[V]) Delete(key string) {
	shard := m.getShard(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()
	delete(shard.items, key)
}

// Pop removes a key and returns its value.
// Returns the value and true if the key existed, zero value and false otherwise.
func (m *Map[V]) Pop(key string) (V, bool) {
	shard := m.getShard(key)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	val, ok := shard.items[key]
	if ok {
		delete(shard.items, key)
	}
	return val, ok
}

// Has checks if a key exists.
func (m *Map[V]) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Count returns the total number of items.
func (m *Map[V]) Count() int {
	count := 0
	for _, shard := range m.shards {
		shard.mu.RLock()
		count += len(shard.items)
		shard.mu.RUnlock()
	}
	return count
}

// Clear removes all items.
func (m *Map[V]) Clear() {
	for _, shard := range m.shards {
		shard.mu.Lock()
		shard.items = make(map[string]V)
		shard.mu.Unlock()
	}
}

// ShardCount returns the number of shards.
func (m *Map[V]) ShardCount() int {
	return len(m.shards)
}
