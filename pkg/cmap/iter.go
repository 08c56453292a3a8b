// Package cmap provides a concurrent string-keyed map.
package cmap

// Range iterates over all key-value pairs.
//
// The callback returns false to stop iteration.
// Note: This acquires locks shard by shard, so the view may not be consistent.
func (m *Map[V]) Range(fn func(key string, value V) bool) {
	for _, shard := range m.shards {
		shard.mu.RLock()
		for k, v := range shard.items {
			if !fn(k, v) {
				shard.mu.RUnlock()
				return
			}
		}
		shard.mu.RUnlock()
	}
}

// Keys returns all keys.
func (m *Map[V]) Keys() []string {
	keys := make([]string, 0, m.Count())
	m.Range(func(key string, _ V) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Values returns all values.
func (m *Map[V]) Values() []V {
	values := make([]V, 0, m.Count())
	m.Range(func(_ string, value V) bool {
		values = append(values, value)
		return true
	})
	return values
}
