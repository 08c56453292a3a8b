// Package cmap provides a concurrent string-keyed map for AuthMe.
//
// This package implements a sharded concurrent map used for the
// per-player state registries (session cache, limbo registry) with
// the following features:
//
//   - Sharding: Configurable shard count for parallelism
//   - Fine-grained Locking: Per-shard RWMutex for minimal contention
//   - Iteration: Safe iteration while holding read locks
//
// Usage:
//
//	m := cmap.New[*PlayerAuth]()
//	m.Set("bobby", auth)
//	val, ok := m.Get("bobby")
//
// Thread Safety:
//
// All operations are thread-safe. Read operations (Get, Has) use RLock,
// write operations (Set, Delete, Pop) use Lock.
package cmap
