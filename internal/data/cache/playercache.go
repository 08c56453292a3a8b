// Package cache holds the authoritative in-memory record of
// authenticated sessions.
//
// The cache is keyed by normalized player name. Collaborators never
// mutate entries in place; they replace them via Update or request
// removal by key.
package cache

import (
	"github.com/venus98/AuthMeReloaded/internal/core/domain"
	"github.com/venus98/AuthMeReloaded/pkg/cmap"
)

// PlayerCache is the in-memory authenticated-session registry.
type PlayerCache struct {
	entries *cmap.Map[*domain.PlayerAuth]
}

// NewPlayerCache creates an empty player cache.
func NewPlayerCache() *PlayerCache {
	return &PlayerCache{
		entries: cmap.New[*domain.PlayerAuth](),
	}
}

// Get retrieves the auth record for a key.
func (c *PlayerCache) Get(key domain.Key) (*domain.PlayerAuth, bool) {
	auth, ok := c.entries.Get(key.String())
	if !ok {
		return nil, false
	}
	return auth.Clone(), true
}

// Update stores the auth record under its own key, replacing any
// existing entry.
func (c *PlayerCache) Update(auth *domain.PlayerAuth) error {
	if err := auth.Validate(); err != nil {
		return err
	}
	c.entries.Set(auth.Key.String(), auth.Clone())
	return nil
}

// IsAuthenticated reports whether the key holds an authenticated
// session.
func (c *PlayerCache) IsAuthenticated(key domain.Key) bool {
	return c.entries.Has(key.String())
}

// RemovePlayer evicts the key from the cache. Removing an absent key
// is a no-op, never an error.
func (c *PlayerCache) RemovePlayer(key domain.Key) {
	c.entries.Delete(key.String())
}

// Size returns the number of authenticated sessions.
func (c *PlayerCache) Size() int {
	return c.entries.Count()
}

// Keys returns the keys of all authenticated sessions.
func (c *PlayerCache) Keys() []domain.Key {
	raw := c.entries.Keys()
	keys := make([]domain.Key, len(raw))
	for i, k := range raw {
		keys[i] = domain.Key(k)
	}
	return keys
}

// Clear removes all entries.
func (c *PlayerCache) Clear() {
	c.entries.Clear()
}
