package datasource

import (
	"context"

	"github.com/venus98/AuthMeReloaded/internal/core/domain"
	"github.com/venus98/AuthMeReloaded/pkg/cmap"
)

// MemoryStore is the in-memory datasource, used for tests and for
// hosts that do not want session persistence.
type MemoryStore struct {
	records *cmap.Map[*domain.PlayerAuth]
}

// NewMemoryStore creates an empty in-memory datasource.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: cmap.New[*domain.PlayerAuth](),
	}
}

// GetAuth retrieves the stored record for a key.
func (s *MemoryStore) GetAuth(_ context.Context, key domain.Key) (*domain.PlayerAuth, error) {
	auth, ok := s.records.Get(key.String())
	if !ok {
		return nil, domain.ErrAuthNotFound
	}
	return auth.Clone(), nil
}

// SaveAuth stores the record under its own key.
func (s *MemoryStore) SaveAuth(_ context.Context, auth *domain.PlayerAuth) error {
	if err := auth.Validate(); err != nil {
		return err
	}
	s.records.Set(auth.Key.String(), auth.Clone())
	return nil
}

// UpdateLastSeen bumps the stored record's last-seen timestamp.
func (s *MemoryStore) UpdateLastSeen(_ context.Context, key domain.Key) error {
	auth, ok := s.records.Get(key.String())
	if !ok {
		return nil
	}
	clone := auth.Clone()
	clone.Touch()
	s.records.Set(key.String(), clone)
	return nil
}

// SetUnlogged marks the stored record as no longer logged in.
func (s *MemoryStore) SetUnlogged(_ context.Context, key domain.Key) error {
	auth, ok := s.records.Get(key.String())
	if !ok {
		return nil
	}
	clone := auth.Clone()
	clone.LoggedIn = false
	clone.Version++
	s.records.Set(key.String(), clone)
	return nil
}

// Close is a no-op for the in-memory datasource.
func (s *MemoryStore) Close() error {
	return nil
}

var _ DataSource = (*MemoryStore)(nil)
