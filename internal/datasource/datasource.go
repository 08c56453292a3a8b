// Package datasource provides persistent storage for session records.
//
// The datasource is a collaborator of the auth flow, not of the
// shutdown flush: the flush pass only touches the in-memory cache and
// limbo registry. Persisted records carry the last-known session state
// so the next process start can tell a clean shutdown from a crash.
package datasource

import (
	"context"

	"github.com/venus98/AuthMeReloaded/internal/core/domain"
)

// DataSource is the narrow persistence contract.
//
// All operations are keyed by normalized player key. Implementations
// must be safe for concurrent use.
type DataSource interface {
	// GetAuth retrieves the stored record for a key.
	// Returns domain.ErrAuthNotFound if no record exists.
	GetAuth(ctx context.Context, key domain.Key) (*domain.PlayerAuth, error)

	// SaveAuth stores the record under its own key, replacing any
	// existing record.
	SaveAuth(ctx context.Context, auth *domain.PlayerAuth) error

	// UpdateLastSeen bumps the stored record's last-seen timestamp.
	// Missing records are a no-op.
	UpdateLastSeen(ctx context.Context, key domain.Key) error

	// SetUnlogged marks the stored record as no longer logged in.
	// Missing records are a no-op.
	SetUnlogged(ctx context.Context, key domain.Key) error

	// Close releases storage resources.
	Close() error
}
