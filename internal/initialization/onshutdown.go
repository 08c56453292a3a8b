// Package initialization wires extension lifecycle moments to the
// host process.
//
// OnShutdownPlayerSaver is the shutdown flush coordinator: invoked
// once by the host's shutdown sequence, it walks the connected players
// a single time and reconciles each one's authentication state so no
// stale authenticated marker survives into the next process start.
package initialization

import (
	"github.com/venus98/AuthMeReloaded/internal/core/domain"
	"github.com/venus98/AuthMeReloaded/internal/telemetry/logger"
	"github.com/venus98/AuthMeReloaded/internal/util/playerutils"
	"github.com/venus98/AuthMeReloaded/pkg/hostapi"
)

// PlayerLister yields the currently connected players.
type PlayerLister interface {
	OnlinePlayers() []hostapi.Player
}

// ExclusionPolicy decides which players bypass authentication.
type ExclusionPolicy interface {
	IsUnrestricted(key domain.Key) bool
}

// LimboRegistry is the transient pre-authentication state store.
// RestoreData clears its own record as a side effect of restoring.
type LimboRegistry interface {
	HasLimboPlayer(key domain.Key) bool
	RestoreData(p hostapi.Player)
}

// SessionCache is the authenticated-session registry. RemovePlayer is
// idempotent: removing an absent key is a no-op.
type SessionCache interface {
	RemovePlayer(key domain.Key)
}

// OnShutdownPlayerSaver flushes all players' auth state on shutdown.
type OnShutdownPlayerSaver struct {
	host       PlayerLister
	validation ExclusionPolicy
	limbo      LimboRegistry
	cache      SessionCache
	log        logger.Logger

	// observe receives every per-player outcome, used to feed metrics.
	observe func(domain.SaveOutcome)
}

// Option configures the saver.
type Option func(*OnShutdownPlayerSaver)

// WithLogger sets the operator log sink.
func WithLogger(log logger.Logger) Option {
	return func(s *OnShutdownPlayerSaver) {
		s.log = log
	}
}

// WithOutcomeObserver registers a callback for per-player outcomes.
func WithOutcomeObserver(fn func(domain.SaveOutcome)) Option {
	return func(s *OnShutdownPlayerSaver) {
		s.observe = fn
	}
}

// NewOnShutdownPlayerSaver creates the shutdown flush coordinator.
func NewOnShutdownPlayerSaver(host PlayerLister, validation ExclusionPolicy, limbo LimboRegistry, cache SessionCache, opts ...Option) *OnShutdownPlayerSaver {
	s := &OnShutdownPlayerSaver{
		host:       host,
		validation: validation,
		limbo:      limbo,
		cache:      cache,
		log:        logger.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// SaveAllPlayers reconciles every connected player exactly once.
//
// The pass is a single synchronous traversal in the host's iteration
// order: no parallelism, no retries, no rollback. Shutdown is a
// best-effort final flush, not a transactional commit; a forced kill
// mid-pass leaves the remaining players unreconciled.
func (s *OnShutdownPlayerSaver) SaveAllPlayers() []domain.SaveOutcome {
	players := s.host.OnlinePlayers()
	outcomes := make([]domain.SaveOutcome, 0, len(players))

	var skipped, restored int
	for _, p := range players {
		outcome := s.savePlayer(p)
		outcomes = append(outcomes, outcome)

		if outcome.Status == domain.SaveSkipped {
			skipped++
		}
		if outcome.Restored {
			restored++
		}
		if s.observe != nil {
			s.observe(outcome)
		}
	}

	s.log.Info("shutdown flush complete",
		"players", len(players),
		"skipped", skipped,
		"restored", restored)

	return outcomes
}

// savePlayer reconciles a single player.
//
// The two-step order is fixed: limbo state is fully resolved before
// the authenticated marker disappears, so a crash mid-shutdown never
// leaves a player whose cache entry is gone but whose limbo record
// still claims pending state.
func (s *OnShutdownPlayerSaver) savePlayer(p hostapi.Player) domain.SaveOutcome {
	key := domain.NormalizeKey(p.Name())

	if playerutils.IsAutomationActor(p) || s.validation.IsUnrestricted(key) {
		return domain.SaveOutcome{Key: key, Status: domain.SaveSkipped}
	}

	restored := false
	if s.limbo.HasLimboPlayer(key) {
		// Restoration deletes the limbo record itself; clearing it
		// here as well would manage that state from two places.
		s.limbo.RestoreData(p)
		restored = true
	}

	s.cache.RemovePlayer(key)

	return domain.SaveOutcome{Key: key, Status: domain.SaveReconciled, Restored: restored}
}
