// Package limbo manages pre-authentication player state.
//
// When a player joins, the host-visible state that authentication
// temporarily overrides (op status, flight, movement speed) is
// snapshotted into a limbo record. Restoring puts the snapshot back on
// the live player handle and deletes the record; the registry is the
// only owner of limbo state, so callers trigger restoration rather
// than clearing records themselves.
package limbo

import (
	"time"

	"github.com/venus98/AuthMeReloaded/internal/core/domain"
	"github.com/venus98/AuthMeReloaded/internal/telemetry/logger"
	"github.com/venus98/AuthMeReloaded/pkg/cmap"
	"github.com/venus98/AuthMeReloaded/pkg/hostapi"
)

// Limbo override values applied while a player is unauthenticated.
const (
	limboWalkSpeed float32 = 0
	limboFlySpeed  float32 = 0
)

// Service is the limbo registry.
type Service struct {
	records *cmap.Map[*domain.LimboPlayer]
	log     logger.Logger
}

// NewService creates an empty limbo registry.
func NewService(log logger.Logger) *Service {
	if log == nil {
		log = logger.Default()
	}
	return &Service{
		records: cmap.New[*domain.LimboPlayer](),
		log:     log,
	}
}

// CreateLimboPlayer snapshots the player's state and applies the limbo
// overrides. An existing record for the key is kept: the first
// snapshot holds the true pre-authentication state.
func (s *Service) CreateLimboPlayer(p hostapi.Player) *domain.LimboPlayer {
	key := domain.NormalizeKey(p.Name())

	record := &domain.LimboPlayer{
		Key:         key,
		OpState:     p.IsOp(),
		AllowFlight: p.AllowFlight(),
		WalkSpeed:   p.WalkSpeed(),
		FlySpeed:    p.FlySpeed(),
		CreatedAt:   time.Now().UnixMilli(),
	}

	if !s.records.SetIfAbsent(key.String(), record) {
		s.log.Debug("limbo record already exists, keeping original", "player", key)
		existing, _ := s.records.Get(key.String())
		record = existing
	}

	p.SetOp(false)
	p.SetAllowFlight(false)
	p.SetWalkSpeed(limboWalkSpeed)
	p.SetFlySpeed(limboFlySpeed)

	return record
}

// HasLimboPlayer reports whether a limbo record exists for the key.
func (s *Service) HasLimboPlayer(key domain.Key) bool {
	return s.records.Has(key.String())
}

// GetLimboPlayer returns the limbo record for the key.
func (s *Service) GetLimboPlayer(key domain.Key) (*domain.LimboPlayer, bool) {
	record, ok := s.records.Get(key.String())
	if !ok {
		return nil, false
	}
	return record.Clone(), true
}

// RestoreData puts the snapshotted state back on the player and
// deletes the limbo record. Callers should check HasLimboPlayer first;
// restoring a key without a record is a logged no-op.
func (s *Service) RestoreData(p hostapi.Player) {
	key := domain.NormalizeKey(p.Name())

	record, ok := s.records.Pop(key.String())
	if !ok {
		s.log.Warn("no limbo record to restore", "player", key)
		return
	}

	p.SetOp(record.OpState)
	p.SetAllowFlight(record.AllowFlight)
	p.SetWalkSpeed(record.WalkSpeed)
	p.SetFlySpeed(record.FlySpeed)

	s.log.Debug("restored limbo state", "player", key)
}

// Size returns the number of players currently in limbo.
func (s *Service) Size() int {
	return s.records.Count()
}

// Clear drops all limbo records without restoring them.
func (s *Service) Clear() {
	s.records.Clear()
}
