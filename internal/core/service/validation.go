package service

import (
	"regexp"
	"sync"

	"github.com/venus98/AuthMeReloaded/internal/core/domain"
	"github.com/venus98/AuthMeReloaded/internal/settings"
)

// namePattern is the allowed player name charset.
var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// ValidationService answers policy questions about players.
//
// The unrestricted allow-list is kept as a set of normalized keys so
// lookups during the shutdown flush are O(1). Reload replaces the set
// atomically when the settings file changes.
type ValidationService struct {
	mu           sync.RWMutex
	unrestricted map[domain.Key]struct{}
}

// NewValidationService creates a validation service from settings.
func NewValidationService(cfg *settings.Settings) *ValidationService {
	v := &ValidationService{}
	v.Reload(cfg)
	return v
}

// Reload replaces the policy state from fresh settings.
func (v *ValidationService) Reload(cfg *settings.Settings) {
	unrestricted := make(map[domain.Key]struct{}, len(cfg.Restriction.UnrestrictedNames))
	for _, name := range cfg.Restriction.UnrestrictedNames {
		unrestricted[domain.NormalizeKey(name)] = struct{}{}
	}

	v.mu.Lock()
	v.unrestricted = unrestricted
	v.mu.Unlock()
}

// IsUnrestricted reports whether the key is exempt from
// authentication entirely.
func (v *ValidationService) IsUnrestricted(key domain.Key) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	_, ok := v.unrestricted[key]
	return ok
}

// ValidateName checks a player name against the format rules.
func (v *ValidationService) ValidateName(name string) error {
	if l := len(name); l < domain.MinNameLength || l > domain.MaxNameLength {
		return domain.ErrNameInvalid.WithDetails("name length out of range")
	}
	if !namePattern.MatchString(name) {
		return domain.ErrNameInvalid.WithDetails("name contains forbidden characters")
	}
	return nil
}
