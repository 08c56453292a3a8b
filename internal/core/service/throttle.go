package service

import (
	"golang.org/x/time/rate"

	"github.com/venus98/AuthMeReloaded/internal/core/domain"
	"github.com/venus98/AuthMeReloaded/internal/settings"
	"github.com/venus98/AuthMeReloaded/pkg/cmap"
)

// LoginThrottler rate-limits authentication attempts per player key.
//
// Each key gets its own token bucket; buckets are dropped on
// successful login so a returning player starts fresh.
type LoginThrottler struct {
	limiters *cmap.Map[*rate.Limiter]
	rate     rate.Limit
	burst    int
}

// NewLoginThrottler creates a throttler from the restriction settings.
func NewLoginThrottler(cfg *settings.Settings) *LoginThrottler {
	r := rate.Limit(cfg.Restriction.MaxLoginPerSecond)
	if r <= 0 {
		r = rate.Inf
	}
	burst := cfg.Restriction.LoginBurst
	if burst <= 0 {
		burst = 1
	}

	return &LoginThrottler{
		limiters: cmap.New[*rate.Limiter](),
		rate:     r,
		burst:    burst,
	}
}

// AllowAttempt reports whether a login attempt for the key may
// proceed, consuming one token when it does.
func (t *LoginThrottler) AllowAttempt(key domain.Key) bool {
	limiter, ok := t.limiters.Get(key.String())
	if !ok {
		limiter = rate.NewLimiter(t.rate, t.burst)
		t.limiters.SetIfAbsent(key.String(), limiter)
		limiter, _ = t.limiters.Get(key.String())
	}
	return limiter.Allow()
}

// CheckAttempt wraps AllowAttempt into the domain error taxonomy.
func (t *LoginThrottler) CheckAttempt(key domain.Key) error {
	if !t.AllowAttempt(key) {
		return domain.ErrLoginThrottled.WithDetails("player " + key.String())
	}
	return nil
}

// Reset drops the bucket for a key, typically after successful login.
func (t *LoginThrottler) Reset(key domain.Key) {
	t.limiters.Delete(key.String())
}
