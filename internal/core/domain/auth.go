package domain

import (
	"crypto/rand"
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
)

// PlayerAuth constraints.
const (
	MinNameLength      = 3
	MaxNameLength      = 16
	MaxIPAddressLength = 45 // IPv6 max length

	// SessionIDPrefix is the prefix for authenticated-session IDs.
	SessionIDPrefix = "amss-"
)

// PlayerAuth is the authoritative record that a player currently holds
// an authenticated session.
//
// PlayerAuth records are owned by the session cache; collaborators
// request removal by key rather than mutating fields directly.
type PlayerAuth struct {
	// Key is the normalized lookup key (lower-cased name).
	Key Key `json:"key"`

	// RealName is the display name with original casing preserved.
	RealName string `json:"real_name"`

	// SessionID is the unique identifier of this authenticated session.
	// Format: amss-{ulid_lowercase}.
	SessionID string `json:"session_id"`

	// IPAddress is the client IP at login (immutable).
	IPAddress string `json:"ip_address"`

	// LoginAt is the login timestamp (Unix milliseconds).
	LoginAt int64 `json:"login_at"`

	// LastSeen is the last activity timestamp (Unix milliseconds).
	LastSeen int64 `json:"last_seen"`

	// LoggedIn marks whether the session was still active when the
	// record was last persisted. Stale true values found at startup
	// mean the previous process died without a clean flush.
	LoggedIn bool `json:"logged_in"`

	// Version is the record version, incremented on every update.
	Version uint64 `json:"version"`
}

// NewPlayerAuth creates a new PlayerAuth for the given display name.
// The returned record has Key, SessionID, LoginAt, and Version initialized.
func NewPlayerAuth(realName, ip string) (*PlayerAuth, error) {
	id, err := GenerateSessionID()
	if err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()
	return &PlayerAuth{
		Key:       NormalizeKey(realName),
		RealName:  realName,
		SessionID: id,
		IPAddress: ip,
		LoginAt:   now,
		LastSeen:  now,
		LoggedIn:  true,
		Version:   1,
	}, nil
}

// GenerateSessionID generates a new session ID using ULID.
// Format: amss-{ulid_lowercase}.
func GenerateSessionID() (string, error) {
	entropy := ulid.Monotonic(rand.Reader, 0)
	id, err := ulid.New(ulid.Timestamp(time.Now()), entropy)
	if err != nil {
		return "", ErrInternal.WithCause(err)
	}
	return SessionIDPrefix + strings.ToLower(id.String()), nil
}

// Validate checks the record against the domain constraints.
func (a *PlayerAuth) Validate() error {
	if a.Key == "" {
		return ErrAuthValidation.WithDetails("key is required")
	}
	if string(a.Key) != strings.ToLower(string(a.Key)) {
		return ErrAuthValidation.WithDetails("key must be lower-cased")
	}
	if l := len(a.RealName); l < MinNameLength || l > MaxNameLength {
		return ErrAuthValidation.WithDetails("real_name length out of range")
	}
	if NormalizeKey(a.RealName) != a.Key {
		return ErrAuthValidation.WithDetails("key does not match real_name")
	}
	if len(a.IPAddress) > MaxIPAddressLength {
		return ErrAuthValidation.WithDetails("ip_address too long")
	}
	return nil
}

// Clone returns a deep copy of the record.
func (a *PlayerAuth) Clone() *PlayerAuth {
	clone := *a
	return &clone
}

// Touch updates the last-seen timestamp and bumps the version.
func (a *PlayerAuth) Touch() {
	a.LastSeen = time.Now().UnixMilli()
	a.Version++
}
