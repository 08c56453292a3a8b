package domain

// LimboPlayer is a snapshot of a player's state taken when the player
// joined and before authentication completed.
//
// While in limbo the host-visible state is overridden (movement frozen,
// flight revoked); the snapshot holds the values to put back once the
// player authenticates or disconnects. LimboPlayer records are owned by
// the limbo registry; restoration deletes the record as a side effect.
type LimboPlayer struct {
	// Key is the normalized lookup key (lower-cased name).
	Key Key `json:"key"`

	// OpState is whether the player held operator status.
	OpState bool `json:"op_state"`

	// AllowFlight is whether the player was allowed to fly.
	AllowFlight bool `json:"allow_flight"`

	// WalkSpeed is the player's walk speed before the limbo override.
	WalkSpeed float32 `json:"walk_speed"`

	// FlySpeed is the player's fly speed before the limbo override.
	FlySpeed float32 `json:"fly_speed"`

	// CreatedAt is the snapshot timestamp (Unix milliseconds).
	CreatedAt int64 `json:"created_at"`
}

// Clone returns a copy of the snapshot.
func (l *LimboPlayer) Clone() *LimboPlayer {
	clone := *l
	return &clone
}
