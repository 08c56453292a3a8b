package hostapi

// MetadataNPC is the metadata tag hosts attach to non-player
// automation actors (shopkeepers, quest givers, pathing dummies).
const MetadataNPC = "NPC"

// Player is a live connection handle owned by the host.
//
// The accessors cover exactly the state the limbo snapshot captures
// and restores; everything else about a player stays host-internal.
type Player interface {
	// Name returns the display name. Casing is whatever the client
	// sent; derive lookup keys with domain.NormalizeKey.
	Name() string

	// HasMetadata reports whether the host tagged this connection
	// with the given metadata key.
	HasMetadata(key string) bool

	// Address returns the remote address of the connection.
	Address() string

	IsOp() bool
	SetOp(op bool)

	AllowFlight() bool
	SetAllowFlight(allow bool)

	WalkSpeed() float32
	SetWalkSpeed(speed float32)

	FlySpeed() float32
	SetFlySpeed(speed float32)
}
