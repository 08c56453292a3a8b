package hostapi

// Server is the opaque handle to the host runtime.
//
// Implementations vary by host version; the extension only depends on
// this minimal surface plus optional interfaces probed at runtime.
type Server interface {
	// BroadcastMessage sends a message to every connected player and
	// returns the number of recipients.
	BroadcastMessage(message string) int

	// PlayerExact returns the connected player with the exact given
	// name, case insensitive, or nil if none is connected.
	PlayerExact(name string) Player

	// OnShutdown registers a hook the host invokes once during process
	// shutdown, before the player list becomes invalid.
	OnShutdown(hook func())
}

// OnlinePlayerLister is implemented by modern hosts whose online-player
// accessor returns a typed slice. Legacy hosts expose an OnlinePlayers
// method with a host-version-dependent return shape instead; those are
// handled reflectively by internal/host.
type OnlinePlayerLister interface {
	OnlinePlayers() []Player
}
