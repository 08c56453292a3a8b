// Package hostapi defines the surface AuthMe consumes from the game
// server host it is embedded in.
//
// The host hands the extension an opaque Server handle at startup.
// Player handles are live connections owned by the host; the extension
// never constructs or retains them past shutdown.
//
// The online-player list deliberately has no stable place on the
// Server interface: its return shape changed across host versions, so
// modern hosts advertise it through the optional OnlinePlayerLister
// interface while legacy hosts expose a method of the same name with a
// different signature, reachable only through reflection. See
// internal/host for the accessor that hides this difference.
package hostapi
