// Package host wraps the game-server host runtime for AuthMe.
//
// Its main job is the online-player accessor: depending on the host
// version, the OnlinePlayers method returns either a typed player
// slice or an untyped value holding a slice or fixed-size array. The
// Service resolves which calling convention is in effect exactly once
// at construction, caches the reflective method handle on first use,
// and presents a uniform []hostapi.Player view. Unrecognized shapes
// degrade to an empty list and are reported to the operator log; they
// never panic into the caller, because the shutdown flush and the
// broadcast paths both run on the host's control thread.
package host
