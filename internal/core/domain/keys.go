package domain

import "strings"

// Key is the canonical lookup key for all per-player state.
//
// Keys are derived from the player's display name by lower-casing, so
// "Bobby" and "bobby" address the same cache and limbo entries. The key
// is stable for the lifetime of the connection.
type Key string

// NormalizeKey derives the canonical key from a player display name.
func NormalizeKey(name string) Key {
	return Key(strings.ToLower(name))
}

// String returns the key as a plain string.
func (k Key) String() string {
	return string(k)
}
