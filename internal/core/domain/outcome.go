package domain

// SaveStatus is the terminal state a player reaches during the
// shutdown flush pass.
type SaveStatus int

const (
	// SaveSkipped means the player was excluded (automation actor or
	// unrestricted name) and no cache or limbo mutation occurred.
	SaveSkipped SaveStatus = iota

	// SaveReconciled means the player's limbo state was resolved (if
	// any) and the session cache entry was evicted.
	SaveReconciled
)

// String returns the status name for logging.
func (s SaveStatus) String() string {
	switch s {
	case SaveSkipped:
		return "skipped"
	case SaveReconciled:
		return "reconciled"
	default:
		return "unknown"
	}
}

// SaveOutcome is the per-player result of the shutdown flush pass.
type SaveOutcome struct {
	// Key is the normalized key of the processed player.
	Key Key

	// Status is the terminal state reached.
	Status SaveStatus

	// Restored is whether a limbo record existed and was restored.
	// Always false when Status is SaveSkipped.
	Restored bool
}
