// Package playerutils provides small helpers over host player handles.
package playerutils

import "github.com/venus98/AuthMeReloaded/pkg/hostapi"

// IsAutomationActor reports whether the player is a host-driven
// automation actor (NPC) rather than a real connection. Automation
// actors never authenticate and are excluded from all session
// bookkeeping.
func IsAutomationActor(p hostapi.Player) bool {
	return p.HasMetadata(hostapi.MetadataNPC)
}
