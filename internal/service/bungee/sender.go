// Package bungee defines the companion-proxy notification contract.
//
// When a session ends on this host, a proxy in front of the network
// may need to hear about it so it can drop its own routing state. The
// wire protocol belongs to the transport the host operator plugs in;
// this package only fixes the contract and provides the disabled
// default.
package bungee

import (
	"github.com/venus98/AuthMeReloaded/internal/core/domain"
)

// Sender delivers session lifecycle notices to a companion proxy.
//
// Implementations must never block the caller indefinitely: notices
// are fired from the host's control thread.
type Sender interface {
	// SendSessionStart announces that the key authenticated.
	SendSessionStart(key domain.Key)

	// SendSessionEnd announces that the key's session ended.
	SendSessionEnd(key domain.Key)
}

// SenderFunc adapts two functions into a Sender.
type SenderFunc struct {
	OnStart func(key domain.Key)
	OnEnd   func(key domain.Key)
}

// SendSessionStart calls OnStart if set.
func (f SenderFunc) SendSessionStart(key domain.Key) {
	if f.OnStart != nil {
		f.OnStart(key)
	}
}

// SendSessionEnd calls OnEnd if set.
func (f SenderFunc) SendSessionEnd(key domain.Key) {
	if f.OnEnd != nil {
		f.OnEnd(key)
	}
}

// NoopSender discards all notices. Used when bungee messaging is
// disabled in settings.
type NoopSender struct{}

// SendSessionStart discards the notice.
func (NoopSender) SendSessionStart(domain.Key) {}

// SendSessionEnd discards the notice.
func (NoopSender) SendSessionEnd(domain.Key) {}

var (
	_ Sender = SenderFunc{}
	_ Sender = NoopSender{}
)
