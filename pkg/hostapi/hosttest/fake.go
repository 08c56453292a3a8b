// Package hosttest provides fake host implementations for tests and
// the simulated-host harness.
//
// The server fakes cover the accessor shapes seen across host
// versions: the modern typed slice, the legacy untyped slice, the
// legacy fixed-size array, and a handful of broken shapes used to
// exercise the degradation paths.
package hosttest

import (
	"strings"

	"github.com/venus98/AuthMeReloaded/pkg/hostapi"
)

// Player is a configurable fake player.
type Player struct {
	PlayerName string
	Metadata   map[string]bool
	Addr       string

	Op     bool
	Flight bool
	Walk   float32
	Fly    float32
}

// NewPlayer creates a fake player with the given name.
func NewPlayer(name string) *Player {
	return &Player{
		PlayerName: name,
		Metadata:   make(map[string]bool),
		Addr:       "127.0.0.1:25565",
		Walk:       0.2,
		Fly:        0.1,
	}
}

// NewNPC creates a fake player tagged as an automation actor.
func NewNPC(name string) *Player {
	p := NewPlayer(name)
	p.Metadata[hostapi.MetadataNPC] = true
	return p
}

func (p *Player) Name() string { return p.PlayerName }

func (p *Player) HasMetadata(key string) bool { return p.Metadata[key] }

func (p *Player) Address() string { return p.Addr }

func (p *Player) IsOp() bool { return p.Op }

func (p *Player) SetOp(op bool) { p.Op = op }

func (p *Player) AllowFlight() bool { return p.Flight }

func (p *Player) SetAllowFlight(allow bool) { p.Flight = allow }

func (p *Player) WalkSpeed() float32 { return p.Walk }

func (p *Player) SetWalkSpeed(speed float32) { p.Walk = speed }

func (p *Player) FlySpeed() float32 { return p.Fly }

func (p *Player) SetFlySpeed(speed float32) { p.Fly = speed }

var _ hostapi.Player = (*Player)(nil)

// baseServer implements the common hostapi.Server surface shared by
// all server fakes.
type baseServer struct {
	Players    []hostapi.Player
	Broadcasts []string
	hooks      []func()
}

func (b *baseServer) BroadcastMessage(message string) int {
	b.Broadcasts = append(b.Broadcasts, message)
	return len(b.Players)
}

func (b *baseServer) PlayerExact(name string) hostapi.Player {
	for _, p := range b.Players {
		if strings.EqualFold(p.Name(), name) {
			return p
		}
	}
	return nil
}

func (b *baseServer) OnShutdown(hook func()) {
	b.hooks = append(b.hooks, hook)
}

// FireShutdown invokes the registered shutdown hooks in order.
func (b *baseServer) FireShutdown() {
	for _, hook := range b.hooks {
		hook()
	}
}

// ModernServer exposes the typed online-player accessor.
type ModernServer struct {
	baseServer
}

// NewModernServer creates a modern-convention server fake.
func NewModernServer(players ...hostapi.Player) *ModernServer {
	s := &ModernServer{}
	s.Players = players
	return s
}

// OnlinePlayers returns the typed player slice.
func (s *ModernServer) OnlinePlayers() []hostapi.Player {
	return s.Players
}

// LegacySliceServer returns the player list as an untyped value
// holding a slice, the way older hosts do.
type LegacySliceServer struct {
	baseServer
}

// NewLegacySliceServer creates a legacy-convention server fake.
func NewLegacySliceServer(players ...hostapi.Player) *LegacySliceServer {
	s := &LegacySliceServer{}
	s.Players = players
	return s
}

// OnlinePlayers returns the player slice behind an untyped value.
func (s *LegacySliceServer) OnlinePlayers() any {
	return s.Players
}

// LegacyArrayServer returns the player list as a fixed-size array.
type LegacyArrayServer struct {
	baseServer
	Slots [2]hostapi.Player
}

// NewLegacyArrayServer creates an array-convention server fake with
// two slots. A nil slot models a sparse array; it stays in Slots but
// is kept out of the roster.
func NewLegacyArrayServer(first, second hostapi.Player) *LegacyArrayServer {
	s := &LegacyArrayServer{Slots: [2]hostapi.Player{first, second}}
	for _, p := range []hostapi.Player{first, second} {
		if p != nil {
			s.Players = append(s.Players, p)
		}
	}
	return s
}

// OnlinePlayers returns the fixed-size player array.
func (s *LegacyArrayServer) OnlinePlayers() [2]hostapi.Player {
	return s.Slots
}

// LegacyEmptyArrayServer returns a zero-length player array.
type LegacyEmptyArrayServer struct {
	baseServer
}

// OnlinePlayers returns an empty fixed-size array.
func (s *LegacyEmptyArrayServer) OnlinePlayers() [0]hostapi.Player {
	return [0]hostapi.Player{}
}

// JunkServer returns a value that is neither a slice nor an array.
type JunkServer struct {
	baseServer
}

// OnlinePlayers returns an unusable value.
func (s *JunkServer) OnlinePlayers() int {
	return 42
}

// NilServer returns an untyped nil.
type NilServer struct {
	baseServer
}

// OnlinePlayers returns nil behind an untyped value.
func (s *NilServer) OnlinePlayers() any {
	return nil
}

// BareServer has no online-player accessor at all.
type BareServer struct {
	baseServer
}
