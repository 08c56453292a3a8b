package host

import (
	"fmt"
	"reflect"

	"github.com/venus98/AuthMeReloaded/internal/telemetry/logger"
	"github.com/venus98/AuthMeReloaded/pkg/hostapi"
)

// onlinePlayersMethod is the accessor name probed on the host handle.
const onlinePlayersMethod = "OnlinePlayers"

// playerType is the element type legacy results must carry.
var playerType = reflect.TypeOf((*hostapi.Player)(nil)).Elem()

// typedListType is the modern accessor's declared return type.
var typedListType = reflect.TypeOf([]hostapi.Player(nil))

// Service provides access to host runtime operations.
//
// The capability flag and the legacy method handle are each resolved
// at most once per process. Both components run exclusively on the
// host's control thread, so the one-time writes need no locking; a
// Service must not be shared across goroutines.
type Service struct {
	server hostapi.Server
	log    logger.Logger

	// listIsTyped records whether the host's OnlinePlayers accessor
	// declares the modern typed-slice return. Resolved at construction,
	// read-only afterwards.
	listIsTyped bool

	// legacyList is the cached reflective handle for the legacy
	// accessor. The lookup is expensive, so the result (valid or not)
	// is kept for the process lifetime.
	legacyList     reflect.Value
	legacyResolved bool

	// onListFailure is invoked whenever a list read degrades to empty.
	onListFailure func()
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets the operator log sink.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		s.log = log
	}
}

// WithListFailureHook registers a callback for degraded list reads,
// used to feed the telemetry counter.
func WithListFailureHook(fn func()) Option {
	return func(s *Service) {
		s.onListFailure = fn
	}
}

// NewService creates a host service and resolves the online-player
// calling convention for the given server handle.
func NewService(server hostapi.Server, opts ...Option) *Service {
	s := &Service{
		server: server,
		log:    logger.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.listIsTyped = s.detectListCapability()
	return s
}

// detectListCapability inspects the declared return shape of the
// host's OnlinePlayers method. A missing method is a recoverable
// degradation: the flag falls back to legacy and the legacy lookup
// reports its own failure on first use.
func (s *Service) detectListCapability() bool {
	m, ok := reflect.TypeOf(s.server).MethodByName(onlinePlayersMethod)
	if !ok {
		s.log.Error("could not verify online player list shape, method missing",
			"method", onlinePlayersMethod,
			"host", fmt.Sprintf("%T", s.server))
		return false
	}
	return m.Type.NumOut() == 1 && m.Type.Out(0) == typedListType
}

// OnlinePlayers returns the currently connected players.
//
// On modern hosts this delegates straight to the typed accessor. On
// legacy hosts the accessor is invoked reflectively and its result is
// adapted: a player slice is returned as-is, a fixed-size array is
// converted preserving order with empty slots dropped, and anything
// else is logged with the
// observed type and degraded to an empty list. This method never
// panics upward.
func (s *Service) OnlinePlayers() []hostapi.Player {
	if s.listIsTyped {
		if lister, ok := s.server.(hostapi.OnlinePlayerLister); ok {
			return lister.OnlinePlayers()
		}
		// Declared shape matched but the interface assert did not;
		// fall through to the legacy path.
	}

	if !s.legacyResolved {
		s.legacyResolved = true
		if m := reflect.ValueOf(s.server).MethodByName(onlinePlayersMethod); m.IsValid() && m.Type().NumIn() == 0 {
			s.legacyList = m
		}
	}

	if !s.legacyList.IsValid() {
		s.listFailure("could not retrieve online player list, accessor missing",
			"method", onlinePlayersMethod)
		return nil
	}

	result, err := callLegacyList(s.legacyList)
	if err != nil {
		s.listFailure("could not retrieve online player list", "error", err)
		return nil
	}

	players, ok := adaptPlayerList(result)
	if !ok {
		s.listFailure("unknown online player list shape", "type", describeShape(result))
		return nil
	}
	return players
}

// callLegacyList invokes the cached accessor handle, converting any
// panic from the reflective call into an error.
func callLegacyList(m reflect.Value) (result reflect.Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("legacy accessor call failed: %v", r)
		}
	}()

	results := m.Call(nil)
	if len(results) != 1 {
		return reflect.Value{}, fmt.Errorf("legacy accessor returned %d values", len(results))
	}
	return results[0], nil
}

// adaptPlayerList interprets a legacy accessor result as a player
// list. The second return is false for unrecognized shapes.
func adaptPlayerList(v reflect.Value) ([]hostapi.Player, bool) {
	// Unwrap an interface-typed return to its dynamic value.
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if !v.IsValid() {
		return nil, false
	}

	if list, ok := v.Interface().([]hostapi.Player); ok {
		return list, true
	}

	if (v.Kind() == reflect.Slice || v.Kind() == reflect.Array) && v.Type().Elem().Implements(playerType) {
		players := make([]hostapi.Player, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			// Fixed-size arrays can carry empty slots; skip them
			// instead of forwarding nil handles.
			p, ok := v.Index(i).Interface().(hostapi.Player)
			if !ok || p == nil {
				continue
			}
			players = append(players, p)
		}
		return players, true
	}

	return nil, false
}

// describeShape names the dynamic type of a legacy result for the log.
func describeShape(v reflect.Value) string {
	if v.Kind() == reflect.Interface {
		v = v.Elem()
	}
	if !v.IsValid() {
		return "nil"
	}
	return v.Type().String()
}

func (s *Service) listFailure(msg string, args ...any) {
	s.log.Error(msg, args...)
	if s.onListFailure != nil {
		s.onListFailure()
	}
}

// ListIsTyped reports the resolved calling convention (true for the
// modern typed-slice accessor).
func (s *Service) ListIsTyped() bool {
	return s.listIsTyped
}

// BroadcastMessage sends a message to all connected players.
func (s *Service) BroadcastMessage(message string) int {
	return s.server.BroadcastMessage(message)
}

// PlayerExact returns the connected player with the exact given name,
// case insensitive, or nil if none is connected.
func (s *Service) PlayerExact(name string) hostapi.Player {
	return s.server.PlayerExact(name)
}

// OnShutdown registers a hook with the host's shutdown notification
// point.
func (s *Service) OnShutdown(hook func()) {
	s.server.OnShutdown(hook)
}
