package host

import (
	"bytes"
	"strings"
	"testing"

	"github.com/venus98/AuthMeReloaded/internal/telemetry/logger"
	"github.com/venus98/AuthMeReloaded/pkg/hostapi"
	"github.com/venus98/AuthMeReloaded/pkg/hostapi/hosttest"
)

func testLogger(t *testing.T) (logger.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return logger.New(logger.Config{Level: "debug", Format: "json", Output: &buf}), &buf
}

func playerNames(players []hostapi.Player) []string {
	names := make([]string, 0, len(players))
	for _, p := range players {
		names = append(names, p.Name())
	}
	return names
}

func TestModernServerTypedPath(t *testing.T) {
	log, _ := testLogger(t)
	server := hosttest.NewModernServer(hosttest.NewPlayer("Bobby"), hosttest.NewPlayer("Alice"))

	svc := NewService(server, WithLogger(log))

	if !svc.ListIsTyped() {
		t.Error("ListIsTyped() = false, want true for modern server")
	}

	got := playerNames(svc.OnlinePlayers())
	want := []string{"Bobby", "Alice"}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("OnlinePlayers() = %v, want %v", got, want)
	}
}

func TestLegacySliceServer(t *testing.T) {
	log, _ := testLogger(t)
	server := hosttest.NewLegacySliceServer(hosttest.NewPlayer("Bobby"))

	svc := NewService(server, WithLogger(log))

	if svc.ListIsTyped() {
		t.Error("ListIsTyped() = true, want false for legacy server")
	}

	got := playerNames(svc.OnlinePlayers())
	if len(got) != 1 || got[0] != "Bobby" {
		t.Errorf("OnlinePlayers() = %v, want [Bobby]", got)
	}
}

func TestLegacyArrayServerPreservesOrder(t *testing.T) {
	log, _ := testLogger(t)
	server := hosttest.NewLegacyArrayServer(hosttest.NewPlayer("Bobby"), hosttest.NewPlayer("Alice"))

	svc := NewService(server, WithLogger(log))

	got := playerNames(svc.OnlinePlayers())
	want := []string{"Bobby", "Alice"}
	if len(got) != 2 || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("OnlinePlayers() = %v, want %v", got, want)
	}
}

// Fixed-size arrays can carry empty slots; the adaptation must skip
// them rather than panic on the nil handle.
func TestLegacyArraySkipsEmptySlots(t *testing.T) {
	log, _ := testLogger(t)
	server := hosttest.NewLegacyArrayServer(hosttest.NewPlayer("Bobby"), nil)

	svc := NewService(server, WithLogger(log))

	var got []string
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("OnlinePlayers() panicked: %v", r)
			}
		}()
		got = playerNames(svc.OnlinePlayers())
	}()

	if len(got) != 1 || got[0] != "Bobby" {
		t.Errorf("OnlinePlayers() = %v, want [Bobby]", got)
	}
}

func TestLegacyEmptyArrayServer(t *testing.T) {
	log, _ := testLogger(t)
	svc := NewService(&hosttest.LegacyEmptyArrayServer{}, WithLogger(log))

	if got := svc.OnlinePlayers(); len(got) != 0 {
		t.Errorf("OnlinePlayers() = %v, want empty", got)
	}
}

// Degradation paths must return an empty list and log, never panic.
func TestDegradationNeverPanics(t *testing.T) {
	tests := []struct {
		name    string
		server  hostapi.Server
		wantLog string
	}{
		{"junk shape", &hosttest.JunkServer{}, "unknown online player list shape"},
		{"nil result", &hosttest.NilServer{}, "unknown online player list shape"},
		{"missing accessor", &hosttest.BareServer{}, "accessor missing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, buf := testLogger(t)

			failures := 0
			svc := NewService(tt.server, WithLogger(log), WithListFailureHook(func() { failures++ }))

			got := svc.OnlinePlayers()
			if len(got) != 0 {
				t.Errorf("OnlinePlayers() = %v, want empty", got)
			}
			if !strings.Contains(buf.String(), tt.wantLog) {
				t.Errorf("log output %q missing %q", buf.String(), tt.wantLog)
			}
			if failures != 1 {
				t.Errorf("failure hook called %d times, want 1", failures)
			}
		})
	}
}

func TestJunkShapeLogsObservedType(t *testing.T) {
	log, buf := testLogger(t)
	svc := NewService(&hosttest.JunkServer{}, WithLogger(log))

	svc.OnlinePlayers()

	if !strings.Contains(buf.String(), "int") {
		t.Errorf("log output %q should name the observed type", buf.String())
	}
}

// countingLegacyServer counts accessor invocations so the test can
// verify the handle resolution is cached, not repeated.
type countingLegacyServer struct {
	hosttest.LegacySliceServer
	calls int
}

func (s *countingLegacyServer) OnlinePlayers() any {
	s.calls++
	return s.Players
}

func TestLegacyLookupResolvedOnce(t *testing.T) {
	log, _ := testLogger(t)
	server := &countingLegacyServer{}
	server.Players = []hostapi.Player{hosttest.NewPlayer("Bobby")}

	svc := NewService(server, WithLogger(log))

	for i := 0; i < 10; i++ {
		svc.OnlinePlayers()
	}

	// The accessor itself runs per call; the reflective lookup must not.
	if server.calls != 10 {
		t.Errorf("accessor calls = %d, want 10", server.calls)
	}
	if !svc.legacyResolved {
		t.Error("legacy handle should be resolved after first call")
	}
	if !svc.legacyList.IsValid() {
		t.Error("legacy handle should be cached and valid")
	}
}

func TestMissingAccessorResolutionCached(t *testing.T) {
	log, buf := testLogger(t)
	svc := NewService(&hosttest.BareServer{}, WithLogger(log))

	// Capability detection already logged once at construction.
	detectLogs := strings.Count(buf.String(), "could not verify")
	if detectLogs != 1 {
		t.Fatalf("capability detection logged %d times, want 1", detectLogs)
	}

	for i := 0; i < 5; i++ {
		svc.OnlinePlayers()
	}

	// Every degraded read logs, but the lookup itself stays cached.
	if strings.Count(buf.String(), "could not verify") != 1 {
		t.Error("capability detection ran more than once")
	}
	if !svc.legacyResolved {
		t.Error("failed lookup should still mark resolution as done")
	}
}

func TestBroadcastAndPlayerExact(t *testing.T) {
	log, _ := testLogger(t)
	bobby := hosttest.NewPlayer("Bobby")
	server := hosttest.NewModernServer(bobby)

	svc := NewService(server, WithLogger(log))

	if n := svc.BroadcastMessage("server restarting"); n != 1 {
		t.Errorf("BroadcastMessage() = %d, want 1", n)
	}
	if got := svc.PlayerExact("bobby"); got != bobby {
		t.Errorf("PlayerExact(bobby) = %v, want the connected player", got)
	}
	if got := svc.PlayerExact("nobody"); got != nil {
		t.Errorf("PlayerExact(nobody) = %v, want nil", got)
	}
}
