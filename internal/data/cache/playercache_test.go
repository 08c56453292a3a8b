package cache

import (
	"testing"

	"github.com/venus98/AuthMeReloaded/internal/core/domain"
)

func mustAuth(t *testing.T, name string) *domain.PlayerAuth {
	t.Helper()
	auth, err := domain.NewPlayerAuth(name, "127.0.0.1")
	if err != nil {
		t.Fatalf("NewPlayerAuth(%q) error = %v", name, err)
	}
	return auth
}

func TestUpdateAndGet(t *testing.T) {
	c := NewPlayerCache()

	if err := c.Update(mustAuth(t, "Bobby")); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	auth, ok := c.Get("bobby")
	if !ok {
		t.Fatal("Get(bobby) not found after Update")
	}
	if auth.RealName != "Bobby" {
		t.Errorf("RealName = %q, want %q", auth.RealName, "Bobby")
	}
}

func TestUpdateRejectsInvalid(t *testing.T) {
	c := NewPlayerCache()

	bad := mustAuth(t, "Bobby")
	bad.Key = "someone-else"
	if err := c.Update(bad); err == nil {
		t.Error("Update() with mismatched key should fail")
	}
	if c.Size() != 0 {
		t.Error("invalid record must not be stored")
	}
}

func TestGetReturnsCopy(t *testing.T) {
	c := NewPlayerCache()
	if err := c.Update(mustAuth(t, "Bobby")); err != nil {
		t.Fatal(err)
	}

	first, _ := c.Get("bobby")
	first.RealName = "Hacked"

	second, _ := c.Get("bobby")
	if second.RealName != "Bobby" {
		t.Error("mutating a returned record affected the cache")
	}
}

func TestIsAuthenticated(t *testing.T) {
	c := NewPlayerCache()
	if err := c.Update(mustAuth(t, "Bobby")); err != nil {
		t.Fatal(err)
	}

	if !c.IsAuthenticated("bobby") {
		t.Error("IsAuthenticated(bobby) = false, want true")
	}
	if c.IsAuthenticated("alice") {
		t.Error("IsAuthenticated(alice) = true, want false")
	}
}

// Removal is idempotent: removing twice ends in the same state as once.
func TestRemovePlayerIdempotent(t *testing.T) {
	c := NewPlayerCache()
	if err := c.Update(mustAuth(t, "Bobby")); err != nil {
		t.Fatal(err)
	}

	c.RemovePlayer("bobby")
	if c.IsAuthenticated("bobby") {
		t.Fatal("bobby should be evicted")
	}

	// Second removal of the same key, and removal of a never-present
	// key, are both silent no-ops.
	c.RemovePlayer("bobby")
	c.RemovePlayer("ghost")

	if c.Size() != 0 {
		t.Errorf("Size() = %d, want 0", c.Size())
	}
}

func TestSizeAndKeys(t *testing.T) {
	c := NewPlayerCache()
	for _, name := range []string{"Bobby", "Alice", "Carol"} {
		if err := c.Update(mustAuth(t, name)); err != nil {
			t.Fatal(err)
		}
	}

	if c.Size() != 3 {
		t.Errorf("Size() = %d, want 3", c.Size())
	}

	seen := make(map[domain.Key]bool)
	for _, k := range c.Keys() {
		seen[k] = true
	}
	for _, want := range []domain.Key{"bobby", "alice", "carol"} {
		if !seen[want] {
			t.Errorf("Keys() missing %q", want)
		}
	}

	c.Clear()
	if c.Size() != 0 {
		t.Errorf("Size() after Clear = %d, want 0", c.Size())
	}
}
