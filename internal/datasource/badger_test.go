package datasource

import (
	"context"
	"errors"
	"testing"

	"github.com/venus98/AuthMeReloaded/internal/core/domain"
)

func newBadgerStore(t *testing.T) *BadgerStore {
	t.Helper()
	s, err := NewBadgerStore(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("NewBadgerStore() error = %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return s
}

func TestBadgerStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s := newBadgerStore(t)

	auth := mustAuth(t, "Bobby")
	if err := s.SaveAuth(ctx, auth); err != nil {
		t.Fatalf("SaveAuth() error = %v", err)
	}

	got, err := s.GetAuth(ctx, "bobby")
	if err != nil {
		t.Fatalf("GetAuth() error = %v", err)
	}
	if got.RealName != "Bobby" || got.SessionID != auth.SessionID {
		t.Errorf("GetAuth() = %+v, want stored record", got)
	}
}

func TestBadgerStoreGetMissing(t *testing.T) {
	s := newBadgerStore(t)

	_, err := s.GetAuth(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrAuthNotFound) {
		t.Errorf("GetAuth() error = %v, want ErrAuthNotFound", err)
	}
}

func TestBadgerStoreSetUnlogged(t *testing.T) {
	ctx := context.Background()
	s := newBadgerStore(t)

	if err := s.SaveAuth(ctx, mustAuth(t, "Bobby")); err != nil {
		t.Fatal(err)
	}
	if err := s.SetUnlogged(ctx, "bobby"); err != nil {
		t.Fatalf("SetUnlogged() error = %v", err)
	}

	got, err := s.GetAuth(ctx, "bobby")
	if err != nil {
		t.Fatal(err)
	}
	if got.LoggedIn {
		t.Error("LoggedIn = true after SetUnlogged")
	}

	// Missing keys are a silent no-op.
	if err := s.SetUnlogged(ctx, "ghost"); err != nil {
		t.Errorf("SetUnlogged(ghost) error = %v, want nil", err)
	}
}

func TestBadgerStoreRequiresDir(t *testing.T) {
	if _, err := NewBadgerStore("", nil); err == nil {
		t.Error("NewBadgerStore(\"\") should fail")
	}
}
