package service

import (
	"errors"
	"testing"

	"github.com/venus98/AuthMeReloaded/internal/core/domain"
	"github.com/venus98/AuthMeReloaded/internal/settings"
)

func throttlerWith(burst int, perSecond float64) *LoginThrottler {
	cfg := settings.Default()
	cfg.Restriction.LoginBurst = burst
	cfg.Restriction.MaxLoginPerSecond = perSecond
	return NewLoginThrottler(cfg)
}

func TestAllowAttemptBurst(t *testing.T) {
	th := throttlerWith(3, 0.001) // effectively no refill during the test

	for i := 0; i < 3; i++ {
		if !th.AllowAttempt("bobby") {
			t.Fatalf("attempt %d should be allowed within burst", i+1)
		}
	}
	if th.AllowAttempt("bobby") {
		t.Error("attempt beyond burst should be denied")
	}
}

func TestAllowAttemptPerKey(t *testing.T) {
	th := throttlerWith(1, 0.001)

	if !th.AllowAttempt("bobby") {
		t.Fatal("first attempt for bobby should be allowed")
	}
	if th.AllowAttempt("bobby") {
		t.Error("second attempt for bobby should be denied")
	}

	// Other keys have independent buckets.
	if !th.AllowAttempt("alice") {
		t.Error("alice should not be affected by bobby's bucket")
	}
}

func TestCheckAttempt(t *testing.T) {
	th := throttlerWith(1, 0.001)

	if err := th.CheckAttempt("bobby"); err != nil {
		t.Fatalf("CheckAttempt() error = %v, want nil", err)
	}

	err := th.CheckAttempt("bobby")
	if !errors.Is(err, domain.ErrLoginThrottled) {
		t.Errorf("CheckAttempt() error = %v, want ErrLoginThrottled", err)
	}
}

func TestReset(t *testing.T) {
	th := throttlerWith(1, 0.001)

	th.AllowAttempt("bobby")
	if th.AllowAttempt("bobby") {
		t.Fatal("bucket should be exhausted")
	}

	th.Reset("bobby")
	if !th.AllowAttempt("bobby") {
		t.Error("Reset should grant a fresh bucket")
	}
}

func TestZeroRateMeansUnlimited(t *testing.T) {
	th := throttlerWith(0, 0)

	for i := 0; i < 100; i++ {
		if !th.AllowAttempt("bobby") {
			t.Fatalf("attempt %d denied, want unlimited when rate is zero", i+1)
		}
	}
}
