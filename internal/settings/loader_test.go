package settings

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Storage.Backend != "memory" {
		t.Errorf("Storage.Backend = %q, want %q", cfg.Storage.Backend, "memory")
	}
	if cfg.Session.Timeout != 10*time.Minute {
		t.Errorf("Session.Timeout = %v, want 10m", cfg.Session.Timeout)
	}
	if cfg.Bungee.Enabled {
		t.Error("Bungee.Enabled should default to false")
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "info")
	}
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
restriction:
  unrestricted_names:
    - Bedrock
    - CameraBot
log:
  level: debug
`)

	cfg := Default()
	if err := NewLoader(WithConfigFile(path)).Load(cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Restriction.UnrestrictedNames) != 2 {
		t.Fatalf("UnrestrictedNames = %v, want 2 entries", cfg.Restriction.UnrestrictedNames)
	}
	if cfg.Restriction.UnrestrictedNames[0] != "Bedrock" {
		t.Errorf("UnrestrictedNames[0] = %q, want %q", cfg.Restriction.UnrestrictedNames[0], "Bedrock")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "debug")
	}

	// Untouched sections keep their defaults.
	if cfg.Storage.Backend != "memory" {
		t.Errorf("Storage.Backend = %q, want default %q", cfg.Storage.Backend, "memory")
	}
}

func TestLoadFileMissing(t *testing.T) {
	cfg := Default()
	err := NewLoader(WithConfigFile("/nonexistent/config.yml")).Load(cfg)
	if err == nil {
		t.Error("Load() with missing file should fail")
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `
log:
  level: info
`)
	t.Setenv("AUTHME_LOG_LEVEL", "error")

	cfg := Default()
	if err := NewLoader(WithConfigFile(path)).Load(cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Log.Level != "error" {
		t.Errorf("Log.Level = %q, want env override %q", cfg.Log.Level, "error")
	}
}

func TestLoadEnvMultiWordKey(t *testing.T) {
	t.Setenv("AUTHME_STORAGE_DATA_DIR", "/var/lib/authme")

	cfg := Default()
	if err := NewLoader().Load(cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Storage.DataDir != "/var/lib/authme" {
		t.Errorf("Storage.DataDir = %q, want %q", cfg.Storage.DataDir, "/var/lib/authme")
	}
}

func TestCustomEnvPrefix(t *testing.T) {
	t.Setenv("GATE_LOG_LEVEL", "warn")

	cfg := Default()
	if err := NewLoader(WithEnvPrefix("GATE_")).Load(cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Log.Level != "warn" {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, "warn")
	}
}
