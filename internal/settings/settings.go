// Package settings defines the extension configuration.
//
// Settings load from a YAML file plus AUTHME_-prefixed environment
// variables (env wins). The restriction section supports live reload
// via the fsnotify-backed watcher.
package settings

import "time"

// Settings is the root configuration for the AuthMe extension.
type Settings struct {
	Restriction RestrictionSection `koanf:"restriction"`
	Session     SessionSection     `koanf:"session"`
	Storage     StorageSection     `koanf:"storage"`
	Bungee      BungeeSection      `koanf:"bungee"`
	Log         LogSection         `koanf:"log"`
}

// RestrictionSection configures which players bypass authentication.
type RestrictionSection struct {
	// UnrestrictedNames lists player names exempt from authentication
	// entirely. Matching is case-insensitive.
	UnrestrictedNames []string `koanf:"unrestricted_names"`

	// MaxLoginPerSecond caps login attempts per player key.
	MaxLoginPerSecond float64 `koanf:"max_login_per_second"`

	// LoginBurst is the burst allowance on top of the per-second cap.
	LoginBurst int `koanf:"login_burst"`
}

// SessionSection configures authenticated-session behavior.
type SessionSection struct {
	// Timeout is how long an authenticated session stays valid without
	// activity. Zero disables the timeout.
	Timeout time.Duration `koanf:"timeout"`
}

// StorageSection configures the persistent datasource.
type StorageSection struct {
	// Backend selects the datasource implementation ("memory", "badger").
	Backend string `koanf:"backend"`

	// DataDir is the directory for the badger backend.
	DataDir string `koanf:"data_dir"`
}

// BungeeSection configures companion-proxy notifications.
type BungeeSection struct {
	Enabled bool `koanf:"enabled"`
}

// LogSection configures the operator log sink.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Default returns the default settings.
func Default() *Settings {
	return &Settings{
		Restriction: RestrictionSection{
			UnrestrictedNames: nil,
			MaxLoginPerSecond: 1,
			LoginBurst:        3,
		},
		Session: SessionSection{
			Timeout: 10 * time.Minute,
		},
		Storage: StorageSection{
			Backend: "memory",
			DataDir: "data",
		},
		Bungee: BungeeSection{
			Enabled: false,
		},
		Log: LogSection{
			Level:  "info",
			Format: "json",
		},
	}
}
