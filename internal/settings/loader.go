package settings

import (
	"fmt"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultEnvPrefix is the default environment variable prefix.
const DefaultEnvPrefix = "AUTHME_"

// Loader loads settings from multiple sources.
type Loader struct {
	k         *koanf.Koanf
	envPrefix string
	filePath  string
}

// Option is a function that configures the Loader.
type Option func(*Loader)

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// WithConfigFile sets the configuration file path.
func WithConfigFile(path string) Option {
	return func(l *Loader) {
		l.filePath = path
	}
}

// NewLoader creates a new settings loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		k:         koanf.New("."),
		envPrefix: DefaultEnvPrefix,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Load loads settings from all sources and unmarshals into target.
// Loading order (later sources override earlier):
//  1. Defaults already present on the target struct
//  2. Configuration file (YAML)
//  3. Environment variables
func (l *Loader) Load(target *Settings) error {
	if l.filePath != "" {
		if err := l.loadFile(l.filePath); err != nil {
			return fmt.Errorf("load config file: %w", err)
		}
	}

	if err := l.loadEnv(); err != nil {
		return fmt.Errorf("load env: %w", err)
	}

	if err := l.k.Unmarshal("", target); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	return nil
}

// loadFile loads settings from a YAML file.
func (l *Loader) loadFile(path string) error {
	if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("load file %s: %w", path, err)
	}
	return nil
}

// loadEnv loads settings from environment variables.
// Format: AUTHME_SECTION_KEY (uppercase, underscores).
// Example: AUTHME_LOG_LEVEL=debug -> log.level
func (l *Loader) loadEnv() error {
	envTransformer := func(s string) string {
		s = strings.TrimPrefix(s, l.envPrefix)
		s = strings.ToLower(s)

		// Only the first underscore separates section from key;
		// the rest belong to multi-word key names.
		if idx := strings.Index(s, "_"); idx > 0 {
			s = s[:idx] + "." + s[idx+1:]
		}
		return s
	}

	if err := l.k.Load(env.Provider(l.envPrefix, ".", envTransformer), nil); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}
