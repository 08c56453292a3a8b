// Package logger provides structured logging for AuthMe.
//
// It wraps the standard library log/slog to provide structured
// JSON logging with automatic sensitive data redaction. This is the
// operator-facing log sink: the shutdown path relies on it never
// returning an error and never blocking indefinitely.
//
// Features:
//   - JSON structured logging (default), text for consoles
//   - Automatic redaction of password-bearing fields
//   - Log level configuration with runtime adjustment
package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"sync/atomic"
)

// Logger is the extension logger interface.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
}

// Config holds logger configuration.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string
	// Format is the output format (json, text).
	Format string
	// Output is the output writer (defaults to os.Stderr).
	Output io.Writer
	// AddSource adds source file information to log entries.
	AddSource bool
}

// DefaultConfig returns a default logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:     "info",
		Format:    "json",
		Output:    os.Stderr,
		AddSource: false,
	}
}

// slogLogger wraps slog.Logger.
type slogLogger struct {
	logger *slog.Logger
}

// globalLevel holds the current log level for dynamic adjustment.
var globalLevel = new(slog.LevelVar)

// New creates a new logger with the given configuration.
func New(cfg Config) Logger {
	globalLevel.Set(parseLevel(cfg.Level))

	opts := &slog.HandlerOptions{
		Level:     globalLevel,
		AddSource: cfg.AddSource,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			return redactSensitive(a)
		},
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "text", "console":
		handler = slog.NewTextHandler(output, opts)
	default: // json
		handler = slog.NewJSONHandler(output, opts)
	}

	return &slogLogger{logger: slog.New(handler)}
}

// SetLevel dynamically sets the global log level.
func SetLevel(level string) {
	globalLevel.Set(parseLevel(level))
}

func (l *slogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

func (l *slogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

func (l *slogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

func (l *slogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{logger: l.logger.With(args...)}
}

// parseLevel converts a string level to slog.Level.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// loggerHolder boxes the interface so any Logger implementation can
// live behind the atomic pointer.
type loggerHolder struct {
	l Logger
}

// Global logger instance for convenience methods.
var defaultLogger atomic.Pointer[loggerHolder]

func init() {
	defaultLogger.Store(&loggerHolder{l: New(DefaultConfig())})
}

// SetDefault sets the default global logger. A nil logger is ignored.
func SetDefault(l Logger) {
	if l != nil {
		defaultLogger.Store(&loggerHolder{l: l})
	}
}

// Default returns the default global logger.
func Default() Logger {
	return defaultLogger.Load().l
}
