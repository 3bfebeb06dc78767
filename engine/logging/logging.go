// Package logging builds the zerolog loggers shared by the engine, camera controllers and profiler.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// LogLevel represents logging levels
type LogLevel string

const (
	LevelDebug LogLevel = "debug"
	LevelInfo  LogLevel = "info"
	LevelWarn  LogLevel = "warn"
	LevelError LogLevel = "error"
)

// Config holds logger configuration
type Config struct {
	Level   LogLevel  // Minimum log level (default: info)
	Console bool      // Human readable console output instead of JSON (default: true)
	Output  io.Writer // Destination (default: os.Stderr)
	App     string    // Value of the "app" field on every entry (default: oxy-orbit)
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:   LevelInfo,
		Console: true,
		Output:  os.Stderr,
		App:     "oxy-orbit",
	}
}

// ParseLevel converts a string to a LogLevel.
func ParseLevel(level string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return "", fmt.Errorf("invalid log level %q (must be debug, info, warn or error)", level)
	}
}

// zerologLevel maps a LogLevel onto the zerolog level, defaulting to info.
func zerologLevel(level LogLevel) zerolog.Level {
	switch level {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New creates a zerolog.Logger from cfg. Zero-valued fields fall back to DefaultConfig.
func New(cfg Config) zerolog.Logger {
	def := DefaultConfig()
	if cfg.Output == nil {
		cfg.Output = def.Output
	}
	if cfg.App == "" {
		cfg.App = def.App
	}

	out := cfg.Output
	if cfg.Console {
		out = zerolog.ConsoleWriter{
			Out:        cfg.Output,
			TimeFormat: "15:04:05",
			NoColor:    cfg.Output != os.Stderr && cfg.Output != os.Stdout,
		}
	}

	return zerolog.New(out).
		Level(zerologLevel(cfg.Level)).
		With().
		Timestamp().
		Str("app", cfg.App).
		Logger()
}

// Component returns a child logger tagged with a component name.
func Component(logger zerolog.Logger, name string) zerolog.Logger {
	return logger.With().Str("component", name).Logger()
}
