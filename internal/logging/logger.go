package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config holds logging configuration
type Config struct {
	Level      zerolog.Level
	Format     string // "json" or "console"
	TimeFormat string
	// File, when set, receives a JSON copy of every log line. The file is
	// rotated by size.
	File string
	// NoConsole drops the stderr output, e.g. while a full-screen terminal
	// UI owns the terminal.
	NoConsole bool
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Level:      zerolog.InfoLevel,
		Format:     "console",
		TimeFormat: time.RFC3339,
	}
}

// New creates a new zerolog logger with the given configuration.
// The returned closer releases the log file, if any; it is never nil.
func New(cfg Config) (zerolog.Logger, io.Closer, error) {
	var output io.Writer = os.Stderr

	switch cfg.Format {
	case "console":
		output = zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: cfg.TimeFormat,
		}
	case "json":
		// JSON is the default zerolog format
		output = os.Stderr
	}
	if cfg.NoConsole {
		output = io.Discard
	}

	var closer io.Closer = nopCloser{}
	if cfg.File != "" {
		rotator, err := NewLogRotator(cfg.File, DefaultRotateOptions())
		if err != nil {
			return zerolog.Nop(), closer, err
		}
		output = zerolog.MultiLevelWriter(output, rotator)
		closer = rotator
	}

	logger := zerolog.New(output).
		Level(cfg.Level).
		With().
		Timestamp().
		Logger()
	return logger, closer, nil
}

// ParseLevel maps a level name to a zerolog level, defaulting to info.
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

// SetLevel changes the threshold shared by every logger. A logger built with
// a higher level of its own keeps it.
func SetLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
