package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config controls where and how log records are written.
type Config struct {
	// Level is the minimum level that gets written.
	Level slog.Level

	// JSON switches the output from text to JSON records.
	JSON bool

	// Output defaults to stderr.
	Output io.Writer
}

func defaultConfig() *Config {
	return &Config{
		Level:  slog.LevelInfo,
		Output: os.Stderr,
	}
}

func (c *Config) handler() slog.Handler {
	output := c.Output
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{Level: c.Level}
	if c.JSON {
		return slog.NewJSONHandler(output, opts)
	}
	return slog.NewTextHandler(output, opts)
}

// ParseLevel maps a configured level name to a slog level, defaulting to
// info for anything unrecognized.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
