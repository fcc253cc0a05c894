// Package log provides leveled, fielded logging for Wayfind, built on
// log/slog. It is initialized once per process and safe for concurrent use.
package log

import (
	"context"
	"errors"
	"log/slog"
	"sync"
)

// ErrLoggerAlreadyInitialized is returned when Start is called twice
// without an intervening Stop.
var ErrLoggerAlreadyInitialized = errors.New("logger already initialized")

var (
	logger *slog.Logger
	once   sync.Once
)

// Start initializes the logging package with the given configuration. If no
// configuration is provided, the default configuration is used.
func Start(cfgs ...*Config) error {
	var done bool

	once.Do(func() {
		cfg := defaultConfig()
		if len(cfgs) > 0 && cfgs[0] != nil {
			cfg = cfgs[0]
		}
		logger = slog.New(cfg.handler())
		done = true
	})

	if !done {
		return ErrLoggerAlreadyInitialized
	}

	return nil
}

// Stop resets the logging system so a subsequent Start reconfigures it.
func Stop() {
	logger = nil
	once = sync.Once{}
}

func Debug(msg string, args ...any) {
	logWithLevel(slog.LevelDebug, msg, args...)
}

func Info(msg string, args ...any) {
	logWithLevel(slog.LevelInfo, msg, args...)
}

func Warn(msg string, args ...any) {
	logWithLevel(slog.LevelWarn, msg, args...)
}

func Error(msg string, args ...any) {
	logWithLevel(slog.LevelError, msg, args...)
}

func logWithLevel(level slog.Level, msg string, args ...any) {
	ctx := context.Background()
	if logger == nil {
		slog.Log(ctx, level, msg, args...)
		return
	}
	logger.Log(ctx, level, msg, args...)
}
