// Package api defines the web API for Wayfind.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/quillcms/wayfind/internal/pkg/log"
	"github.com/quillcms/wayfind/internal/pkg/redirect"
	"github.com/quillcms/wayfind/pkg/urlutils"
)

var (
	server *http.Server
	once   sync.Once

	// ErrAPIAlreadyInitialized is returned when the API server is already
	// initialized.
	ErrAPIAlreadyInitialized = errors.New("API server already initialized")
)

// Options carries the dependencies and settings of the API server.
type Options struct {
	Port       int
	Prometheus bool
	Resolver   *urlutils.Resolver
	Emitter    *redirect.Emitter
}

// Start begins serving HTTP requests in a separate goroutine.
func Start(opts Options) error {
	var done bool

	once.Do(func() {
		mux := http.NewServeMux()
		registerRoutes(mux, opts)

		server = &http.Server{
			Addr:    ":" + strconv.Itoa(opts.Port),
			Handler: withRequestID(mux),
		}

		logger := log.NewFieldedLogger(&log.Fields{
			"component": "api",
		})

		go func() {
			logger.Info("starting API server", "addr", server.Addr)
			// ListenAndServe returns http.ErrServerClosed when Shutdown is
			// called.
			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("ListenAndServe error", "err", err.Error())
			}
		}()

		done = true
	})

	if !done {
		return ErrAPIAlreadyInitialized
	}

	return nil
}

// Stop gracefully shuts down the server within the provided timeout and
// resets the package so Start can be called again.
func Stop(timeout time.Duration) error {
	if server == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := server.Shutdown(ctx)
	server = nil
	once = sync.Once{}
	return err
}
