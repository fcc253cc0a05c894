package api

import (
	"net/http"

	"github.com/quillcms/wayfind/internal/pkg/api/handlers"
	"github.com/quillcms/wayfind/internal/pkg/stats"
)

// registerRoutes attaches all API handlers to mux.
func registerRoutes(mux *http.ServeMux, opts Options) {
	if opts.Prometheus {
		mux.Handle("GET /metrics", stats.PrometheusHandler())
	}
	mux.HandleFunc("GET /status", statusHandler)
	mux.Handle("GET /resolve", handlers.Resolve{Resolver: opts.Resolver})
	mux.Handle("POST /rewrite", handlers.Rewrite{Resolver: opts.Resolver})
	mux.Handle("GET /ghost", handlers.AdminRedirect{Emitter: opts.Emitter})
	mux.Handle("GET /ghost/{path...}", handlers.AdminRedirect{Emitter: opts.Emitter})
}
