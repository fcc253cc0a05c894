package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/quillcms/wayfind/internal/pkg/log"
)

// withRequestID tags every request and its log entries with a request ID.
func withRequestID(next http.Handler) http.Handler {
	logger := log.NewFieldedLogger(&log.Fields{
		"component": "api",
	})

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		logger.Debug("request", "id", id, "method", r.Method, "path", r.URL.Path)
		next.ServeHTTP(w, r)
	})
}
