package handlers

import (
	"net/http"

	"github.com/quillcms/wayfind/internal/pkg/redirect"
)

// AdminRedirect sends /ghost requests to the admin interface, wherever it
// is hosted. By default the redirect is a temporary one; permanent=true
// upgrades it to a cached 301.
type AdminRedirect struct {
	Emitter *redirect.Emitter
}

func (h AdminRedirect) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	status := http.StatusFound
	if r.URL.Query().Get("permanent") == "true" {
		status = http.StatusMovedPermanently
	}

	if err := h.Emitter.ToAdmin(status, w, r, r.PathValue("path")); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
