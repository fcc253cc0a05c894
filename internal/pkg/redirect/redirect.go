// Package redirect issues cache-aware redirects built from resolver output.
package redirect

import (
	"fmt"
	"net/http"

	"github.com/quillcms/wayfind/internal/pkg/stats"
	"github.com/quillcms/wayfind/pkg/urlutils"
)

// Emitter issues redirects against one resolver instance. Permanent
// redirects carry a public cache-control header, temporary ones never do.
type Emitter struct {
	resolver    *urlutils.Resolver
	cacheMaxAge int
}

// NewEmitter returns an Emitter bound to resolver. cacheMaxAgeSeconds is
// the max-age attached to 301 responses.
func NewEmitter(resolver *urlutils.Resolver, cacheMaxAgeSeconds int) *Emitter {
	return &Emitter{resolver: resolver, cacheMaxAge: cacheMaxAgeSeconds}
}

// Redirect301 issues a permanent redirect with the configured cache header.
func (e *Emitter) Redirect301(w http.ResponseWriter, r *http.Request, url string) {
	w.Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", e.cacheMaxAge))
	http.Redirect(w, r, url, http.StatusMovedPermanently)
	stats.RecordRedirect(http.StatusMovedPermanently)
}

// ToAdmin redirects to a path under the admin interface, with a trailing
// slash. status selects a cached 301 or an uncached 302.
func (e *Emitter) ToAdmin(status int, w http.ResponseWriter, r *http.Request, adminPath string) error {
	base, err := e.resolver.URLFor(urlutils.Admin{}, true)
	if err != nil {
		return err
	}

	redirectURL := e.resolver.URLJoin(base, adminPath, "/")

	if status == http.StatusMovedPermanently {
		e.Redirect301(w, r, redirectURL)
		return nil
	}

	http.Redirect(w, r, redirectURL, http.StatusFound)
	stats.RecordRedirect(http.StatusFound)
	return nil
}
