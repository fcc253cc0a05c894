// Package handlers implements the HTTP handlers of the Wayfind API.
package handlers

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/quillcms/wayfind/internal/pkg/stats"
	"github.com/quillcms/wayfind/pkg/urlutils"
)

// Resolve handles GET /resolve. The context variant is described through
// query parameters; unknown or missing context data degrades to the root
// path, mirroring the resolver's permissive contract.
type Resolve struct {
	Resolver *urlutils.Resolver
}

type resolveResponse struct {
	URL string `json:"url"`
}

func (h Resolve) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	ctx := contextFromQuery(query)
	absolute := query.Get("absolute") == "true"

	resolved, err := h.Resolver.URLFor(ctx, absolute)
	if err != nil {
		// The only failure mode is a broken API version configuration.
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	stats.RecordResolution(urlutils.ContextKind(ctx))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resolveResponse{URL: resolved})
}

func contextFromQuery(query url.Values) urlutils.Context {
	secure := query.Get("secure") == "true"

	switch query.Get("context") {
	case "home":
		return urlutils.Home{
			Secure:          secure,
			NoTrailingSlash: query.Get("trailing_slash") == "false",
		}
	case "admin":
		return urlutils.Admin{Secure: secure}
	case "api":
		return urlutils.API{
			Version:     query.Get("version"),
			VersionType: query.Get("version_type"),
			CORS:        query.Get("cors") == "true",
			Secure:      secure,
		}
	case "image":
		return urlutils.Image{Path: query.Get("image"), Secure: secure}
	case "nav":
		return urlutils.Nav{URL: query.Get("nav"), Secure: secure}
	case "relative":
		return urlutils.RelativeURL{Path: query.Get("path"), Secure: secure}
	case "":
		return nil
	default:
		// Any other string is treated as a named path; unknown names
		// resolve to the root.
		return urlutils.NamedPath{Name: query.Get("context")}
	}
}
