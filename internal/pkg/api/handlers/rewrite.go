package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/quillcms/wayfind/internal/pkg/stats"
	"github.com/quillcms/wayfind/pkg/htmlrewrite"
	"github.com/quillcms/wayfind/pkg/urlutils"
)

// Rewrite handles POST /rewrite: it absolutizes relative href/src values in
// the submitted HTML against the configured site URL.
type Rewrite struct {
	Resolver *urlutils.Resolver
}

type rewriteRequest struct {
	HTML       string `json:"html"`
	ItemURL    string `json:"item_url"`
	AssetsOnly bool   `json:"assets_only"`
}

type rewriteResponse struct {
	HTML      string `json:"html"`
	Rewritten int    `json:"rewritten"`
}

func (h Rewrite) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req rewriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON body", http.StatusBadRequest)
		return
	}

	out, rewritten, err := htmlrewrite.AbsolutizeURLs(req.HTML, h.Resolver.SiteURL(false), req.ItemURL, htmlrewrite.Options{
		AssetsOnly:        req.AssetsOnly,
		StaticImagePrefix: h.Resolver.StaticImagePrefix(),
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	stats.RecordRewrite(rewritten)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rewriteResponse{HTML: out, Rewritten: rewritten})
}
