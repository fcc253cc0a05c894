package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quillcms/wayfind/internal/pkg/redirect"
)

func adminMux() *http.ServeMux {
	handler := AdminRedirect{Emitter: redirect.NewEmitter(testResolver(), 31536000)}

	mux := http.NewServeMux()
	mux.Handle("GET /ghost", handler)
	mux.Handle("GET /ghost/{path...}", handler)
	return mux
}

func TestAdminRedirect(t *testing.T) {
	mux := adminMux()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/ghost", nil)
	mux.ServeHTTP(w, r)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "http://my-ghost-blog.com/blog/ghost/", w.Header().Get("Location"))
	assert.Empty(t, w.Header().Get("Cache-Control"))
}

func TestAdminRedirectWithPath(t *testing.T) {
	mux := adminMux()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/ghost/settings/general", nil)
	mux.ServeHTTP(w, r)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "http://my-ghost-blog.com/blog/ghost/settings/general/", w.Header().Get("Location"))
}

func TestAdminRedirectPermanent(t *testing.T) {
	mux := adminMux()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/ghost?permanent=true", nil)
	mux.ServeHTTP(w, r)

	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "public, max-age=31536000", w.Header().Get("Cache-Control"))
}
