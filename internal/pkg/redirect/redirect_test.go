package redirect

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quillcms/wayfind/pkg/urlutils"
)

func newTestEmitter(siteURL string) *Emitter {
	return NewEmitter(urlutils.New(urlutils.Config{SiteURL: siteURL}), 31536000)
}

func TestRedirect301(t *testing.T) {
	emitter := newTestEmitter("http://my-ghost-blog.com")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/old-path", nil)
	emitter.Redirect301(w, r, "http://my-ghost-blog.com/new-path/")

	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "http://my-ghost-blog.com/new-path/", w.Header().Get("Location"))
	assert.Equal(t, "public, max-age=31536000", w.Header().Get("Cache-Control"))
}

func TestToAdminPermanent(t *testing.T) {
	emitter := newTestEmitter("http://my-ghost-blog.com/blog")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/ghost", nil)
	err := emitter.ToAdmin(http.StatusMovedPermanently, w, r, "settings")
	require.NoError(t, err)

	assert.Equal(t, http.StatusMovedPermanently, w.Code)
	assert.Equal(t, "http://my-ghost-blog.com/blog/ghost/settings/", w.Header().Get("Location"))
	assert.NotEmpty(t, w.Header().Get("Cache-Control"))
}

func TestToAdminTemporary(t *testing.T) {
	emitter := newTestEmitter("http://my-ghost-blog.com")

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/ghost", nil)
	err := emitter.ToAdmin(http.StatusFound, w, r, "")
	require.NoError(t, err)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "http://my-ghost-blog.com/ghost/", w.Header().Get("Location"))
	assert.Empty(t, w.Header().Get("Cache-Control"))
}
