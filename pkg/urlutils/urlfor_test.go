package urlutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVersions() map[string]APIVersionEntry {
	return map[string]APIVersionEntry{
		"v0.1": {Segments: map[string]string{"admin": "v0.1", "content": "v0.1"}},
		"v2": {Segments: map[string]string{
			"admin":   "v2/admin",
			"content": "v2/content",
			"members": "v2/members",
		}},
		"canary": {Alias: "v2"},
	}
}

func TestURLForHome(t *testing.T) {
	tests := []struct {
		name     string
		siteURL  string
		ctx      Home
		absolute bool
		want     string
	}{
		{"Relative", "http://my-ghost-blog.com", Home{}, false, "/"},
		{"Relative with sub-directory", "http://my-ghost-blog.com/blog", Home{}, false, "/blog/"},
		{"Absolute", "http://my-ghost-blog.com", Home{}, true, "http://my-ghost-blog.com/"},
		{"Absolute with sub-directory", "http://my-ghost-blog.com/blog", Home{}, true, "http://my-ghost-blog.com/blog/"},
		{"Absolute secure", "http://my-ghost-blog.com", Home{Secure: true}, true, "https://my-ghost-blog.com/"},
		{"Absolute without trailing slash", "http://my-ghost-blog.com", Home{NoTrailingSlash: true}, true, "http://my-ghost-blog.com"},
		{"Trailing slash kept on relative home", "http://my-ghost-blog.com/blog", Home{NoTrailingSlash: true}, false, "/blog/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := New(Config{SiteURL: tt.siteURL})
			got, err := resolver.URLFor(tt.ctx, tt.absolute)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestURLForRelativeURL(t *testing.T) {
	resolver := New(Config{SiteURL: "http://my-ghost-blog.com/blog"})

	tests := []struct {
		name     string
		ctx      RelativeURL
		absolute bool
		want     string
	}{
		{"Relative", RelativeURL{Path: "/about/"}, false, "/blog/about/"},
		{"Absolute", RelativeURL{Path: "/about/"}, true, "http://my-ghost-blog.com/blog/about/"},
		{"Absolute secure", RelativeURL{Path: "/about/", Secure: true}, true, "https://my-ghost-blog.com/blog/about/"},
		{"Sub-directory not repeated", RelativeURL{Path: "/blog/about/"}, true, "http://my-ghost-blog.com/blog/about/"},
		{"Empty path falls back to root", RelativeURL{}, false, "/blog/"},
		{"Anchor passes through", RelativeURL{Path: "#djorule"}, true, "#djorule"},
		{"Protocol-relative passes through", RelativeURL{Path: "//cdn.example.com/lib.js"}, true, "//cdn.example.com/lib.js"},
		{"Other scheme passes through", RelativeURL{Path: "mailto:test@my-ghost-blog.com"}, true, "mailto:test@my-ghost-blog.com"},
		{"Absolute URL passes through", RelativeURL{Path: "http://other-blog.com/about/"}, true, "http://other-blog.com/about/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.URLFor(tt.ctx, tt.absolute)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestURLForNav(t *testing.T) {
	tests := []struct {
		name     string
		siteURL  string
		ctx      Nav
		absolute bool
		want     string
	}{
		{
			"Stored absolute link is rebuilt",
			"http://my-ghost-blog.com",
			Nav{URL: "http://my-ghost-blog.com/short-and-sweet/"},
			false,
			"http://my-ghost-blog.com/short-and-sweet/",
		},
		{
			"Stored link under a sub-directory",
			"http://my-ghost-blog.com/blog",
			Nav{URL: "http://my-ghost-blog.com/blog/short-and-sweet/"},
			false,
			"http://my-ghost-blog.com/blog/short-and-sweet/",
		},
		{
			"Rebuilding upgrades the scheme",
			"http://my-ghost-blog.com",
			Nav{URL: "http://my-ghost-blog.com/short-and-sweet/", Secure: true},
			false,
			"https://my-ghost-blog.com/short-and-sweet/",
		},
		{
			"Sub-domain link is left alone",
			"http://my-ghost-blog.com",
			Nav{URL: "http://sub.my-ghost-blog.com/"},
			true,
			"http://sub.my-ghost-blog.com/",
		},
		{
			"Mail link is left alone",
			"http://my-ghost-blog.com",
			Nav{URL: "mailto:test@my-ghost-blog.com"},
			true,
			"mailto:test@my-ghost-blog.com",
		},
		{
			"Explicit port is left alone",
			"http://my-ghost-blog.com",
			Nav{URL: "http://my-ghost-blog.com:1234/short-and-sweet/"},
			true,
			"http://my-ghost-blog.com:1234/short-and-sweet/",
		},
		{
			"Relative nav entry",
			"http://my-ghost-blog.com/blog",
			Nav{URL: "/short-and-sweet/"},
			false,
			"/blog/short-and-sweet/",
		},
		{
			"Relative nav entry made absolute",
			"http://my-ghost-blog.com/blog",
			Nav{URL: "/short-and-sweet/"},
			true,
			"http://my-ghost-blog.com/blog/short-and-sweet/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := New(Config{SiteURL: tt.siteURL})
			got, err := resolver.URLFor(tt.ctx, tt.absolute)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestURLForImage(t *testing.T) {
	tests := []struct {
		name     string
		siteURL  string
		ctx      Image
		absolute bool
		want     string
	}{
		{
			"Relative stays relative",
			"http://my-ghost-blog.com",
			Image{Path: "/content/images/my-image.jpg"},
			false,
			"/content/images/my-image.jpg",
		},
		{
			"Absolute under the static prefix",
			"http://my-ghost-blog.com",
			Image{Path: "/content/images/my-image.jpg"},
			true,
			"http://my-ghost-blog.com/content/images/my-image.jpg",
		},
		{
			"Absolute secure",
			"http://my-ghost-blog.com",
			Image{Path: "/content/images/my-image.jpg", Secure: true},
			true,
			"https://my-ghost-blog.com/content/images/my-image.jpg",
		},
		{
			"Sub-directory applied exactly once",
			"http://my-ghost-blog.com/blog",
			Image{Path: "/blog/content/images/my-image.jpg"},
			true,
			"http://my-ghost-blog.com/blog/content/images/my-image.jpg",
		},
		{
			"Outside the static prefix stays relative",
			"http://my-ghost-blog.com",
			Image{Path: "/other/files/my-image.jpg"},
			true,
			"/other/files/my-image.jpg",
		},
		{
			"Missing sub-directory means not eligible",
			"http://my-ghost-blog.com/blog",
			Image{Path: "/content/images/my-image.jpg"},
			true,
			"/content/images/my-image.jpg",
		},
		{
			"External image is left alone",
			"http://my-ghost-blog.com",
			Image{Path: "http://other-blog.com/content/images/my-image.jpg"},
			true,
			"http://other-blog.com/content/images/my-image.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := New(Config{SiteURL: tt.siteURL})
			got, err := resolver.URLFor(tt.ctx, tt.absolute)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestURLForAdmin(t *testing.T) {
	tests := []struct {
		name     string
		siteURL  string
		adminURL string
		absolute bool
		want     string
	}{
		{"Relative", "http://my-ghost-blog.com", "", false, "/ghost/"},
		{"Relative with sub-directory", "http://my-ghost-blog.com/blog", "", false, "/blog/ghost/"},
		{"Absolute falls back to the site URL", "http://my-ghost-blog.com", "", true, "http://my-ghost-blog.com/ghost/"},
		{"Absolute with sub-directory", "http://my-ghost-blog.com/blog", "", true, "http://my-ghost-blog.com/blog/ghost/"},
		{"Separate admin host", "http://my-ghost-blog.com", "https://admin.my-ghost-blog.com", true, "https://admin.my-ghost-blog.com/ghost/"},
		{"Separate admin host with sub-directory", "http://my-ghost-blog.com/blog", "https://admin.my-ghost-blog.com", true, "https://admin.my-ghost-blog.com/blog/ghost/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := New(Config{SiteURL: tt.siteURL, AdminURL: tt.adminURL})
			got, err := resolver.URLFor(Admin{}, tt.absolute)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestURLForAPI(t *testing.T) {
	tests := []struct {
		name     string
		siteURL  string
		adminURL string
		ctx      API
		absolute bool
		want     string
	}{
		{
			"Relative with defaults",
			"http://my-ghost-blog.com",
			"",
			API{},
			false,
			"/ghost/api/v0.1/",
		},
		{
			"Relative with sub-directory",
			"http://my-ghost-blog.com/blog",
			"",
			API{Version: "v2", VersionType: "content"},
			false,
			"/blog/ghost/api/v2/content/",
		},
		{
			"Absolute with defaults",
			"http://my-ghost-blog.com",
			"",
			API{},
			true,
			"http://my-ghost-blog.com/ghost/api/v0.1/",
		},
		{
			"Absolute through an alias",
			"http://my-ghost-blog.com",
			"",
			API{Version: "canary", VersionType: "admin"},
			true,
			"http://my-ghost-blog.com/ghost/api/v2/admin/",
		},
		{
			"Absolute on a separate admin host",
			"http://my-ghost-blog.com",
			"https://admin.my-ghost-blog.com",
			API{Version: "v2", VersionType: "members"},
			true,
			"https://admin.my-ghost-blog.com/ghost/api/v2/members/",
		},
		{
			"CORS strips the scheme from an insecure base",
			"http://my-ghost-blog.com",
			"",
			API{CORS: true},
			true,
			"//my-ghost-blog.com/ghost/api/v0.1/",
		},
		{
			"CORS keeps an https admin base",
			"http://my-ghost-blog.com",
			"https://admin.my-ghost-blog.com",
			API{Version: "v2", VersionType: "content", CORS: true},
			true,
			"https://admin.my-ghost-blog.com/ghost/api/v2/content/",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := New(Config{
				SiteURL:     tt.siteURL,
				AdminURL:    tt.adminURL,
				APIVersions: testVersions(),
			})
			got, err := resolver.URLFor(tt.ctx, tt.absolute)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestURLForAPIWithoutVersions(t *testing.T) {
	resolver := New(Config{SiteURL: "http://my-ghost-blog.com"})

	_, err := resolver.URLFor(API{}, true)
	assert.ErrorIs(t, err, ErrNoAPIVersions)
}

func TestURLForNamedPath(t *testing.T) {
	resolver := New(Config{SiteURL: "http://my-ghost-blog.com/blog"})

	tests := []struct {
		name     string
		ctx      Context
		absolute bool
		want     string
	}{
		{"Home", NamedPath{Name: "home"}, false, "/blog/"},
		{"Sitemap stylesheet", NamedPath{Name: "sitemap_xsl"}, false, "/blog/sitemap.xsl"},
		{"Sitemap stylesheet absolute", NamedPath{Name: "sitemap_xsl"}, true, "http://my-ghost-blog.com/blog/sitemap.xsl"},
		{"Unrecognized name degrades to root", NamedPath{Name: "no-such-path"}, false, "/blog/"},
		{"Nil context degrades to root", nil, false, "/blog/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resolver.URLFor(tt.ctx, tt.absolute)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCreateURL(t *testing.T) {
	resolver := New(Config{SiteURL: "http://my-ghost-blog.com/blog"})

	assert.Equal(t, "/blog/about", resolver.CreateURL("/about", false, false, false))
	assert.Equal(t, "/blog/about/", resolver.CreateURL("/about", false, false, true))
	assert.Equal(t, "http://my-ghost-blog.com/blog/about/", resolver.CreateURL("/about/", true, false, false))
	assert.Equal(t, "https://my-ghost-blog.com/blog/about/", resolver.CreateURL("/about/", true, true, false))
	assert.Equal(t, "/blog/", resolver.CreateURL("", false, false, false))
}

func TestContextKind(t *testing.T) {
	assert.Equal(t, "home", ContextKind(Home{}))
	assert.Equal(t, "admin", ContextKind(Admin{}))
	assert.Equal(t, "api", ContextKind(API{}))
	assert.Equal(t, "image", ContextKind(Image{}))
	assert.Equal(t, "nav", ContextKind(Nav{}))
	assert.Equal(t, "named", ContextKind(NamedPath{}))
	assert.Equal(t, "relative", ContextKind(RelativeURL{}))
	assert.Equal(t, "unrecognized", ContextKind(nil))
}
