package urlutils

import (
	"net/url"
	"slices"
	"strings"

	"golang.org/x/net/idna"
)

// SiteURL returns the configured site URL with a guaranteed trailing slash.
// When secure is true, a plain http scheme is upgraded to https.
func (r *Resolver) SiteURL(secure bool) string {
	siteURL := r.cfg.SiteURL
	if secure {
		siteURL = strings.Replace(siteURL, "http://", "https://", 1)
	}
	if !strings.HasSuffix(siteURL, "/") {
		siteURL += "/"
	}
	return siteURL
}

// Subdir derives the sub-directory from the site URL's path component, with
// any trailing slash removed. It returns "" when the site is served from the
// root. The value is recomputed on every call, the site URL is the single
// source of truth.
func (r *Resolver) Subdir() string {
	parsed, err := url.Parse(r.SiteURL(false))
	if err != nil {
		return ""
	}

	pathname := parsed.Path
	if pathname != "/" {
		pathname = strings.TrimSuffix(pathname, "/")
	}
	if pathname == "/" || pathname == "" {
		return ""
	}
	return pathname
}

// AdminURL returns the base URL of the admin interface, with a trailing
// slash and the sub-directory applied exactly once. It returns "" when no
// separate admin host is configured, callers fall back to SiteURL.
func (r *Resolver) AdminURL() string {
	adminURL := r.cfg.AdminURL
	if adminURL == "" {
		return ""
	}
	adminURL = strings.TrimRight(adminURL, "/")
	return JoinURL(r.cfg.SiteURL, adminURL, r.Subdir(), "/")
}

// ProtectedSlugs returns the configured reserved slugs plus, when the site
// lives in a sub-directory, its final path segment.
func (r *Resolver) ProtectedSlugs() []string {
	slugs := slices.Clone(r.cfg.ProtectedSlugs)

	subdir := r.Subdir()
	if subdir == "" {
		return slugs
	}

	segments := strings.Split(strings.TrimPrefix(subdir, "/"), "/")
	return append(slugs, segments[len(segments)-1])
}

// IsSiteURL reports whether u points at the configured site host. Hosts are
// IDNA-encoded before comparison so unicode and punycode spellings of the
// same host match.
func (r *Resolver) IsSiteURL(u string) bool {
	parsed, err := url.Parse(u)
	if err != nil || parsed.Host == "" {
		return false
	}
	site, err := url.Parse(r.SiteURL(false))
	if err != nil {
		return false
	}
	return asciiHost(parsed.Hostname()) == asciiHost(site.Hostname())
}

// IsSSL reports whether u uses the https scheme.
func IsSSL(u string) bool {
	parsed, err := url.Parse(u)
	return err == nil && parsed.Scheme == "https"
}

func asciiHost(host string) string {
	ascii, err := idna.ToASCII(host)
	if err != nil {
		return host
	}
	return ascii
}
