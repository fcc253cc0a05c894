package urlutils

import (
	"net/url"
	"strings"
)

// RelativeOptions tunes the absolute/relative converters.
type RelativeOptions struct {
	// StrictProtocol requires the scheme to match the site URL's scheme for
	// a URL to count as on-site. By default http and https spellings of the
	// site are treated as the same site.
	StrictProtocol bool

	// WithoutSubdirectory strips (or, for the reverse direction, expects)
	// the site's sub-directory on the relative side.
	WithoutSubdirectory bool
}

// AbsoluteToRelative converts an absolute URL on the configured site into a
// root-relative one. URLs on other hosts and values that are already
// relative are returned unchanged.
func AbsoluteToRelative(u, siteURL string, opts RelativeOptions) string {
	parsed, err := url.Parse(u)
	if err != nil || parsed.Host == "" {
		return u
	}

	site, err := url.Parse(siteURL)
	if err != nil || parsed.Host != site.Host {
		return u
	}
	if opts.StrictProtocol && parsed.Scheme != site.Scheme {
		return u
	}

	rel := parsed.Path
	if parsed.RawQuery != "" {
		rel += "?" + parsed.RawQuery
	}
	if parsed.Fragment != "" {
		rel += "#" + parsed.Fragment
	}

	if opts.WithoutSubdirectory {
		subdir := strings.TrimSuffix(site.Path, "/")
		if subdir != "" {
			rel = strings.TrimPrefix(rel, subdir)
		}
	}

	if rel == "" {
		rel = "/"
	}
	return rel
}

// RelativeToAbsolute converts a root-relative URL into an absolute one on
// the configured site. Absolute, protocol-relative, anchor, and
// alternative-scheme values pass through unchanged.
func RelativeToAbsolute(u, siteURL string, opts RelativeOptions) string {
	if u == "" || !strings.HasPrefix(u, "/") || strings.HasPrefix(u, "//") {
		return u
	}

	base := siteURL
	if opts.WithoutSubdirectory {
		// The value is relative to the site root, not the sub-directory.
		parsed, err := url.Parse(siteURL)
		if err == nil {
			parsed.Path = "/"
			base = parsed.String()
		}
	}

	return JoinURL(siteURL, base, u)
}
