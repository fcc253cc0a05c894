package urlutils

import (
	"regexp"
	"strings"
)

// knownPaths is the fixed table behind the NamedPath context.
var knownPaths = map[string]string{
	"home":        "/",
	"sitemap_xsl": "/sitemap.xsl",
}

var (
	// externalRefRegex matches protocol-relative references, anchors, and
	// alternative schemes such as mailto:. Those must never be re-joined
	// against the site base.
	externalRefRegex = regexp.MustCompile(`^(//|#|[a-zA-Z0-9-]+:)`)

	// schemeRegex strips everything up to and including the protocol
	// separator, leaving a schemeless // form.
	schemeRegex = regexp.MustCompile(`^.*?://`)
)

// CreateURL combines the site base with a path fragment. The base is the
// full site URL when absolute is requested, the bare sub-directory
// otherwise. The result always begins with a slash or a scheme.
func (r *Resolver) CreateURL(path string, absolute, secure, trailingSlash bool) string {
	if path == "" {
		path = "/"
	}

	var base string
	if absolute {
		base = r.SiteURL(secure)
	} else {
		base = r.Subdir()
	}

	if trailingSlash && !strings.HasSuffix(path, "/") {
		path += "/"
	}

	return r.URLJoin(base, path)
}

// URLFor resolves a context variant to a URL. Unrecognized or empty input
// degrades to the root path, callers cannot crash resolution from untrusted
// context data. The only error condition is a missing or broken API version
// table when an API context is requested.
func (r *Resolver) URLFor(ctx Context, absolute bool) (string, error) {
	urlPath := "/"
	var secure bool

	switch c := ctx.(type) {
	case RelativeURL:
		secure = c.Secure
		if c.Path != "" {
			urlPath = c.Path
		}

	case Image:
		secure = c.Secure
		if c.Path == "" {
			break
		}
		urlPath = c.Path

		// Only images under the static prefix (behind the sub-directory)
		// may be absolutized.
		imagePrefix := r.Subdir() + "/" + r.cfg.StaticImagePrefix
		if !strings.HasPrefix(c.Path, imagePrefix) {
			absolute = false
		}

		if absolute {
			// Strip the sub-directory, the site URL carries it already.
			urlPath = strings.TrimPrefix(urlPath, r.Subdir())
			urlPath = strings.TrimSuffix(r.SiteURL(secure), "/") + urlPath
		}

		// Image paths must never gain a trailing slash, so they bypass the
		// shared join step entirely.
		return urlPath, nil

	case Nav:
		secure = c.Secure
		if c.URL == "" {
			break
		}
		urlPath = c.URL

		// The hostname here includes the sub-directory and trailing slash,
		// e.g. "example.com/blog/".
		_, hostname, found := strings.Cut(r.SiteURL(secure), "//")
		if found && strings.Contains(urlPath, hostname) {
			before, after, _ := strings.Cut(urlPath, hostname)
			// A dot before the host means a sub-domain, mailto: a mail
			// link, and a leading colon after the host an explicit port.
			// Those pass through unchanged.
			if !strings.Contains(before, ".") && !strings.Contains(before, "mailto:") && !strings.HasPrefix(after, ":") {
				// Rebuild host-relative and force absolute so the join
				// reconstructs the link with the current scheme rather than
				// whatever the stored URL had.
				urlPath = r.URLJoin("/", after)
				absolute = true
			}
		}

	case Home:
		secure = c.Secure
		if absolute {
			urlPath = r.SiteURL(secure)
			if c.NoTrailingSlash {
				urlPath = strings.TrimSuffix(urlPath, "/")
			}
		}

	case Admin:
		secure = c.Secure
		if absolute {
			base := r.AdminURL()
			if base == "" {
				base = r.SiteURL(false)
			}
			urlPath = base + "ghost/"
		} else {
			urlPath = "/ghost/"
		}

	case API:
		secure = c.Secure
		apiPath, err := r.APIPath(c.Version, c.VersionType)
		if err != nil {
			return "", err
		}

		base := r.AdminURL()
		if base == "" {
			base = r.SiteURL(false)
		}
		if c.CORS && !strings.HasPrefix(base, "https:") {
			// Cross-origin callers must not assume a fixed scheme.
			base = schemeRegex.ReplaceAllString(base, "//")
		}

		if absolute {
			urlPath = strings.TrimSuffix(base, "/") + apiPath
		} else {
			urlPath = apiPath
		}

	case NamedPath:
		if p, ok := knownPaths[c.Name]; ok {
			urlPath = p
		}

	case nil:
		// Degrades to the root path.
	}

	// A path that already looks like an external, anchor, or
	// alternative-scheme reference is returned unchanged.
	if strings.Contains(urlPath, "://") || externalRefRegex.MatchString(urlPath) {
		return urlPath, nil
	}

	return r.CreateURL(urlPath, absolute, secure, false), nil
}

// ContextKind names a context variant, e.g. for metrics labels.
func ContextKind(ctx Context) string {
	switch ctx.(type) {
	case Home:
		return "home"
	case Admin:
		return "admin"
	case API:
		return "api"
	case Image:
		return "image"
	case Nav:
		return "nav"
	case NamedPath:
		return "named"
	case RelativeURL:
		return "relative"
	default:
		return "unrecognized"
	}
}
