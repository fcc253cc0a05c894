package urlutils

import (
	"net/url"
	"regexp"
	"strings"
)

// multiSlashRegex matches runs of 2+ slashes that are not part of a
// protocol separator. The preceding character is captured so it can be
// restored on replacement.
var multiSlashRegex = regexp.MustCompile(`(^|[^:])/{2,}`)

// JoinURL joins URL or path fragments with single slashes. Protocol double
// slashes are preserved, a schemeless `//` lead-in survives the collapse
// pass, and one immediate repetition of the sub-directory carried by rootURL
// is deduplicated.
func JoinURL(rootURL string, parts ...string) string {
	// A leading empty fragment would otherwise conjure a rooted path out of
	// nothing.
	if len(parts) > 0 && parts[0] == "" {
		parts = parts[1:]
	}

	prefixDoubleSlash := len(parts) > 0 && strings.HasPrefix(parts[0], "//")

	joined := strings.Join(parts, "/")
	joined = multiSlashRegex.ReplaceAllString(joined, "$1/")

	// The collapse pass reduces a schemeless lead-in to a single slash.
	if prefixDoubleSlash && strings.HasPrefix(joined, "/") && !strings.HasPrefix(joined, "//") {
		joined = "/" + joined
	}

	return deduplicateSubdirectory(joined, rootURL)
}

// URLJoin joins fragments using the resolver's site URL as the
// deduplication root.
func (r *Resolver) URLJoin(parts ...string) string {
	return JoinURL(r.cfg.SiteURL, parts...)
}

// deduplicateSubdirectory collapses the first immediate repetition of
// rootURL's sub-directory inside u. The match is anchored on a separator or
// the start of the string so that a hostname label equal to the
// sub-directory is never touched.
func deduplicateSubdirectory(u, rootURL string) string {
	if rootURL == "" {
		return u
	}
	if !strings.HasSuffix(rootURL, "/") {
		rootURL += "/"
	}

	parsedRoot, err := url.Parse(rootURL)
	if err != nil || parsedRoot.Path == "" || parsedRoot.Path == "/" {
		return u
	}

	subdir := strings.Trim(parsedRoot.Path, "/")
	quoted := regexp.QuoteMeta(subdir)
	subdirRegex := regexp.MustCompile(`(^|/)` + quoted + `/` + quoted + `(/|$)`)

	loc := subdirRegex.FindStringSubmatchIndex(u)
	if loc == nil {
		return u
	}

	// loc[2:4] is the leading separator, loc[4:6] the trailing one.
	return u[:loc[0]] + u[loc[2]:loc[3]] + subdir + u[loc[4]:loc[5]] + u[loc[1]:]
}
