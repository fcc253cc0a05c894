// Package urlutils resolves logical, context-dependent references (a page,
// an image, a navigation link, an API endpoint) into concrete relative or
// absolute URLs for a site that may be served from a sub-directory, with an
// optional separately-hosted admin interface and a versioned API scheme.
//
// A Resolver is bound to one immutable Config at construction time and is
// safe for concurrent use. Every produced URL is well-formed, carries no
// duplicated path separators, and honors the configured sub-directory
// exactly once.
package urlutils

import (
	"time"
)

const (
	// DefaultStaticImagePrefix is where uploaded images live under the site root.
	DefaultStaticImagePrefix = "content/images"

	// DefaultAPIPrefix is the base mount point of the versioned API.
	DefaultAPIPrefix = "/ghost/api/"

	defaultAPIVersion     = "v0.1"
	defaultAPIVersionType = "content"
)

// PermalinkFunc expands date and slug tokens in a permalink pattern for a
// resource. It is supplied by the caller, the resolver never interprets
// permalink patterns itself.
type PermalinkFunc func(pattern string, resource any, timezone *time.Location) string

// APIVersionEntry is one row of the API version table: either an alias to
// another version name, or a mapping from version type (admin, content,
// members) to the path segment serving it. Exactly one of the two fields
// should be set.
type APIVersionEntry struct {
	Alias    string
	Segments map[string]string
}

// Config is the immutable configuration a Resolver is bound to.
//
// SiteURL is the single source of truth for the sub-directory: the
// sub-directory is derived from its path component on every call, never
// stored separately.
type Config struct {
	// SiteURL is the absolute URL the site is served from. It may include a
	// path (the sub-directory) and may or may not end in a slash.
	SiteURL string

	// AdminURL is the optional absolute URL of a separately hosted admin
	// interface. When empty, admin references resolve against SiteURL.
	AdminURL string

	// APIVersions maps version names to path segments, possibly through one
	// level of alias indirection. When nil, api references fail at the point
	// of use.
	APIVersions map[string]APIVersionEntry

	// ProtectedSlugs are reserved path segments. The sub-directory's last
	// segment is appended at read time, the slice itself is never mutated.
	ProtectedSlugs []string

	// StaticImagePrefix is the path prefix under which stored images are
	// eligible for absolutizing. Defaults to DefaultStaticImagePrefix.
	StaticImagePrefix string

	// APIPrefix is the base path the versioned API is mounted on. Defaults
	// to DefaultAPIPrefix.
	APIPrefix string

	// ReplacePermalink is the optional permalink-expansion hook.
	ReplacePermalink PermalinkFunc
}

func (c Config) withDefaults() Config {
	if c.StaticImagePrefix == "" {
		c.StaticImagePrefix = DefaultStaticImagePrefix
	}
	if c.APIPrefix == "" {
		c.APIPrefix = DefaultAPIPrefix
	}
	return c
}

// Resolver resolves context references against one configuration instance.
type Resolver struct {
	cfg Config
}

// New returns a Resolver bound to cfg.
func New(cfg Config) *Resolver {
	return &Resolver{cfg: cfg.withDefaults()}
}

// StaticImagePrefix returns the configured static image prefix.
func (r *Resolver) StaticImagePrefix() string {
	return r.cfg.StaticImagePrefix
}

// ReplacePermalink expands a permalink pattern for a resource through the
// caller-supplied hook. The pattern is returned untouched when no hook is
// configured.
func (r *Resolver) ReplacePermalink(pattern string, resource any, timezone *time.Location) string {
	if r.cfg.ReplacePermalink == nil {
		return pattern
	}
	return r.cfg.ReplacePermalink(pattern, resource, timezone)
}
