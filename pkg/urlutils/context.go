package urlutils

// Context is the tagged description of what kind of reference URLFor is
// being asked to resolve. The variant set is closed: a nil Context or an
// unknown NamedPath name is the "unrecognized" arm and resolves to the root
// path rather than failing.
type Context interface {
	context()
}

// Home is the site root. NoTrailingSlash suppresses the trailing slash on
// absolute home URLs, relative home URLs always keep it.
type Home struct {
	NoTrailingSlash bool
	Secure          bool
}

// Admin is the admin interface mount point.
type Admin struct {
	Secure bool
}

// API is a versioned API endpoint. Version defaults to v0.1 and VersionType
// to content. CORS strips the scheme down to a schemeless // form so
// cross-origin callers are not pinned to a scheme.
type API struct {
	Version     string
	VersionType string
	CORS        bool
	Secure      bool
}

// Image is a stored image path. Paths outside the static image prefix are
// never absolutized, regardless of what the caller requested.
type Image struct {
	Path   string
	Secure bool
}

// Nav is a stored navigation link. Links on the configured site host are
// rebuilt against the current site settings so a scheme mismatch between
// configuration and stored data heals itself.
type Nav struct {
	URL    string
	Secure bool
}

// NamedPath is a fixed well-known path, e.g. "home" or "sitemap_xsl".
// Unknown names resolve to the root path.
type NamedPath struct {
	Name string
}

// RelativeURL is an arbitrary relative path handed through the shared
// normalization unchanged.
type RelativeURL struct {
	Path   string
	Secure bool
}

func (Home) context()        {}
func (Admin) context()       {}
func (API) context()         {}
func (Image) context()       {}
func (Nav) context()         {}
func (NamedPath) context()   {}
func (RelativeURL) context() {}
