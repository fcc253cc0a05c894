package urlutils

import (
	"errors"
	"fmt"
)

var (
	// ErrNoAPIVersions is returned when an api context is resolved without a
	// configured version table.
	ErrNoAPIVersions = errors.New("no API versions configured")

	// ErrUnknownAPIVersion is returned for a version or version type missing
	// from the table.
	ErrUnknownAPIVersion = errors.New("unknown API version")

	// ErrAPIVersionAlias is returned for a dangling or cyclic alias entry.
	ErrAPIVersionAlias = errors.New("unresolvable API version alias")
)

// APIPath maps a requested API version and type through the configured
// version table to a concrete path, e.g. /ghost/api/v3/content/. An alias
// entry is followed once; an alias pointing at another alias (which would
// permit cycles) or at nothing is a configuration error.
func (r *Resolver) APIPath(version, versionType string) (string, error) {
	if len(r.cfg.APIVersions) == 0 {
		return "", ErrNoAPIVersions
	}

	if version == "" {
		version = defaultAPIVersion
	}
	if versionType == "" {
		versionType = defaultAPIVersionType
	}

	entry, ok := r.cfg.APIVersions[version]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownAPIVersion, version)
	}

	if entry.Alias != "" {
		aliased, ok := r.cfg.APIVersions[entry.Alias]
		if !ok || aliased.Alias != "" {
			return "", fmt.Errorf("%w: %s -> %s", ErrAPIVersionAlias, version, entry.Alias)
		}
		entry = aliased
	}

	segment, ok := entry.Segments[versionType]
	if !ok {
		return "", fmt.Errorf("%w: %q has no %q type", ErrUnknownAPIVersion, version, versionType)
	}

	return r.cfg.APIPrefix + segment + "/", nil
}
