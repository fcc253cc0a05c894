package utils

import "runtime/debug"

// Version describes the build that is running.
type Version struct {
	Version   string
	GoVersion string
}

// GetVersion resolves the running version from the embedded build info.
func GetVersion() (version Version) {
	// Defaults to master
	version.Version = "master"

	if info, ok := debug.ReadBuildInfo(); ok {
		for _, setting := range info.Settings {
			if setting.Key == "vcs.revision" {
				version.Version = setting.Value
			}

			// An uncommitted working tree is flagged on the revision.
			if setting.Key == "vcs.modified" && setting.Value == "true" {
				version.Version += " (modified)"
			}
		}

		version.GoVersion = info.GoVersion
	}

	return version
}
