package version

import "fmt"

var (
	// Version is the semantic version of the build, overridable via ldflags.
	Version = "1.0.0"
	// Commit is the short git SHA stamped at build time, "none" for local builds.
	Commit = "none"
	// BuildTime is the UTC build timestamp stamped at build time.
	BuildTime = "unknown"
)

// Short returns only the semantic version, the form the updater compares
// against the release manifest.
func Short() string {
	return Version
}

// Full renders the complete version line. The updater parses this exact
// format from `alarm-clockd version` output, so keep them in sync.
func Full() string {
	return fmt.Sprintf("version: %s, commit: %s, built at: %s", Version, Commit, BuildTime)
}
