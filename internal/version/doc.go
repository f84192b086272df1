// Package version exposes the build metadata stamped into every binary.
//
// Version, Commit, and BuildTime are injected via ldflags and default to
// local-build values. Full renders the line the updater parses when it
// probes an installed binary, so its format is part of the update contract.
package version
