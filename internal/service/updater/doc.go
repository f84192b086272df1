// Package updater downloads and applies updates from the update server.
//
// It validates local files against checksums from a remote manifest, downloads
// required artifacts to a temporary directory, atomically applies updates,
// restarts the daemon and publishes a package-replaced event to it.
package updater
