// Package packager prepares the update manifest consumed by the updater.
//
// It computes checksums for the deployment artifacts and persists connection
// settings. The resulting YAML is uploaded to the update folder served to
// devices.
package packager
