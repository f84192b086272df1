// Package config defines settings used by the alarm-clockd binaries and
// provides helpers to load, validate and save them in YAML format.
//
// The Config type holds the daemon gRPC address, data file locations and the
// firing window used by instance reconciliation.
package config
