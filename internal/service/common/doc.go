// Package common holds helpers shared by several services.
//
// It provides a lightweight gRPC client wrapper around the system-event
// daemon with per-call timeouts.
//
//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common
