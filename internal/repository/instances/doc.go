// Package instances implements persistence for alarm instances.
//
// The FileRepository stores instances as JSON on disk and exposes a
// Repository interface the reconciler depends on. Every mutation goes
// through Apply, a per-id atomic read-modify-write, so concurrent
// reconciliation workers cannot lose updates.
package instances
