// Package reconciler recomputes alarm instance states against the current
// wall clock. It owns the state machine: firing due instances, marking
// stale ones missed or dismissed, and applying externally requested
// snooze/dismiss outcomes. Every operation is idempotent, so concurrent
// or repeated runs converge on the same store contents.
package reconciler
