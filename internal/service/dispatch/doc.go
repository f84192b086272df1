// Package dispatch coordinates the asynchronous portion of event handling.
// Every async unit runs under a completion token that holds the shared
// wake source, so the host is never allowed to suspend while reconciliation
// work is still in flight, and the token is finished exactly once on every
// exit path including panics.
package dispatch
