// Package router maps trigger events to reconciliation work. Each event is
// handled in two phases: a serialized synchronous phase that advances the
// global epoch and applies any status-update mutation, then an asynchronous
// phase scheduled through the dispatch coordinator that performs the
// heavier restore check, full-store fix-up and collaborator refreshes.
package router
