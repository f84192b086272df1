// Package events implements the gRPC transport for the system-event service.
//
// It adapts protobuf messages to domain trigger events and instances, and
// exposes a server that calls into the event router and instance store.
package events
