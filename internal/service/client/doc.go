// Package client implements the alarmctl operations.
//
// Each operation connects to the event daemon, performs one RPC (publish an
// event, list, schedule or unschedule an instance) and logs the result.
package client
