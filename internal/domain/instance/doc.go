// Package instance contains core domain types for alarm reconciliation.
//
// It defines Instance (one scheduled occurrence of an alarm), the State
// machine values an instance moves through, and the closed TriggerEvent
// union describing why a reconciliation was requested.
package instance
