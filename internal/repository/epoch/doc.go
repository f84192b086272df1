// Package epoch persists the global sequencing counter that orders
// externally visible effects of trigger events. The counter survives
// restarts and only ever moves forward.
package epoch
