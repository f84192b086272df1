package instance

import "time"

// State is the position of an instance in its lifecycle.
type State int32

// Lifecycle states. Silent, LowNotification and HighNotification form the
// pre-fire ("scheduled") family; Dismissed and Missed are terminal.
const (
	// Silent means the instance is scheduled with no visible notification yet.
	Silent State = iota
	// LowNotification means a low-priority upcoming-alarm notification is shown.
	LowNotification
	// HighNotification means a high-priority imminent-alarm notification is shown.
	HighNotification
	// Fired means the alarm is currently ringing.
	Fired
	// Snoozed means the user postponed a ringing alarm to a later time.
	Snoozed
	// Dismissed means the occurrence was consumed by the user or timed out after ringing.
	Dismissed
	// Missed means the fire window elapsed while the device could not ring.
	Missed
)

// String returns a stable lowercase name for logs and CLI output.
func (s State) String() string {
	switch s {
	case Silent:
		return "silent"
	case LowNotification:
		return "low_notification"
	case HighNotification:
		return "high_notification"
	case Fired:
		return "fired"
	case Snoozed:
		return "snoozed"
	case Dismissed:
		return "dismissed"
	case Missed:
		return "missed"
	default:
		return "unknown"
	}
}

// IsScheduled reports whether the instance has not rung yet.
func (s State) IsScheduled() bool {
	return s == Silent || s == LowNotification || s == HighNotification
}

// IsTerminal reports whether the instance is inert and must not transition further.
func (s State) IsTerminal() bool {
	return s == Dismissed || s == Missed
}

// Instance represents one scheduled occurrence of an alarm.
type Instance struct {
	// ID is the stable identifier, unique within the store.
	ID int64
	// AlarmTime is when this occurrence fires. Millisecond precision is
	// significant: external status updates are matched on exact millisecond
	// equality.
	AlarmTime time.Time
	// State is the current lifecycle state.
	State State
}

// Clone returns a copy of the instance to avoid leaking internal references.
func (i *Instance) Clone() *Instance {
	if i == nil {
		return nil
	}

	cloned := *i

	return &cloned
}

// SameAlarmTime reports whether t matches the instance's alarm time with
// millisecond equality.
func (i *Instance) SameAlarmTime(t time.Time) bool {
	return i.AlarmTime.UnixMilli() == t.UnixMilli()
}
