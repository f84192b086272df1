package instance

import "time"

// ExternalStatus is the requested outcome carried by a power-off-alarm style
// status update. The numeric values are part of the external contract.
type ExternalStatus int32

const (
	// StatusSnooze asks to postpone a ringing alarm to SnoozeTime.
	StatusSnooze ExternalStatus = 2
	// StatusDismiss asks to dismiss a ringing alarm.
	StatusDismiss ExternalStatus = 3
)

// String returns a stable lowercase name for logs.
func (s ExternalStatus) String() string {
	switch s {
	case StatusSnooze:
		return "snooze"
	case StatusDismiss:
		return "dismiss"
	default:
		return "unknown"
	}
}

// TriggerEvent describes why a reconciliation was requested. The union is
// closed: every variant lives in this package and routing switches over it
// exhaustively, so an unknown event is an error instead of a silent no-op.
type TriggerEvent interface {
	// Kind returns a stable name for logs and metrics.
	Kind() string

	isTriggerEvent()
}

// BootCompleted is delivered once after the device finished booting.
type BootCompleted struct{}

// TimeChanged is delivered after a wall-clock or timezone adjustment.
type TimeChanged struct{}

// LocaleChanged is delivered after the device locale changed.
type LocaleChanged struct{}

// PackageReplaced is delivered after the application was upgraded in place.
type PackageReplaced struct{}

// RestoreCompleted is delivered after a backup restore finished writing data.
type RestoreCompleted struct{}

// ExternalStatusUpdate carries a vendor power-off-alarm request targeting the
// instance whose alarm time equals AlarmTime exactly.
type ExternalStatusUpdate struct {
	// AlarmTime identifies the target instance by millisecond equality.
	AlarmTime time.Time
	// Status is the requested outcome.
	Status ExternalStatus
	// SnoozeTime is the requested new alarm time; only meaningful for
	// StatusSnooze and only honored when strictly in the future.
	SnoozeTime time.Time
}

// Kind returns the event name.
func (BootCompleted) Kind() string { return "boot_completed" }

// Kind returns the event name.
func (TimeChanged) Kind() string { return "time_changed" }

// Kind returns the event name.
func (LocaleChanged) Kind() string { return "locale_changed" }

// Kind returns the event name.
func (PackageReplaced) Kind() string { return "package_replaced" }

// Kind returns the event name.
func (RestoreCompleted) Kind() string { return "restore_completed" }

// Kind returns the event name.
func (ExternalStatusUpdate) Kind() string { return "external_status_update" }

func (BootCompleted) isTriggerEvent()        {}
func (TimeChanged) isTriggerEvent()          {}
func (LocaleChanged) isTriggerEvent()        {}
func (PackageReplaced) isTriggerEvent()      {}
func (RestoreCompleted) isTriggerEvent()     {}
func (ExternalStatusUpdate) isTriggerEvent() {}
