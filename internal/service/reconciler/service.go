package reconciler

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/multierr"

	"github.com/oshokin/alarm-clockd/internal/config"
	domain "github.com/oshokin/alarm-clockd/internal/domain/instance"
	"github.com/oshokin/alarm-clockd/internal/logger"
	"github.com/oshokin/alarm-clockd/internal/repository/instances"
	"github.com/oshokin/alarm-clockd/internal/service/notify"
)

// Service reconciles persisted alarm instances with the current time and
// with externally requested status changes.
type Service struct {
	// store is the durable instance store.
	store instances.Repository
	// notifications receives clear requests when a firing is snoozed.
	notifications notify.Manager
	// window is how long a firing stays actionable after its alarm time.
	window time.Duration
	// now supplies the current time; injectable for tests.
	now func() time.Time
}

// Option customizes the service.
type Option func(*Service)

// WithWindow overrides the firing window.
func WithWindow(window time.Duration) Option {
	return func(s *Service) {
		s.window = window
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a reconciler over the given store and notification manager.
func NewService(store instances.Repository, notifications notify.Manager, opts ...Option) *Service {
	s := &Service{
		store:         store,
		notifications: notifications,
		window:        config.DefaultFiringWindow,
		now:           time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ApplyStatusUpdate applies an external snooze/dismiss request to the single
// instance whose alarm time matches the event's target time to the
// millisecond. Zero or multiple matches make the event a no-op: an ambiguous
// match is never resolved by picking one arbitrarily.
func (s *Service) ApplyStatusUpdate(ctx context.Context, event domain.ExternalStatusUpdate) error {
	log := logger.FromContext(ctx)

	all, err := s.store.List(ctx, instances.Filter{})
	if err != nil {
		return fmt.Errorf("list instances: %w", err)
	}

	var matched *domain.Instance

	for _, ins := range all {
		if !ins.SameAlarmTime(event.AlarmTime) {
			continue
		}

		if matched != nil {
			log.Warnf("ambiguous %s update for alarm time %d, ignoring",
				event.Status, event.AlarmTime.UnixMilli())

			return nil
		}

		matched = ins
	}

	if matched == nil {
		log.Warnf("no instance matches %s update for alarm time %d, ignoring",
			event.Status, event.AlarmTime.UnixMilli())

		return nil
	}

	switch event.Status {
	case domain.StatusDismiss:
		return s.dismiss(ctx, matched.ID)
	case domain.StatusSnooze:
		return s.snooze(ctx, matched.ID, event.SnoozeTime)
	default:
		log.Warnf("unknown status %d for instance %d, ignoring", event.Status, matched.ID)

		return nil
	}
}

// dismiss moves a ringing instance to the dismissed terminal state.
func (s *Service) dismiss(ctx context.Context, id int64) error {
	err := s.store.Apply(ctx, id, func(ins *domain.Instance) (bool, error) {
		if ins.State != domain.Fired {
			logger.FromContext(ctx).Warnf("instance %d is %s, not fired, ignoring dismiss", id, ins.State)

			return false, nil
		}

		ins.State = domain.Dismissed

		return true, nil
	})
	if err != nil {
		return fmt.Errorf("dismiss instance %d: %w", id, err)
	}

	logger.FromContext(ctx).Infof("instance %d dismissed", id)

	return nil
}

// snooze postpones a ringing instance to snoozeTime and clears its
// notification. Requests targeting the past are ignored.
func (s *Service) snooze(ctx context.Context, id int64, snoozeTime time.Time) error {
	log := logger.FromContext(ctx)

	if !snoozeTime.After(s.now()) {
		log.Warnf("snooze time %d for instance %d is not in the future, ignoring",
			snoozeTime.UnixMilli(), id)

		return nil
	}

	snoozed := false

	err := s.store.Apply(ctx, id, func(ins *domain.Instance) (bool, error) {
		if ins.State != domain.Fired {
			log.Warnf("instance %d is %s, not fired, ignoring snooze", id, ins.State)

			return false, nil
		}

		ins.State = domain.Snoozed
		ins.AlarmTime = snoozeTime
		snoozed = true

		return true, nil
	})
	if err != nil {
		return fmt.Errorf("snooze instance %d: %w", id, err)
	}

	if !snoozed {
		return nil
	}

	log.Infof("instance %d snoozed until %d", id, snoozeTime.UnixMilli())

	if err = s.notifications.Clear(ctx, id); err != nil {
		return fmt.Errorf("clear notification for instance %d: %w", id, err)
	}

	return nil
}

// FixInstances recomputes the state of every persisted instance against the
// current time. Running it again on an unchanged store and clock mutates
// nothing. A failure on one instance does not stop the others; all failures
// are combined into the returned error.
func (s *Service) FixInstances(ctx context.Context) error {
	all, err := s.store.List(ctx, instances.Filter{})
	if err != nil {
		return fmt.Errorf("list instances: %w", err)
	}

	var (
		now      = s.now()
		combined error
	)

	for _, ins := range all {
		if s.decide(ins, now) == ins.State {
			continue
		}

		var (
			changed bool
			target  domain.State
		)

		applyErr := s.store.Apply(ctx, ins.ID, func(current *domain.Instance) (bool, error) {
			// Recompute under the store lock: the instance may have raced
			// with another event since the snapshot.
			next := s.decide(current, now)
			if next == current.State {
				return false, nil
			}

			current.State = next
			changed, target = true, next

			return true, nil
		})
		if applyErr != nil {
			combined = multierr.Append(combined,
				fmt.Errorf("fix instance %d: %w", ins.ID, applyErr))

			continue
		}

		if changed {
			logger.FromContext(ctx).Infof("instance %d fixed to %s", ins.ID, target)
		}
	}

	return combined
}

// decide returns the state the instance should be in at the given time.
func (s *Service) decide(ins *domain.Instance, now time.Time) domain.State {
	if ins.State.IsTerminal() {
		return ins.State
	}

	elapsed := now.After(ins.AlarmTime.Add(s.window))

	switch {
	case ins.State == domain.Fired && elapsed:
		// The ringing went unanswered for the whole window.
		return domain.Dismissed
	case ins.State == domain.Fired:
		return domain.Fired
	case elapsed:
		// The fire time passed while nobody could ring, most likely a
		// powered-off device or a clock jump forward.
		return domain.Missed
	case !ins.AlarmTime.After(now):
		return domain.Fired
	default:
		return ins.State
	}
}
