package router

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/multierr"
	"golang.org/x/sync/singleflight"

	domain "github.com/oshokin/alarm-clockd/internal/domain/instance"
	"github.com/oshokin/alarm-clockd/internal/logger"
	"github.com/oshokin/alarm-clockd/internal/repository/epoch"
	"github.com/oshokin/alarm-clockd/internal/service/dispatch"
	"github.com/oshokin/alarm-clockd/internal/service/notify"
	"github.com/oshokin/alarm-clockd/internal/service/restore"
	"github.com/oshokin/alarm-clockd/internal/service/shortcuts"
)

// fixUpKey coalesces concurrent full-store fix-ups into one run.
const fixUpKey = "fix-instances"

// ErrUnknownEvent is returned for a trigger event the router has no
// handling for. The event union is closed, so this indicates a bug.
var ErrUnknownEvent = errors.New("unknown trigger event")

// Reconciler is the state-reconciliation surface the router drives.
type Reconciler interface {
	// ApplyStatusUpdate applies an external snooze/dismiss request.
	ApplyStatusUpdate(ctx context.Context, event domain.ExternalStatusUpdate) error
	// FixInstances recomputes every instance against the current time.
	FixInstances(ctx context.Context) error
}

// Router turns trigger events into reconciliation and collaborator calls.
type Router struct {
	// mu serializes the synchronous phase of event handling, keeping epoch
	// increments strictly ordered relative to synchronous mutations.
	mu sync.Mutex
	// epochs is the persistent global epoch counter.
	epochs epoch.Store
	// reconciler owns the instance state machine.
	reconciler Reconciler
	// coordinator holds the wake source for the event and runs its
	// asynchronous phase.
	coordinator *dispatch.Coordinator
	// restorer consumes restored alarm data when present.
	restorer restore.Processor
	// shortcuts refreshes launcher shortcuts.
	shortcuts shortcuts.Manager
	// notifications maintains notification channels and contents.
	notifications notify.Manager
	// fixUps coalesces concurrent full-store fix-ups.
	fixUps singleflight.Group
}

// NewRouter wires the router's collaborators together.
func NewRouter(
	epochs epoch.Store,
	reconciler Reconciler,
	coordinator *dispatch.Coordinator,
	restorer restore.Processor,
	shortcutManager shortcuts.Manager,
	notificationManager notify.Manager,
) *Router {
	return &Router{
		epochs:        epochs,
		reconciler:    reconciler,
		coordinator:   coordinator,
		restorer:      restorer,
		shortcuts:     shortcutManager,
		notifications: notificationManager,
	}
}

// Handle processes one trigger event and returns the epoch assigned to it.
// The epoch is incremented and any status-update mutation applied before
// this method returns; the heavier reconciliation continues asynchronously
// under the dispatch coordinator.
func (r *Router) Handle(ctx context.Context, event domain.TriggerEvent) (uint64, error) {
	ctx = logger.WithKV(ctx, "event", event.Kind())
	ctx = logger.WithKV(ctx, "event_id", uuid.NewString())

	// The wake reference must span the whole event: the host may not
	// suspend between the epoch bump and the async reconciliation.
	token := r.coordinator.Begin(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	epochValue, err := r.epochs.Increment(ctx)
	if err != nil {
		token.Finish()

		return 0, fmt.Errorf("increment epoch: %w", err)
	}

	logger.FromContext(ctx).Infof("handling %s event, epoch %d", event.Kind(), epochValue)

	switch ev := event.(type) {
	case domain.BootCompleted:
		r.coordinator.GoWithToken(ctx, token, event.Kind(), r.afterBoot)
	case domain.TimeChanged:
		r.coordinator.GoWithToken(ctx, token, event.Kind(), r.afterTimeChange)
	case domain.LocaleChanged:
		r.coordinator.GoWithToken(ctx, token, event.Kind(), r.afterLocaleChange)
	case domain.PackageReplaced:
		r.coordinator.GoWithToken(ctx, token, event.Kind(), r.afterPackageReplace)
	case domain.RestoreCompleted:
		r.coordinator.GoWithToken(ctx, token, event.Kind(), r.afterRestore)
	case domain.ExternalStatusUpdate:
		if err = r.reconciler.ApplyStatusUpdate(ctx, ev); err != nil {
			token.Finish()

			return epochValue, fmt.Errorf("apply status update: %w", err)
		}

		r.coordinator.GoWithToken(ctx, token, event.Kind(), r.notifications.RebuildAll)
	default:
		token.Finish()

		return epochValue, fmt.Errorf("%w: %s", ErrUnknownEvent, event.Kind())
	}

	return epochValue, nil
}

// afterBoot restores pending data, fixes the store when nothing was
// restored, and refreshes shortcuts and notification channels.
func (r *Router) afterBoot(ctx context.Context) error {
	err := r.restoreThenFix(ctx)

	return multierr.Combine(
		err,
		r.shortcuts.Update(ctx),
		r.notifications.UpdateChannels(ctx),
	)
}

// afterTimeChange restores pending data, fixes the store when nothing was
// restored, and re-renders notifications against the new clock.
func (r *Router) afterTimeChange(ctx context.Context) error {
	return multierr.Combine(
		r.restoreThenFix(ctx),
		r.notifications.RebuildAll(ctx),
	)
}

// afterLocaleChange refreshes localized surfaces only; instance states do
// not depend on locale.
func (r *Router) afterLocaleChange(ctx context.Context) error {
	return multierr.Combine(
		r.notifications.UpdateChannels(ctx),
		r.notifications.RebuildAll(ctx),
	)
}

// afterPackageReplace fixes the store and refreshes shortcuts and channels,
// both of which may reference resources from the replaced package.
func (r *Router) afterPackageReplace(ctx context.Context) error {
	return multierr.Combine(
		r.fixUp(ctx),
		r.shortcuts.Update(ctx),
		r.notifications.UpdateChannels(ctx),
	)
}

// afterRestore consumes the restored data; the fix-up only runs when
// nothing was consumed, since freshly restored state is authoritative.
func (r *Router) afterRestore(ctx context.Context) error {
	return r.restoreThenFix(ctx)
}

// restoreThenFix consumes pending restored data and skips the fix-up when
// data was restored this cycle. A restore failure does not block the
// fix-up: stale state is worse than a retried restore.
func (r *Router) restoreThenFix(ctx context.Context) error {
	consumed, err := r.restorer.ProcessRestoredData(ctx)
	if err != nil {
		logger.FromContext(ctx).Errorf("processing restored data: %v", err)
	}

	if consumed {
		return nil
	}

	return multierr.Append(err, r.fixUp(ctx))
}

// fixUp runs the full-store fix-up, coalescing concurrent requests into a
// single run. Sharing the outcome is safe because the fix-up is idempotent.
func (r *Router) fixUp(ctx context.Context) error {
	_, err, _ := r.fixUps.Do(fixUpKey, func() (any, error) {
		return nil, r.reconciler.FixInstances(ctx)
	})

	return err
}
