package router

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/alarm-clockd/internal/domain/instance"
	"github.com/oshokin/alarm-clockd/internal/service/dispatch"
)

// memoryEpochs is an in-memory epoch.Store.
type memoryEpochs struct {
	value atomic.Uint64
}

func (e *memoryEpochs) Increment(context.Context) (uint64, error) {
	return e.value.Add(1), nil
}

func (e *memoryEpochs) Current(context.Context) (uint64, error) {
	return e.value.Load(), nil
}

// recordingReconciler records reconciler calls. onStatusUpdate, when set,
// runs inside ApplyStatusUpdate; statusErr fails it.
type recordingReconciler struct {
	mu             sync.Mutex
	statusUpdates  []domain.ExternalStatusUpdate
	fixUps         int
	fixContextErrs []error
	onStatusUpdate func()
	statusErr      error
}

func (r *recordingReconciler) ApplyStatusUpdate(_ context.Context, event domain.ExternalStatusUpdate) error {
	if r.onStatusUpdate != nil {
		r.onStatusUpdate()
	}

	if r.statusErr != nil {
		return r.statusErr
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.statusUpdates = append(r.statusUpdates, event)

	return nil
}

func (r *recordingReconciler) FixInstances(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.fixUps++
	r.fixContextErrs = append(r.fixContextErrs, ctx.Err())

	return nil
}

func (r *recordingReconciler) fixContextErrors() []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]error(nil), r.fixContextErrs...)
}

func (r *recordingReconciler) counts() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.statusUpdates), r.fixUps
}

// stubRestorer reports a fixed restore outcome.
type stubRestorer struct {
	consumed bool
	calls    atomic.Int32
}

func (p *stubRestorer) ProcessRestoredData(context.Context) (bool, error) {
	p.calls.Add(1)

	return p.consumed, nil
}

// recordingShortcuts counts shortcut refreshes.
type recordingShortcuts struct {
	updates atomic.Int32
}

func (m *recordingShortcuts) Update(context.Context) error {
	m.updates.Add(1)

	return nil
}

// recordingNotifier counts notification operations.
type recordingNotifier struct {
	channelUpdates atomic.Int32
	clears         atomic.Int32
	rebuilds       atomic.Int32
}

func (n *recordingNotifier) UpdateChannels(context.Context) error {
	n.channelUpdates.Add(1)

	return nil
}

func (n *recordingNotifier) Clear(context.Context, int64) error {
	n.clears.Add(1)

	return nil
}

func (n *recordingNotifier) RebuildAll(context.Context) error {
	n.rebuilds.Add(1)

	return nil
}

type routerFixture struct {
	router      *Router
	wake        *dispatch.WakeSource
	coordinator *dispatch.Coordinator
	epochs      *memoryEpochs
	reconciler  *recordingReconciler
	restorer    *stubRestorer
	shortcuts   *recordingShortcuts
	notifier    *recordingNotifier
}

func newRouterFixture(restoreConsumed bool) *routerFixture {
	wake := dispatch.NewWakeSource("test")

	f := &routerFixture{
		wake:        wake,
		coordinator: dispatch.NewCoordinator(wake),
		epochs:      &memoryEpochs{},
		reconciler:  &recordingReconciler{},
		restorer:    &stubRestorer{consumed: restoreConsumed},
		shortcuts:   &recordingShortcuts{},
		notifier:    &recordingNotifier{},
	}

	f.router = NewRouter(f.epochs, f.reconciler, f.coordinator,
		f.restorer, f.shortcuts, f.notifier)

	return f
}

func (f *routerFixture) drain(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, f.coordinator.Wait(ctx))
}

// TestHandle_EpochMonotonicity verifies N events advance the epoch by
// exactly N, each return value strictly greater than the previous.
func TestHandle_EpochMonotonicity(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(false)

	events := []domain.TriggerEvent{
		domain.BootCompleted{},
		domain.TimeChanged{},
		domain.LocaleChanged{},
		domain.PackageReplaced{},
		domain.RestoreCompleted{},
	}

	var last uint64

	for _, event := range events {
		got, err := f.router.Handle(context.Background(), event)
		require.NoError(t, err)
		require.Equal(t, last+1, got)

		last = got
	}

	f.drain(t)

	current, err := f.epochs.Current(context.Background())
	require.NoError(t, err)
	require.Equal(t, uint64(len(events)), current)
}

// TestHandle_StatusUpdateIsSynchronous ensures the mutation is applied
// before Handle returns.
func TestHandle_StatusUpdateIsSynchronous(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(false)

	_, err := f.router.Handle(context.Background(), domain.ExternalStatusUpdate{
		AlarmTime: time.UnixMilli(1000),
		Status:    domain.StatusDismiss,
	})
	require.NoError(t, err)

	// Checked before draining: the synchronous phase already applied it.
	applied, _ := f.reconciler.counts()
	require.Equal(t, 1, applied)

	f.drain(t)
	require.Equal(t, int32(1), f.notifier.rebuilds.Load())

	// Status updates never trigger the full fix-up.
	_, fixUps := f.reconciler.counts()
	require.Zero(t, fixUps)
}

// TestHandle_Boot verifies the boot event fixes the store and refreshes
// shortcuts and notification channels.
func TestHandle_Boot(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(false)

	_, err := f.router.Handle(context.Background(), domain.BootCompleted{})
	require.NoError(t, err)
	f.drain(t)

	_, fixUps := f.reconciler.counts()
	require.Equal(t, 1, fixUps)
	require.Equal(t, int32(1), f.restorer.calls.Load())
	require.Equal(t, int32(1), f.shortcuts.updates.Load())
	require.Equal(t, int32(1), f.notifier.channelUpdates.Load())
}

// TestHandle_RestoreConsumedSkipsFixUp ensures freshly restored data
// suppresses the full fix-up.
func TestHandle_RestoreConsumedSkipsFixUp(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(true)

	for _, event := range []domain.TriggerEvent{
		domain.BootCompleted{},
		domain.TimeChanged{},
		domain.RestoreCompleted{},
	} {
		_, err := f.router.Handle(context.Background(), event)
		require.NoError(t, err)
	}

	f.drain(t)

	_, fixUps := f.reconciler.counts()
	require.Zero(t, fixUps)
	require.Equal(t, int32(3), f.restorer.calls.Load())
}

// TestHandle_LocaleChange verifies locale changes only touch localized
// surfaces, never instance state.
func TestHandle_LocaleChange(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(false)

	_, err := f.router.Handle(context.Background(), domain.LocaleChanged{})
	require.NoError(t, err)
	f.drain(t)

	_, fixUps := f.reconciler.counts()
	require.Zero(t, fixUps)
	require.Zero(t, f.restorer.calls.Load())
	require.Equal(t, int32(1), f.notifier.channelUpdates.Load())
	require.Equal(t, int32(1), f.notifier.rebuilds.Load())
}

// TestHandle_PackageReplaced verifies the package-replaced event fixes the
// store and refreshes shortcuts and notification channels without touching
// restored data.
func TestHandle_PackageReplaced(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(false)

	_, err := f.router.Handle(context.Background(), domain.PackageReplaced{})
	require.NoError(t, err)
	f.drain(t)

	_, fixUps := f.reconciler.counts()
	require.Equal(t, 1, fixUps)
	require.Zero(t, f.restorer.calls.Load())
	require.Equal(t, int32(1), f.shortcuts.updates.Load())
	require.Equal(t, int32(1), f.notifier.channelUpdates.Load())
}

// TestHandle_WakeHeldDuringSyncPhase ensures the wake reference is taken
// before the synchronous mutation runs and released once the async phase
// finished.
func TestHandle_WakeHeldDuringSyncPhase(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(false)

	var heldDuringUpdate atomic.Int32

	f.reconciler.onStatusUpdate = func() {
		heldDuringUpdate.Store(int32(f.wake.HeldCount()))
	}

	_, err := f.router.Handle(context.Background(), domain.ExternalStatusUpdate{
		AlarmTime: time.UnixMilli(1000),
		Status:    domain.StatusDismiss,
	})
	require.NoError(t, err)

	require.GreaterOrEqual(t, heldDuringUpdate.Load(), int32(1))

	f.drain(t)
	require.Zero(t, f.wake.HeldCount())
}

// TestHandle_StatusUpdateErrorReleasesWake ensures a failed synchronous
// mutation still releases the wake reference and schedules no async phase.
func TestHandle_StatusUpdateErrorReleasesWake(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(false)

	errStatus := errors.New("status update failed")
	f.reconciler.statusErr = errStatus

	_, err := f.router.Handle(context.Background(), domain.ExternalStatusUpdate{
		AlarmTime: time.UnixMilli(1000),
		Status:    domain.StatusDismiss,
	})
	require.ErrorIs(t, err, errStatus)

	f.drain(t)
	require.Zero(t, f.wake.HeldCount())
	require.Zero(t, f.notifier.rebuilds.Load())
}

// TestHandle_AsyncPhaseSurvivesCallerCancel checks the fix-up runs on a live
// context even when the publisher's request context is already canceled.
func TestHandle_AsyncPhaseSurvivesCallerCancel(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(false)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.router.Handle(ctx, domain.TimeChanged{})
	require.NoError(t, err)
	f.drain(t)

	_, fixUps := f.reconciler.counts()
	require.Equal(t, 1, fixUps)

	for _, ctxErr := range f.reconciler.fixContextErrors() {
		require.NoError(t, ctxErr)
	}
}

// TestHandle_TimeChange verifies the time-change event fixes the store and
// re-renders notifications without touching shortcuts.
func TestHandle_TimeChange(t *testing.T) {
	t.Parallel()

	f := newRouterFixture(false)

	_, err := f.router.Handle(context.Background(), domain.TimeChanged{})
	require.NoError(t, err)
	f.drain(t)

	_, fixUps := f.reconciler.counts()
	require.Equal(t, 1, fixUps)
	require.Equal(t, int32(1), f.notifier.rebuilds.Load())
	require.Zero(t, f.shortcuts.updates.Load())
}
