package reconciler

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	domain "github.com/oshokin/alarm-clockd/internal/domain/instance"
	"github.com/oshokin/alarm-clockd/internal/logger"
	"github.com/oshokin/alarm-clockd/internal/repository/instances"
)

var errTestPersist = errors.New("test persist error")

// memoryStore is an in-memory instances.Repository for tests. failIDs lists
// instance ids whose Apply calls fail with errTestPersist.
type memoryStore struct {
	mu      sync.Mutex
	byID    map[int64]*domain.Instance
	failIDs map[int64]bool
}

func newMemoryStore(all ...*domain.Instance) *memoryStore {
	s := &memoryStore{
		byID:    make(map[int64]*domain.Instance, len(all)),
		failIDs: make(map[int64]bool),
	}

	for _, ins := range all {
		s.byID[ins.ID] = ins.Clone()
	}

	return s
}

func (s *memoryStore) List(_ context.Context, filter instances.Filter) ([]*domain.Instance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make([]*domain.Instance, 0, len(s.byID))

	for _, ins := range s.byID {
		if filter.Matches(ins) {
			result = append(result, ins.Clone())
		}
	}

	return result, nil
}

func (s *memoryStore) Create(_ context.Context, ins *domain.Instance) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.byID[ins.ID] = ins.Clone()

	return nil
}

func (s *memoryStore) Apply(_ context.Context, id int64, mutate func(*domain.Instance) (bool, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failIDs[id] {
		return errTestPersist
	}

	existing, ok := s.byID[id]
	if !ok {
		return instances.ErrNotFound
	}

	updated := existing.Clone()

	changed, err := mutate(updated)
	if err != nil {
		return err
	}

	if changed {
		s.byID[id] = updated
	}

	return nil
}

func (s *memoryStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return instances.ErrNotFound
	}

	delete(s.byID, id)

	return nil
}

// recordingNotifier records cleared instance ids.
type recordingNotifier struct {
	mu      sync.Mutex
	cleared []int64
}

func (n *recordingNotifier) UpdateChannels(context.Context) error { return nil }

func (n *recordingNotifier) Clear(_ context.Context, instanceID int64) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.cleared = append(n.cleared, instanceID)

	return nil
}

func (n *recordingNotifier) RebuildAll(context.Context) error { return nil }

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func snapshot(t *testing.T, store instances.Repository) map[int64]domain.Instance {
	t.Helper()

	all, err := store.List(context.Background(), instances.Filter{})
	require.NoError(t, err)

	result := make(map[int64]domain.Instance, len(all))
	for _, ins := range all {
		result[ins.ID] = *ins
	}

	return result
}

// racingStore flips the instance to raceState just before Apply delegates,
// imitating a concurrent event winning the race against the snapshot.
type racingStore struct {
	*memoryStore
	raceState domain.State
}

func (s *racingStore) Apply(ctx context.Context, id int64, mutate func(*domain.Instance) (bool, error)) error {
	s.mu.Lock()

	if existing, ok := s.byID[id]; ok {
		existing.State = s.raceState
	}

	s.mu.Unlock()

	return s.memoryStore.Apply(ctx, id, mutate)
}

// TestFixInstances_RacedInstanceNotReported ensures an instance another
// event moved between the snapshot and the locked recompute is neither
// touched again nor reported as fixed.
func TestFixInstances_RacedInstanceNotReported(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logger.ToContext(context.Background(), zap.New(core).Sugar())

	// Fired past the window: the snapshot decides Dismissed, but the race
	// already dismissed it.
	store := &racingStore{
		memoryStore: newMemoryStore(&domain.Instance{
			ID:        1,
			AlarmTime: time.UnixMilli(1000),
			State:     domain.Fired,
		}),
		raceState: domain.Dismissed,
	}
	svc := NewService(store, &recordingNotifier{},
		WithWindow(5*time.Minute),
		WithClock(fixedClock(time.UnixMilli(1000).Add(10*time.Minute))))

	require.NoError(t, svc.FixInstances(ctx))
	require.Equal(t, domain.Dismissed, snapshot(t, store)[1].State)
	require.Empty(t, logs.FilterMessageSnippet("fixed").All())
}

// TestApplyStatusUpdate_Dismiss covers the straight dismiss path: a fired
// instance whose alarm time matches exactly becomes dismissed.
func TestApplyStatusUpdate_Dismiss(t *testing.T) {
	t.Parallel()

	store := newMemoryStore(&domain.Instance{
		ID:        1,
		AlarmTime: time.UnixMilli(1000),
		State:     domain.Fired,
	})
	svc := NewService(store, &recordingNotifier{}, WithClock(fixedClock(time.UnixMilli(1500))))

	err := svc.ApplyStatusUpdate(context.Background(), domain.ExternalStatusUpdate{
		AlarmTime: time.UnixMilli(1000),
		Status:    domain.StatusDismiss,
	})
	require.NoError(t, err)
	require.Equal(t, domain.Dismissed, snapshot(t, store)[1].State)
}

// TestApplyStatusUpdate_Snooze verifies a valid snooze moves the alarm time
// and clears the pending notification.
func TestApplyStatusUpdate_Snooze(t *testing.T) {
	t.Parallel()

	store := newMemoryStore(&domain.Instance{
		ID:        1,
		AlarmTime: time.UnixMilli(1000),
		State:     domain.Fired,
	})
	notifier := &recordingNotifier{}
	svc := NewService(store, notifier, WithClock(fixedClock(time.UnixMilli(1500))))

	err := svc.ApplyStatusUpdate(context.Background(), domain.ExternalStatusUpdate{
		AlarmTime:  time.UnixMilli(1000),
		Status:     domain.StatusSnooze,
		SnoozeTime: time.UnixMilli(2000),
	})
	require.NoError(t, err)

	got := snapshot(t, store)[1]
	require.Equal(t, domain.Snoozed, got.State)
	require.Equal(t, int64(2000), got.AlarmTime.UnixMilli())
	require.Equal(t, []int64{1}, notifier.cleared)
}

// TestApplyStatusUpdate_SnoozeInPast ensures a snooze targeting the past
// leaves the instance unchanged.
func TestApplyStatusUpdate_SnoozeInPast(t *testing.T) {
	t.Parallel()

	store := newMemoryStore(&domain.Instance{
		ID:        1,
		AlarmTime: time.UnixMilli(1000),
		State:     domain.Fired,
	})
	notifier := &recordingNotifier{}
	svc := NewService(store, notifier, WithClock(fixedClock(time.UnixMilli(600))))

	before := snapshot(t, store)

	err := svc.ApplyStatusUpdate(context.Background(), domain.ExternalStatusUpdate{
		AlarmTime:  time.UnixMilli(1000),
		Status:     domain.StatusSnooze,
		SnoozeTime: time.UnixMilli(500),
	})
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(before, snapshot(t, store)))
	require.Empty(t, notifier.cleared)
}

// TestApplyStatusUpdate_AmbiguousMatch verifies the exact-match safety rule:
// with zero or multiple instances at the target time the store is unchanged.
func TestApplyStatusUpdate_AmbiguousMatch(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		store *memoryStore
	}{
		{
			name: "no match",
			store: newMemoryStore(&domain.Instance{
				ID:        1,
				AlarmTime: time.UnixMilli(2000),
				State:     domain.Fired,
			}),
		},
		{
			name: "two matches",
			store: newMemoryStore(
				&domain.Instance{ID: 1, AlarmTime: time.UnixMilli(1000), State: domain.Fired},
				&domain.Instance{ID: 2, AlarmTime: time.UnixMilli(1000), State: domain.Fired},
			),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := NewService(tc.store, &recordingNotifier{},
				WithClock(fixedClock(time.UnixMilli(1500))))

			before := snapshot(t, tc.store)

			err := svc.ApplyStatusUpdate(context.Background(), domain.ExternalStatusUpdate{
				AlarmTime: time.UnixMilli(1000),
				Status:    domain.StatusDismiss,
			})
			require.NoError(t, err)
			require.Empty(t, cmp.Diff(before, snapshot(t, tc.store)))
		})
	}
}

// TestApplyStatusUpdate_NotFired ensures status updates only act on ringing
// instances.
func TestApplyStatusUpdate_NotFired(t *testing.T) {
	t.Parallel()

	store := newMemoryStore(&domain.Instance{
		ID:        1,
		AlarmTime: time.UnixMilli(1000),
		State:     domain.Silent,
	})
	svc := NewService(store, &recordingNotifier{}, WithClock(fixedClock(time.UnixMilli(500))))

	before := snapshot(t, store)

	err := svc.ApplyStatusUpdate(context.Background(), domain.ExternalStatusUpdate{
		AlarmTime: time.UnixMilli(1000),
		Status:    domain.StatusDismiss,
	})
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(before, snapshot(t, store)))
}

// TestFixInstances_Transitions walks the fix-up decision table.
func TestFixInstances_Transitions(t *testing.T) {
	t.Parallel()

	var (
		now    = time.UnixMilli(10 * 60 * 1000) // 10 minutes in
		window = 5 * time.Minute
	)

	testCases := []struct {
		name  string
		in    domain.Instance
		want  domain.State
		atime time.Time
	}{
		{
			name:  "due scheduled fires",
			atime: now.Add(-time.Minute),
			in:    domain.Instance{State: domain.HighNotification},
			want:  domain.Fired,
		},
		{
			name:  "due snoozed fires",
			atime: now.Add(-time.Minute),
			in:    domain.Instance{State: domain.Snoozed},
			want:  domain.Fired,
		},
		{
			name:  "future scheduled untouched",
			atime: now.Add(time.Hour),
			in:    domain.Instance{State: domain.Silent},
			want:  domain.Silent,
		},
		{
			name:  "stale scheduled missed",
			atime: now.Add(-2 * time.Hour),
			in:    domain.Instance{State: domain.LowNotification},
			want:  domain.Missed,
		},
		{
			name:  "stale fired dismissed",
			atime: now.Add(-2 * time.Hour),
			in:    domain.Instance{State: domain.Fired},
			want:  domain.Dismissed,
		},
		{
			name:  "ringing inside window untouched",
			atime: now.Add(-time.Minute),
			in:    domain.Instance{State: domain.Fired},
			want:  domain.Fired,
		},
		{
			name:  "terminal untouched",
			atime: now.Add(-2 * time.Hour),
			in:    domain.Instance{State: domain.Dismissed},
			want:  domain.Dismissed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ins := tc.in
			ins.ID = 1
			ins.AlarmTime = tc.atime

			store := newMemoryStore(&ins)
			svc := NewService(store, &recordingNotifier{},
				WithWindow(window), WithClock(fixedClock(now)))

			require.NoError(t, svc.FixInstances(context.Background()))
			require.Equal(t, tc.want, snapshot(t, store)[1].State)
		})
	}
}

// TestFixInstances_Idempotent runs the fix-up twice on a mixed store:
// the second pass must change nothing.
func TestFixInstances_Idempotent(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(3 * 60 * 60 * 1000)
	store := newMemoryStore(
		&domain.Instance{ID: 1, AlarmTime: now.Add(-2 * time.Hour), State: domain.Silent},
		&domain.Instance{ID: 2, AlarmTime: now.Add(-time.Minute), State: domain.HighNotification},
		&domain.Instance{ID: 3, AlarmTime: now.Add(time.Hour), State: domain.Silent},
		&domain.Instance{ID: 4, AlarmTime: now.Add(-2 * time.Hour), State: domain.Fired},
	)
	svc := NewService(store, &recordingNotifier{}, WithClock(fixedClock(now)))

	require.NoError(t, svc.FixInstances(context.Background()))
	first := snapshot(t, store)

	require.NoError(t, svc.FixInstances(context.Background()))
	require.Empty(t, cmp.Diff(first, snapshot(t, store)))
}

// TestFixInstances_PartialFailure verifies a persistence failure on one
// instance does not stop the others from being fixed.
func TestFixInstances_PartialFailure(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(3 * 60 * 60 * 1000)
	store := newMemoryStore(
		&domain.Instance{ID: 1, AlarmTime: now.Add(-2 * time.Hour), State: domain.Silent},
		&domain.Instance{ID: 2, AlarmTime: now.Add(-2 * time.Hour), State: domain.Silent},
		&domain.Instance{ID: 3, AlarmTime: now.Add(-2 * time.Hour), State: domain.Silent},
	)
	store.failIDs[2] = true

	svc := NewService(store, &recordingNotifier{}, WithClock(fixedClock(now)))

	err := svc.FixInstances(context.Background())
	require.ErrorIs(t, err, errTestPersist)

	got := snapshot(t, store)
	require.Equal(t, domain.Missed, got[1].State)
	require.Equal(t, domain.Silent, got[2].State)
	require.Equal(t, domain.Missed, got[3].State)
}

// TestFixInstances_BootScenario replays a boot with a two-hour-stale
// instance and no pending restore.
func TestFixInstances_BootScenario(t *testing.T) {
	t.Parallel()

	now := time.Now()
	store := newMemoryStore(&domain.Instance{
		ID:        1,
		AlarmTime: now.Add(-2 * time.Hour),
		State:     domain.HighNotification,
	})
	svc := NewService(store, &recordingNotifier{}, WithClock(fixedClock(now)))

	require.NoError(t, svc.FixInstances(context.Background()))
	require.Equal(t, domain.Missed, snapshot(t, store)[1].State)
}
