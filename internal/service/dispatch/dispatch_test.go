package dispatch

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// TestWakeSource_ReleaseOnce ensures a release closure only releases once.
func TestWakeSource_ReleaseOnce(t *testing.T) {
	wake := NewWakeSource("test")

	release := wake.Acquire(context.Background())
	require.Equal(t, 1, wake.HeldCount())

	release()
	release()
	require.Equal(t, 0, wake.HeldCount())
}

// TestWakeSource_Refcount verifies nested acquisitions keep the source held
// until the last holder releases.
func TestWakeSource_Refcount(t *testing.T) {
	wake := NewWakeSource("test")

	first := wake.Acquire(context.Background())
	second := wake.Acquire(context.Background())
	require.Equal(t, 2, wake.HeldCount())

	first()
	require.Equal(t, 1, wake.HeldCount())

	second()
	require.Equal(t, 0, wake.HeldCount())
}

// TestCompletionToken_FinishIdempotent checks repeated Finish calls complete
// the unit only once.
func TestCompletionToken_FinishIdempotent(t *testing.T) {
	var (
		wake        = NewWakeSource("test")
		coordinator = NewCoordinator(wake)
	)

	token := coordinator.Begin(context.Background())
	require.Equal(t, 1, wake.HeldCount())

	token.Finish()
	token.Finish()
	require.Equal(t, 0, wake.HeldCount())

	require.NoError(t, coordinator.Wait(context.Background()))
}

// TestCoordinator_Go verifies async work holds the wake source for its
// duration and releases it on return.
func TestCoordinator_Go(t *testing.T) {
	var (
		wake        = NewWakeSource("test")
		coordinator = NewCoordinator(wake)
		started     = make(chan struct{})
		proceed     = make(chan struct{})
		ran         atomic.Bool
	)

	coordinator.Go(context.Background(), "test-task", func(context.Context) error {
		close(started)
		<-proceed
		ran.Store(true)

		return nil
	})

	<-started
	require.Equal(t, 1, wake.HeldCount())

	close(proceed)
	require.NoError(t, coordinator.Wait(context.Background()))
	require.True(t, ran.Load())
	require.Equal(t, 0, wake.HeldCount())
}

// TestCoordinator_GoWithToken verifies a token begun by the caller keeps the
// wake source held across the handoff and is finished when the work returns.
func TestCoordinator_GoWithToken(t *testing.T) {
	var (
		wake        = NewWakeSource("test")
		coordinator = NewCoordinator(wake)
		ran         atomic.Bool
	)

	token := coordinator.Begin(context.Background())
	require.Equal(t, 1, wake.HeldCount())

	coordinator.GoWithToken(context.Background(), token, "handed-off-task", func(context.Context) error {
		ran.Store(true)

		return nil
	})

	require.NoError(t, coordinator.Wait(context.Background()))
	require.True(t, ran.Load())
	require.Equal(t, 0, wake.HeldCount())
}

// TestCoordinator_GoDetachesFromCallerCancel checks async work sees a live
// context even when the caller's context was already canceled.
func TestCoordinator_GoDetachesFromCallerCancel(t *testing.T) {
	var (
		wake        = NewWakeSource("test")
		coordinator = NewCoordinator(wake)
		ctxErr      = make(chan error, 1)
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	coordinator.Go(ctx, "detached-task", func(taskCtx context.Context) error {
		ctxErr <- taskCtx.Err()

		return nil
	})

	require.NoError(t, coordinator.Wait(context.Background()))
	require.NoError(t, <-ctxErr)
}

// TestCoordinator_GoReleasesOnFailure ensures errors and panics still finish
// the token and release the wake source.
func TestCoordinator_GoReleasesOnFailure(t *testing.T) {
	testCases := []struct {
		name string
		fn   func(context.Context) error
	}{
		{
			name: "error",
			fn: func(context.Context) error {
				return errors.New("test failure")
			},
		},
		{
			name: "panic",
			fn: func(context.Context) error {
				panic("test panic")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var (
				wake        = NewWakeSource("test")
				coordinator = NewCoordinator(wake)
			)

			coordinator.Go(context.Background(), "failing-task", tc.fn)

			require.NoError(t, coordinator.Wait(context.Background()))
			require.Equal(t, 0, wake.HeldCount())
		})
	}
}

// TestCoordinator_WaitHonorsContext checks Wait gives up when the context
// expires before the work drains.
func TestCoordinator_WaitHonorsContext(t *testing.T) {
	var (
		wake        = NewWakeSource("test")
		coordinator = NewCoordinator(wake)
		proceed     = make(chan struct{})
	)

	coordinator.Go(context.Background(), "slow-task", func(context.Context) error {
		<-proceed

		return nil
	})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	require.ErrorIs(t, coordinator.Wait(ctx), context.DeadlineExceeded)

	// Let the task finish so no goroutine outlives the test.
	close(proceed)
	require.NoError(t, coordinator.Wait(context.Background()))
}
