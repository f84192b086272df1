package instance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestInstanceClone verifies that Clone returns an independent copy and handles nil safely.
func TestInstanceClone(t *testing.T) {
	t.Parallel()
	require.Nil(t, (*Instance)(nil).Clone())

	a := &Instance{
		ID:        42,
		AlarmTime: time.UnixMilli(1000),
		State:     Fired,
	}

	b := a.Clone()

	require.Equal(t, a, b)
	require.NotSame(t, a, b)

	b.State = Dismissed
	require.Equal(t, Fired, a.State)
}

// TestSameAlarmTime verifies millisecond-equality matching, including
// sub-millisecond differences that must still match.
func TestSameAlarmTime(t *testing.T) {
	t.Parallel()

	at := time.UnixMilli(1_700_000_000_000)
	ins := &Instance{ID: 1, AlarmTime: at}

	require.True(t, ins.SameAlarmTime(at))
	require.True(t, ins.SameAlarmTime(at.Add(500*time.Microsecond)))
	require.False(t, ins.SameAlarmTime(at.Add(time.Millisecond)))
	require.False(t, ins.SameAlarmTime(at.Add(-time.Millisecond)))
}

// TestStateFamilies checks the scheduled and terminal groupings the reconciler
// relies on.
func TestStateFamilies(t *testing.T) {
	t.Parallel()

	for _, s := range []State{Silent, LowNotification, HighNotification} {
		require.True(t, s.IsScheduled(), s.String())
		require.False(t, s.IsTerminal(), s.String())
	}

	for _, s := range []State{Fired, Snoozed} {
		require.False(t, s.IsScheduled(), s.String())
		require.False(t, s.IsTerminal(), s.String())
	}

	for _, s := range []State{Dismissed, Missed} {
		require.False(t, s.IsScheduled(), s.String())
		require.True(t, s.IsTerminal(), s.String())
	}
}

// TestStateString ensures every state has a stable, distinct name.
func TestStateString(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{}, 8)
	for _, s := range []State{Silent, LowNotification, HighNotification, Fired, Snoozed, Dismissed, Missed} {
		name := s.String()
		require.NotEqual(t, "unknown", name)

		_, duplicate := seen[name]
		require.False(t, duplicate, name)

		seen[name] = struct{}{}
	}

	require.Equal(t, "unknown", State(99).String())
}
