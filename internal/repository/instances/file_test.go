package instances

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	domain "github.com/oshokin/alarm-clockd/internal/domain/instance"
)

var errTestMutate = errors.New("test mutate error")

func newTestRepository(t *testing.T) *FileRepository {
	t.Helper()

	return NewFileRepository(filepath.Join(t.TempDir(), "instances.json"))
}

// TestFileRepository_EmptyStore ensures a missing file reads as an empty store.
func TestFileRepository_EmptyStore(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)

	all, err := repo.List(context.Background(), Filter{})
	require.NoError(t, err)
	require.Empty(t, all)
}

// TestFileRepository_CreateAndList verifies round-tripping instances through disk,
// including millisecond precision of alarm times.
func TestFileRepository_CreateAndList(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)
	at := time.UnixMilli(1_700_000_000_123)

	require.NoError(t, repo.Create(context.Background(), &domain.Instance{
		ID:        1,
		AlarmTime: at,
		State:     domain.Fired,
	}))
	require.NoError(t, repo.Create(context.Background(), &domain.Instance{
		ID:        2,
		AlarmTime: at.Add(time.Hour),
		State:     domain.Silent,
	}))

	all, err := repo.List(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, at.UnixMilli(), all[0].AlarmTime.UnixMilli())
	require.Equal(t, domain.Fired, all[0].State)

	// Filtered.
	fired, err := repo.List(context.Background(), Filter{States: []domain.State{domain.Fired}})
	require.NoError(t, err)
	require.Len(t, fired, 1)
	require.Equal(t, int64(1), fired[0].ID)
}

// TestFileRepository_CreateReplacesSameID verifies Create upserts by id.
func TestFileRepository_CreateReplacesSameID(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)

	require.NoError(t, repo.Create(context.Background(), &domain.Instance{
		ID:        7,
		AlarmTime: time.UnixMilli(1000),
		State:     domain.Silent,
	}))
	require.NoError(t, repo.Create(context.Background(), &domain.Instance{
		ID:        7,
		AlarmTime: time.UnixMilli(2000),
		State:     domain.HighNotification,
	}))

	all, err := repo.List(context.Background(), Filter{})
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, int64(2000), all[0].AlarmTime.UnixMilli())
	require.Equal(t, domain.HighNotification, all[0].State)
}

// TestFileRepository_Apply covers the mutate contract: persisted changes,
// skipped no-ops, propagated mutate errors and missing ids.
func TestFileRepository_Apply(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)

	require.NoError(t, repo.Create(context.Background(), &domain.Instance{
		ID:        1,
		AlarmTime: time.UnixMilli(1000),
		State:     domain.Fired,
	}))

	// Change persisted.
	err := repo.Apply(context.Background(), 1, func(ins *domain.Instance) (bool, error) {
		ins.State = domain.Dismissed
		return true, nil
	})
	require.NoError(t, err)

	all, err := repo.List(context.Background(), Filter{})
	require.NoError(t, err)
	require.Equal(t, domain.Dismissed, all[0].State)

	// No-op is not persisted: report no change while mutating anyway.
	err = repo.Apply(context.Background(), 1, func(ins *domain.Instance) (bool, error) {
		ins.State = domain.Fired
		return false, nil
	})
	require.NoError(t, err)

	all, err = repo.List(context.Background(), Filter{})
	require.NoError(t, err)
	require.Equal(t, domain.Dismissed, all[0].State)

	// Mutate error propagates.
	err = repo.Apply(context.Background(), 1, func(*domain.Instance) (bool, error) {
		return false, errTestMutate
	})
	require.ErrorIs(t, err, errTestMutate)

	// Missing id.
	err = repo.Apply(context.Background(), 99, func(*domain.Instance) (bool, error) {
		return true, nil
	})
	require.ErrorIs(t, err, ErrNotFound)
}

// TestFileRepository_Delete verifies removal and the not-found case.
func TestFileRepository_Delete(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t)

	require.NoError(t, repo.Create(context.Background(), &domain.Instance{
		ID:        1,
		AlarmTime: time.UnixMilli(1000),
		State:     domain.Silent,
	}))

	require.NoError(t, repo.Delete(context.Background(), 1))
	require.ErrorIs(t, repo.Delete(context.Background(), 1), ErrNotFound)

	all, err := repo.List(context.Background(), Filter{})
	require.NoError(t, err)
	require.Empty(t, all)
}
