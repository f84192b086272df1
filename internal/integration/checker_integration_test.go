package integration

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/alarm-clockd/internal/config"
	pb "github.com/oshokin/alarm-clockd/internal/pb/v1"
	"github.com/oshokin/alarm-clockd/internal/service/checker"
	"github.com/oshokin/alarm-clockd/internal/service/common"
)

// TestChecker_FiresDueInstance runs the checker against a live daemon with a
// due instance and verifies the daemon fixes it up, then cancels the checker.
func TestChecker_FiresDueInstance(t *testing.T) {
	t.Parallel()

	// Setup test environment with daemon and temporary state.
	addr := reservePort(t)
	statePath := filepath.Join(t.TempDir(), "state.json")

	stop := startGRPC(t, addr, statePath)
	defer stop()

	ctx := context.Background()

	// Connect to the test daemon.
	c, err := common.Dial(ctx, addr)
	require.NoError(t, err)

	defer func() {
		_ = c.Close()
	}()

	// Schedule an instance whose alarm time has already passed.
	_, err = c.ScheduleInstance(ctx, &pb.AlarmInstance{
		Id:              7,
		AlarmTimeUnixMs: time.Now().Add(-time.Second).UnixMilli(),
		State:           pb.InstanceState_INSTANCE_STATE_HIGH_NOTIFICATION,
	})
	require.NoError(t, err)

	// Setup cancellable context for checker.
	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)

	// Create temporary config file for checker.
	cfgPath := filepath.Join(t.TempDir(), "checker-settings.yaml")
	err = config.Save(cfgPath, &config.Config{
		ServerAddress: addr,
		Timeout:       1 * time.Second,
	})
	require.NoError(t, err)

	// Start checker with a short poll interval.
	go func() {
		options := &checker.Options{
			ConfigPath:    cfgPath,
			ServerAddress: addr, // Override config address
			PollInterval:  50 * time.Millisecond,
		}

		done <- checker.Run(runCtx, options)
	}()

	// The checker should notice the due instance and publish a trigger,
	// after which the daemon's fix-up marks it fired.
	require.Eventually(t, func() bool {
		listed, listErr := c.ListInstances(ctx, pb.InstanceState_INSTANCE_STATE_FIRED)
		if listErr != nil {
			return false
		}

		return len(listed.GetInstances()) == 1
	}, 3*time.Second, 50*time.Millisecond)

	cancel()

	// Verify checker exits cleanly on cancellation.
	err = <-done
	require.NoError(t, err)
}
