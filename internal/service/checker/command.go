// Package checker polls the event daemon and nudges it when an alarm
// comes due. The daemon only reconciles when an event arrives, so the
// checker plays the role of the platform's alarm delivery: it watches the
// scheduled instances and publishes a time-changed reconciliation trigger
// once the wall clock passes an alarm time.
package checker

import (
	"context"
	"fmt"
	"time"

	"github.com/oshokin/alarm-clockd/internal/config"
	"github.com/oshokin/alarm-clockd/internal/logger"
	pb "github.com/oshokin/alarm-clockd/internal/pb/v1"
	"github.com/oshokin/alarm-clockd/internal/service/common"
)

// Options controls the checker polling behavior and configuration.
type Options struct {
	// ConfigPath specifies the path to the settings YAML file.
	ConfigPath string
	// ServerAddress provides an optional gRPC server address override.
	ServerAddress string
	// PollInterval defines the interval between due-instance checks.
	PollInterval time.Duration
}

// DefaultPollInterval defines the fixed polling interval for due-instance checks.
const DefaultPollInterval = 5 * time.Second

// Run polls scheduled instances and publishes a reconciliation trigger when
// one of them is due. Blocks until the context is canceled.
func Run(ctx context.Context, opts *Options) error {
	// Set context with logger name for tracking.
	ctx = logger.WithName(ctx, "alarm-checker")

	// Load settings from configuration file.
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	// Fall back to the default polling interval.
	if opts.PollInterval <= 0 {
		opts.PollInterval = DefaultPollInterval
	}

	// Determine server address: command line argument overrides config.
	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	// Establish gRPC connection with timeout from configuration.
	client, err := common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
	if err != nil {
		return fmt.Errorf("dial daemon: %w", err)
	}

	// Ensure connection cleanup on function exit.
	defer func() {
		_ = client.Close()
	}()

	logger.InfoKV(ctx, "Polling for due instances", "server_address", serverAddress, "interval", opts.PollInterval.String())

	// Setup polling ticker with fixed interval.
	ticker := time.NewTicker(opts.PollInterval)
	defer ticker.Stop()

	// Main polling loop until context cancellation.
	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "Context canceled, exiting")
			return nil
		case <-ticker.C:
			if err = checkDueInstances(ctx, client); err != nil {
				logger.ErrorKV(ctx, "Due-instance check failed", "error", err)
			}
		}
	}
}

// checkDueInstances asks the daemon for still-scheduled instances and
// publishes a reconciliation trigger if any of them is due. The daemon's
// fix-up is idempotent, so a spurious trigger is harmless.
func checkDueInstances(ctx context.Context, client *common.Client) error {
	response, err := client.ListInstances(ctx,
		pb.InstanceState_INSTANCE_STATE_SILENT,
		pb.InstanceState_INSTANCE_STATE_LOW_NOTIFICATION,
		pb.InstanceState_INSTANCE_STATE_HIGH_NOTIFICATION,
		pb.InstanceState_INSTANCE_STATE_SNOOZED,
	)
	if err != nil {
		return err
	}

	now := time.Now().UnixMilli()

	for _, instance := range response.GetInstances() {
		if instance.GetAlarmTimeUnixMs() > now {
			continue
		}

		logger.InfoKV(ctx, "Instance due, requesting reconciliation",
			"instance_id", instance.GetId(),
			"alarm_time", time.UnixMilli(instance.GetAlarmTimeUnixMs()).Format(time.RFC3339))

		published, err := client.PublishEvent(ctx, &pb.PublishEventRequest{
			EventType: pb.EventType_EVENT_TYPE_TIME_CHANGED,
		})
		if err != nil {
			return err
		}

		logger.InfoKV(ctx, "Reconciliation requested", "epoch", published.GetEpoch())

		// One trigger reconciles the whole store.
		return nil
	}

	return nil
}
