package client

import (
	"context"
	"fmt"
	"time"

	"github.com/oshokin/alarm-clockd/internal/config"
	"github.com/oshokin/alarm-clockd/internal/logger"
	pb "github.com/oshokin/alarm-clockd/internal/pb/v1"
	"github.com/oshokin/alarm-clockd/internal/service/common"
)

// Options configures the control-client connection.
type Options struct {
	// ConfigPath to YAML settings file, defaults to standard filename if empty.
	ConfigPath string

	// ServerAddress overrides server address from config when specified.
	ServerAddress string
}

// PublishEvent delivers one trigger event to the daemon and logs its epoch.
func PublishEvent(ctx context.Context, opts *Options, request *pb.PublishEventRequest) error {
	ctx = logger.WithName(ctx, "alarmctl")

	client, err := dial(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		_ = client.Close()
	}()

	response, err := client.PublishEvent(ctx, request)
	if err != nil {
		return err
	}

	logger.InfoKV(ctx, "Event published",
		"event_type", request.GetEventType(),
		"epoch", response.GetEpoch())

	return nil
}

// ListInstances prints the daemon's instances, optionally filtered by state.
func ListInstances(ctx context.Context, opts *Options, states ...pb.InstanceState) error {
	ctx = logger.WithName(ctx, "alarmctl")

	client, err := dial(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		_ = client.Close()
	}()

	response, err := client.ListInstances(ctx, states...)
	if err != nil {
		return err
	}

	all := response.GetInstances()
	logger.Infof(ctx, "%d instances", len(all))

	for _, instance := range all {
		logger.Info(ctx, formatInstance(instance))
	}

	return nil
}

// ScheduleInstance creates or replaces an alarm instance on the daemon.
func ScheduleInstance(ctx context.Context, opts *Options, instance *pb.AlarmInstance) error {
	ctx = logger.WithName(ctx, "alarmctl")

	client, err := dial(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		_ = client.Close()
	}()

	response, err := client.ScheduleInstance(ctx, instance)
	if err != nil {
		return err
	}

	logger.Infof(ctx, "Scheduled: %s", formatInstance(response.GetInstance()))

	return nil
}

// UnscheduleInstance deletes an alarm instance on the daemon.
func UnscheduleInstance(ctx context.Context, opts *Options, id int64) error {
	ctx = logger.WithName(ctx, "alarmctl")

	client, err := dial(ctx, opts)
	if err != nil {
		return err
	}

	defer func() {
		_ = client.Close()
	}()

	if _, err = client.UnscheduleInstance(ctx, id); err != nil {
		return err
	}

	logger.Infof(ctx, "Unscheduled instance %d", id)

	return nil
}

// dial loads the settings and connects to the configured daemon.
func dial(ctx context.Context, opts *Options) (*common.Client, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	// Use server address from options if provided, otherwise use config.
	serverAddress := cfg.ServerAddress
	if opts.ServerAddress != "" {
		serverAddress = opts.ServerAddress
	}

	return common.Dial(ctx, serverAddress, common.WithCallTimeout(cfg.Timeout))
}

// formatInstance converts an instance to a readable log message.
func formatInstance(instance *pb.AlarmInstance) string {
	if instance == nil {
		return "<nil instance>"
	}

	return fmt.Sprintf("instance %d: %s at %s",
		instance.GetId(),
		instance.GetState(),
		time.UnixMilli(instance.GetAlarmTimeUnixMs()).Format(time.RFC3339))
}
