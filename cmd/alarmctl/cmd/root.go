package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/oshokin/alarm-clockd/internal/config"
	pb "github.com/oshokin/alarm-clockd/internal/pb/v1"
	"github.com/oshokin/alarm-clockd/internal/service/client"
	"github.com/oshokin/alarm-clockd/internal/version"
)

var (
	// configPath to the configuration YAML file.
	configPath string
	// serverAddress overrides the daemon address from config.
	serverAddress string

	// rootCmd represents the base command for controlling the event daemon.
	rootCmd = &cobra.Command{
		Use:   "alarmctl",
		Short: "Control the alarm system-event daemon.",
		Long: `Command-line client for the alarm event daemon.

Publishes system events (boot, time change, locale change, package
replacement, restore completion), applies snooze/dismiss requests to a
ringing alarm, and manages scheduled alarm instances.`,
	}
)

// eventTypesByName maps CLI event names to their protobuf values.
var eventTypesByName = map[string]pb.EventType{
	"boot":              pb.EventType_EVENT_TYPE_BOOT_COMPLETED,
	"time-changed":      pb.EventType_EVENT_TYPE_TIME_CHANGED,
	"locale-changed":    pb.EventType_EVENT_TYPE_LOCALE_CHANGED,
	"package-replaced":  pb.EventType_EVENT_TYPE_PACKAGE_REPLACED,
	"restore-completed": pb.EventType_EVENT_TYPE_RESTORE_COMPLETED,
}

// Execute runs the alarmctl CLI and exits with non-zero status on error.
func Execute() {
	version.AttachCobraVersionCommand(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Required by Cobra CLI framework architecture.
func init() {
	// Setup command flags with consistent naming and descriptions.
	rootCmd.PersistentFlags().
		StringVarP(&configPath, "config", "c", config.DefaultConfigFilename, "path to configuration file")
	rootCmd.PersistentFlags().
		StringVarP(&serverAddress, "server", "s", "", "daemon address override")

	rootCmd.AddCommand(
		newEventCommand(),
		newDismissCommand(),
		newSnoozeCommand(),
		newListCommand(),
		newScheduleCommand(),
		newUnscheduleCommand(),
	)
}

// signalContext returns a context canceled on SIGTERM/SIGINT.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
}

// clientOptions builds options from the persistent flags.
func clientOptions() *client.Options {
	return &client.Options{
		ConfigPath:    configPath,
		ServerAddress: serverAddress,
	}
}

// newEventCommand publishes a parameterless system event.
func newEventCommand() *cobra.Command {
	names := make([]string, 0, len(eventTypesByName))
	for name := range eventTypesByName {
		names = append(names, name)
	}

	return &cobra.Command{
		Use:       "event [boot|time-changed|locale-changed|package-replaced|restore-completed]",
		Short:     "Publish a system event to the daemon",
		Args:      cobra.ExactArgs(1),
		ValidArgs: names,
		RunE: func(_ *cobra.Command, args []string) error {
			eventType, ok := eventTypesByName[args[0]]
			if !ok {
				return fmt.Errorf("unknown event %q", args[0])
			}

			ctx, stop := signalContext()
			defer stop()

			return client.PublishEvent(ctx, clientOptions(), &pb.PublishEventRequest{
				EventType: eventType,
			})
		},
	}
}

// newDismissCommand publishes a dismiss status update for a ringing alarm.
func newDismissCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dismiss [alarm-time]",
		Short: "Dismiss the ringing alarm scheduled at the given time",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			alarmTime, err := parseTimestamp(args[0])
			if err != nil {
				return err
			}

			ctx, stop := signalContext()
			defer stop()

			return client.PublishEvent(ctx, clientOptions(), &pb.PublishEventRequest{
				EventType:       pb.EventType_EVENT_TYPE_EXTERNAL_STATUS_UPDATE,
				AlarmTimeUnixMs: alarmTime,
				Status:          pb.ExternalStatus_EXTERNAL_STATUS_DISMISS,
			})
		},
	}
}

// newSnoozeCommand publishes a snooze status update for a ringing alarm.
func newSnoozeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "snooze [alarm-time] [snooze-until]",
		Short: "Snooze the ringing alarm scheduled at the given time",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			alarmTime, err := parseTimestamp(args[0])
			if err != nil {
				return err
			}

			snoozeTime, err := parseTimestamp(args[1])
			if err != nil {
				return err
			}

			ctx, stop := signalContext()
			defer stop()

			return client.PublishEvent(ctx, clientOptions(), &pb.PublishEventRequest{
				EventType:        pb.EventType_EVENT_TYPE_EXTERNAL_STATUS_UPDATE,
				AlarmTimeUnixMs:  alarmTime,
				Status:           pb.ExternalStatus_EXTERNAL_STATUS_SNOOZE,
				SnoozeTimeUnixMs: snoozeTime,
			})
		},
	}
}

// newListCommand lists the daemon's alarm instances.
func newListCommand() *cobra.Command {
	var fired bool

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List alarm instances",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			ctx, stop := signalContext()
			defer stop()

			if fired {
				return client.ListInstances(ctx, clientOptions(),
					pb.InstanceState_INSTANCE_STATE_FIRED)
			}

			return client.ListInstances(ctx, clientOptions())
		},
	}

	listCmd.Flags().BoolVar(&fired, "fired", false, "show only ringing instances")

	return listCmd
}

// newScheduleCommand creates or replaces an alarm instance.
func newScheduleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule [id] [alarm-time]",
		Short: "Schedule an alarm instance",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid instance id %q: %w", args[0], err)
			}

			alarmTime, err := parseTimestamp(args[1])
			if err != nil {
				return err
			}

			ctx, stop := signalContext()
			defer stop()

			return client.ScheduleInstance(ctx, clientOptions(), &pb.AlarmInstance{
				Id:              id,
				AlarmTimeUnixMs: alarmTime,
				State:           pb.InstanceState_INSTANCE_STATE_SILENT,
			})
		},
	}
}

// newUnscheduleCommand deletes an alarm instance.
func newUnscheduleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unschedule [id]",
		Short: "Delete an alarm instance",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid instance id %q: %w", args[0], err)
			}

			ctx, stop := signalContext()
			defer stop()

			return client.UnscheduleInstance(ctx, clientOptions(), id)
		},
	}
}

// parseTimestamp accepts either an RFC3339 time or unix milliseconds.
func parseTimestamp(value string) (int64, error) {
	if ms, err := strconv.ParseInt(value, 10, 64); err == nil {
		return ms, nil
	}

	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return 0, fmt.Errorf("invalid time %q, expected RFC3339 or unix milliseconds: %w", value, err)
	}

	return parsed.UnixMilli(), nil
}
