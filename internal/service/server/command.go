package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc"

	api "github.com/oshokin/alarm-clockd/internal/api/grpc/events"
	"github.com/oshokin/alarm-clockd/internal/config"
	domain "github.com/oshokin/alarm-clockd/internal/domain/instance"
	"github.com/oshokin/alarm-clockd/internal/logger"
	pb "github.com/oshokin/alarm-clockd/internal/pb/v1"
	"github.com/oshokin/alarm-clockd/internal/repository/epoch"
	"github.com/oshokin/alarm-clockd/internal/repository/instances"
	"github.com/oshokin/alarm-clockd/internal/service/dispatch"
	"github.com/oshokin/alarm-clockd/internal/service/notify"
	"github.com/oshokin/alarm-clockd/internal/service/reconciler"
	"github.com/oshokin/alarm-clockd/internal/service/restore"
	"github.com/oshokin/alarm-clockd/internal/service/router"
	"github.com/oshokin/alarm-clockd/internal/service/shortcuts"
)

// Options controls the alarm-clockd process and configuration.
type Options struct {
	// ConfigPath specifies the path to settings YAML file.
	ConfigPath string
	// ListenAddress provides an optional listen address override for the gRPC server.
	ListenAddress string
	// StateFile specifies the path to persist alarm instances JSON.
	StateFile string
	// SkipBootEvent suppresses the boot-completed event published on startup.
	SkipBootEvent bool
}

// ErrNoServerAddress indicates missing server configuration.
var ErrNoServerAddress = errors.New("no server address configured")

// restoreDirPermissions allows the platform restore agent to write drop files.
const restoreDirPermissions = 0o700

// Run starts the event daemon and blocks until the context is canceled.
// Loads configuration, assembles the reconciliation pipeline, then serves
// gRPC and watches the restore directory until shutdown.
func Run(ctx context.Context, opts *Options) error {
	ctx = logger.WithName(ctx, "alarm-clockd")

	settings, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	// Use StateFile from config unless overridden by command line option.
	stateFile := settings.StateFile
	if opts.StateFile != "" {
		stateFile = opts.StateFile
	}

	// Determine listen address: CLI argument overrides config port extraction.
	listenAddress, err := resolveListenAddress(settings.ServerAddress, opts.ListenAddress)
	if err != nil {
		return fmt.Errorf("resolve listen address: %w", err)
	}

	if err = os.MkdirAll(settings.RestoreDir, restoreDirPermissions); err != nil {
		return fmt.Errorf("create restore directory: %w", err)
	}

	var (
		store       = instances.NewFileRepository(stateFile)
		epochs      = epoch.NewFileStore(settings.EpochFile)
		coordinator = dispatch.NewCoordinator(dispatch.NewWakeSource("alarm-clockd"))
		notifier    = notify.NewLogManager()
		rec         = reconciler.NewService(store, notifier,
			reconciler.WithWindow(settings.FiringWindow))
		eventRouter = router.NewRouter(epochs, rec, coordinator,
			restore.NewFileProcessor(settings.RestoreDir, store),
			shortcuts.NewLogManager(), notifier)
	)

	// Setup TCP listener for gRPC server.
	lc := net.ListenConfig{}

	lis, err := lc.Listen(ctx, "tcp", listenAddress)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddress, err)
	}

	grpcServer := grpc.NewServer()
	pb.RegisterSystemEventServiceServer(grpcServer, api.NewServer(eventRouter, store))

	logger.InfoKV(ctx, "Event daemon listening",
		"listen_address", listenAddress,
		"state_file", stateFile,
		"restore_dir", settings.RestoreDir)

	// Process start is the closest equivalent of device boot: reconcile
	// whatever happened while the daemon was down.
	if !opts.SkipBootEvent {
		if _, err = eventRouter.Handle(ctx, domain.BootCompleted{}); err != nil {
			return fmt.Errorf("handle boot event: %w", err)
		}
	}

	watcher := restore.NewWatcher(settings.RestoreDir, func(ctx context.Context, event domain.TriggerEvent) {
		if _, handleErr := eventRouter.Handle(ctx, event); handleErr != nil {
			logger.Errorf(ctx, "Failed to handle restore event: %v", handleErr)
		}
	})

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		if watchErr := watcher.Run(groupCtx); watchErr != nil && !errors.Is(watchErr, context.Canceled) {
			return fmt.Errorf("restore watcher: %w", watchErr)
		}

		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		logger.Info(ctx, "Shutting down gRPC server")
		grpcServer.GracefulStop()

		return nil
	})

	group.Go(func() error {
		if serveErr := grpcServer.Serve(lis); serveErr != nil && !errors.Is(serveErr, grpc.ErrServerStopped) {
			return fmt.Errorf("serve gRPC: %w", serveErr)
		}

		return nil
	})

	err = group.Wait()

	// Drain in-flight reconciliation before exiting so the last event's
	// mutations land on disk.
	drainCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), settings.Timeout)
	defer cancel()

	if drainErr := coordinator.Wait(drainCtx); drainErr != nil {
		logger.Errorf(ctx, "Failed to drain async work: %v", drainErr)
	}

	logger.Info(ctx, "Event daemon stopped")

	return err
}

// resolveListenAddress determines the listen address for the gRPC server.
// If override is provided, uses it directly. Otherwise extracts port from configAddr.
// Returns appropriate listen address (e.g., ":8080" for port-only binding).
func resolveListenAddress(configAddr, override string) (string, error) {
	// Use override address if provided (e.g., ":9090", "0.0.0.0:8080").
	if override != "" {
		return override, nil
	}

	// Extract port from config address (e.g., "server.example.com:8080" -> ":8080").
	if configAddr == "" {
		return "", ErrNoServerAddress
	}

	// Parse the address to extract port.
	_, port, err := net.SplitHostPort(configAddr)
	if err != nil {
		return "", fmt.Errorf("invalid server address format %q: %w", configAddr, err)
	}

	// Return port-only listen address to bind on all interfaces.
	return ":" + port, nil
}
