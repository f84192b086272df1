// Package notify abstracts the user-facing notification surface.
// The daemon only decides WHEN notifications must change; rendering is
// delegated to a Manager implementation so tests and headless builds can
// swap it out.
package notify

import (
	"context"

	"github.com/oshokin/alarm-clockd/internal/logger"
)

// Manager manages alarm notifications and their delivery channels.
type Manager interface {
	// UpdateChannels re-registers notification channels, for example after
	// boot or a locale change invalidated their localized titles.
	UpdateChannels(ctx context.Context) error
	// Clear removes any visible notification for the instance.
	Clear(ctx context.Context, instanceID int64) error
	// RebuildAll re-renders notifications for every active instance.
	RebuildAll(ctx context.Context) error
}

// LogManager is a Manager that only records the requested operations.
// It backs platforms without a native notification surface.
type LogManager struct{}

// NewLogManager creates a logging-only notification manager.
func NewLogManager() *LogManager {
	return &LogManager{}
}

// UpdateChannels logs the channel refresh request.
func (m *LogManager) UpdateChannels(ctx context.Context) error {
	logger.FromContext(ctx).Info("updating notification channels")

	return nil
}

// Clear logs the removal request for the instance.
func (m *LogManager) Clear(ctx context.Context, instanceID int64) error {
	logger.FromContext(ctx).Infof("clearing notification for instance %d", instanceID)

	return nil
}

// RebuildAll logs the full re-render request.
func (m *LogManager) RebuildAll(ctx context.Context) error {
	logger.FromContext(ctx).Info("rebuilding all notifications")

	return nil
}
