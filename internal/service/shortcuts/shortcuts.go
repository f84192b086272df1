// Package shortcuts abstracts launcher shortcut maintenance. Shortcuts
// carry localized labels and deep links into the clock UI, so they need a
// refresh after boot and after application upgrades.
package shortcuts

import (
	"context"

	"github.com/oshokin/alarm-clockd/internal/logger"
)

// Manager maintains the application's launcher shortcuts.
type Manager interface {
	// Update re-publishes the shortcut set.
	Update(ctx context.Context) error
}

// LogManager is a Manager that only records the requested operations.
type LogManager struct{}

// NewLogManager creates a logging-only shortcut manager.
func NewLogManager() *LogManager {
	return &LogManager{}
}

// Update logs the shortcut refresh request.
func (m *LogManager) Update(ctx context.Context) error {
	logger.FromContext(ctx).Info("updating launcher shortcuts")

	return nil
}
