package restore

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	domain "github.com/oshokin/alarm-clockd/internal/domain/instance"
	"github.com/oshokin/alarm-clockd/internal/logger"
)

// defaultDebounce is how long the watcher waits after the last write event
// before publishing, so a restore agent still writing the file is not raced.
const defaultDebounce = 500 * time.Millisecond

// Publisher receives the restore-completed event once a drop file settles.
type Publisher func(ctx context.Context, event domain.TriggerEvent)

// Watcher publishes a RestoreCompleted event when a drop file appears in
// the restore directory.
type Watcher struct {
	// dir is the watched restore directory.
	dir string
	// publish delivers the event to the router.
	publish Publisher
	// debounce is the settle delay after the last filesystem event.
	debounce time.Duration
}

// NewWatcher creates a watcher over the restore directory.
func NewWatcher(dir string, publish Publisher) *Watcher {
	return &Watcher{
		dir:      dir,
		publish:  publish,
		debounce: defaultDebounce,
	}
}

// Run watches the restore directory until the context is canceled.
// Filesystem events for the drop file are debounced, then published as a
// single RestoreCompleted event.
func (w *Watcher) Run(ctx context.Context) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create filesystem watcher: %w", err)
	}
	defer fsWatcher.Close()

	if err = fsWatcher.Add(w.dir); err != nil {
		return fmt.Errorf("watch restore directory %q: %w", w.dir, err)
	}

	log := logger.FromContext(ctx)
	log.Infof("watching %q for restored data", w.dir)

	// The timer is armed on the first relevant event and re-armed on every
	// following one; it only fires once the file has settled.
	settle := time.NewTimer(w.debounce)
	if !settle.Stop() {
		<-settle.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-settle.C:
			log.Info("restore drop file settled")
			w.publish(ctx, domain.RestoreCompleted{})
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return nil
			}

			if filepath.Base(event.Name) != DropFilename {
				continue
			}

			if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
				continue
			}

			if !settle.Stop() {
				select {
				case <-settle.C:
				default:
				}
			}

			settle.Reset(w.debounce)
		case watchErr, ok := <-fsWatcher.Errors:
			if !ok {
				return nil
			}

			log.Errorf("restore watcher error: %v", watchErr)
		}
	}
}
