package dispatch

import (
	"context"
	"sync"

	"github.com/oshokin/alarm-clockd/internal/logger"
)

// WakeSource is a refcounted stand-in for a platform wake lock: the host
// may suspend only while the count is zero. Acquisitions return a release
// closure that is safe to call more than once.
type WakeSource struct {
	// name appears in logs next to every acquire and release.
	name string
	// mu protects held.
	mu sync.Mutex
	// held is the number of outstanding acquisitions.
	held int
}

// NewWakeSource creates a named wake source with no holders.
func NewWakeSource(name string) *WakeSource {
	return &WakeSource{
		name: name,
	}
}

// Acquire takes one reference and returns its release closure.
// The closure releases exactly once no matter how often it is called.
func (w *WakeSource) Acquire(ctx context.Context) func() {
	w.mu.Lock()
	w.held++
	held := w.held
	w.mu.Unlock()

	logger.FromContext(ctx).Debugf("wake source %q acquired, %d held", w.name, held)

	var once sync.Once

	return func() {
		once.Do(func() {
			w.mu.Lock()
			w.held--
			held := w.held
			w.mu.Unlock()

			logger.FromContext(ctx).Debugf("wake source %q released, %d held", w.name, held)
		})
	}
}

// HeldCount returns the number of outstanding acquisitions.
func (w *WakeSource) HeldCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.held
}

// CompletionToken marks one unit of async work whose completion the outer
// event framework is waiting for. Finish is idempotent.
type CompletionToken struct {
	once    sync.Once
	release func()
	done    func()
}

// Finish releases the wake reference and signals completion.
// Calling it again has no effect.
func (t *CompletionToken) Finish() {
	t.once.Do(func() {
		t.release()
		t.done()
	})
}

// Coordinator hands out completion tokens and runs async work under them.
type Coordinator struct {
	// wake is held for every outstanding token.
	wake *WakeSource
	// wg tracks unfinished tokens for shutdown draining.
	wg sync.WaitGroup
}

// NewCoordinator creates a coordinator over the given wake source.
func NewCoordinator(wake *WakeSource) *Coordinator {
	return &Coordinator{
		wake: wake,
	}
}

// Begin acquires the wake source and registers one unit of async work.
// The caller must call Finish on the returned token on every exit path.
func (c *Coordinator) Begin(ctx context.Context) *CompletionToken {
	c.wg.Add(1)

	return &CompletionToken{
		release: c.wake.Acquire(ctx),
		done:    c.wg.Done,
	}
}

// Go runs fn on its own goroutine under a fresh completion token.
// The token is finished when fn returns, errors out, or panics;
// failures are logged, never propagated.
func (c *Coordinator) Go(ctx context.Context, name string, fn func(ctx context.Context) error) {
	c.GoWithToken(ctx, c.Begin(ctx), name, fn)
}

// GoWithToken runs fn on its own goroutine under a token the caller already
// holds, so the wake reference spans whatever work preceded the handoff.
// The token is finished when fn returns, errors out, or panics; failures
// are logged, never propagated.
func (c *Coordinator) GoWithToken(ctx context.Context, token *CompletionToken, name string, fn func(ctx context.Context) error) {
	// The caller's deadline ends with its request; async work runs to
	// completion and is drained through Wait instead.
	ctx = context.WithoutCancel(ctx)

	go func() {
		defer token.Finish()
		defer func() {
			if r := recover(); r != nil {
				logger.FromContext(ctx).Errorf("async task %q panicked: %v", name, r)
			}
		}()

		if err := fn(ctx); err != nil {
			logger.FromContext(ctx).Errorf("async task %q failed: %v", name, err)
		}
	}()
}

// Wait blocks until every outstanding token is finished or the context is
// canceled, whichever comes first.
func (c *Coordinator) Wait(ctx context.Context) error {
	drained := make(chan struct{})

	go func() {
		c.wg.Wait()
		close(drained)
	}()

	select {
	case <-drained:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
