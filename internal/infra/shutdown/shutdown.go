package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// Handler runs registered cleanup hooks once, on signal or on demand.
type Handler struct {
	timeout time.Duration
	hooks   []func(context.Context) error
	mu      sync.Mutex
	trigger chan struct{}
	once    sync.Once
	done    chan struct{}
}

// NewHandler creates a shutdown handler. The timeout bounds the whole
// hook sequence, not each hook individually.
func NewHandler(timeout time.Duration) *Handler {
	return &Handler{
		timeout: timeout,
		hooks:   make([]func(context.Context) error, 0),
		trigger: make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// OnShutdown registers a shutdown hook.
// Hooks run in reverse order of registration.
func (h *Handler) OnShutdown(hook func(context.Context) error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks = append(h.hooks, hook)
}

// Trigger starts shutdown without a signal. Safe to call more than
// once; only the first call has effect.
func (h *Handler) Trigger() {
	h.once.Do(func() {
		close(h.trigger)
	})
}

// Wait blocks until a termination signal arrives or Trigger is
// called, then executes the hooks and returns the last hook error.
func (h *Handler) Wait() error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-sigCh:
	case <-h.trigger:
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	h.mu.Lock()
	hooks := make([]func(context.Context) error, len(h.hooks))
	copy(hooks, h.hooks)
	h.mu.Unlock()

	var lastErr error
	for i := len(hooks) - 1; i >= 0; i-- {
		if err := hooks[i](ctx); err != nil {
			lastErr = err
		}
	}

	close(h.done)
	return lastErr
}

// Done returns a channel that closes when shutdown is complete.
func (h *Handler) Done() <-chan struct{} {
	return h.done
}
