// Package lifecycle owns the teardown sequence of the API process. The
// composition root registers one stop hook per long-lived component (the
// fasthttp listener today) and hooks run last-in first-out so dependents
// stop before the things they depend on.
package lifecycle

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// StopFunc stops one component. It must respect ctx's deadline.
type StopFunc func(ctx context.Context) error

type stopHook struct {
	name string
	stop StopFunc
}

// Manager collects stop hooks and drains them on shutdown.
type Manager struct {
	timeout time.Duration
	logger  *zap.Logger

	mu    sync.Mutex
	hooks []stopHook
}

// New returns a Manager that bounds the whole drain by timeout.
// A non-positive timeout falls back to 15 seconds.
func New(timeout time.Duration, logger *zap.Logger) *Manager {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{timeout: timeout, logger: logger}
}

// Register appends a named stop hook. Nil hooks are ignored.
func (m *Manager) Register(name string, stop StopFunc) {
	if stop == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hooks = append(m.hooks, stopHook{name: name, stop: stop})
}

// Shutdown drains the hooks in reverse registration order under the
// configured timeout. Every hook runs even when earlier ones fail; the
// failures are joined into the returned error.
func (m *Manager) Shutdown(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var drainErr error
	for i := len(m.hooks) - 1; i >= 0; i-- {
		h := m.hooks[i]
		if err := h.stop(ctx); err != nil {
			m.logger.Error("stop hook failed", zap.String("hook", h.name), zap.Error(err))
			drainErr = errors.Join(drainErr, err)
			continue
		}
		m.logger.Info("hook drained", zap.String("hook", h.name))
	}
	return drainErr
}

// Listen watches for SIGTERM/SIGINT in the background and calls cancel
// once, letting main fall through to Shutdown.
func (m *Manager) Listen(cancel context.CancelFunc) {
	if cancel == nil {
		return
	}
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		defer signal.Stop(sigCh)
		sig := <-sigCh
		m.logger.Info("termination signal caught", zap.String("signal", sig.String()))
		cancel()
	}()
}
