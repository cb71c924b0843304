package middleware

import (
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/questtrack/backend/api/transport"
	"github.com/questtrack/backend/domain"
)

// FixedWindowLimiter counts requests per client key in fixed windows.
// A counter resets when its window expires; there is no sliding behavior.
type FixedWindowLimiter struct {
	limit  int
	window time.Duration

	mu       sync.Mutex
	counters map[string]*windowCounter

	now func() time.Time
}

type windowCounter struct {
	start time.Time
	count int
}

func NewFixedWindowLimiter(limit int, window time.Duration) *FixedWindowLimiter {
	if limit <= 0 {
		limit = 100
	}
	if window <= 0 {
		window = 15 * time.Minute
	}
	return &FixedWindowLimiter{
		limit:    limit,
		window:   window,
		counters: make(map[string]*windowCounter),
		now:      time.Now,
	}
}

// Allow records one request for the key and reports whether it fits the
// current window. Expired windows restart on access; stale keys are swept
// opportunistically.
func (l *FixedWindowLimiter) Allow(key string) bool {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.counters[key]
	if !ok || now.Sub(c.start) >= l.window {
		l.counters[key] = &windowCounter{start: now, count: 1}
		l.sweepLocked(now)
		return true
	}

	c.count++
	return c.count <= l.limit
}

// sweepLocked drops counters whose window has long expired. Called with the
// lock held, on window rollover, to keep the map bounded by active clients.
func (l *FixedWindowLimiter) sweepLocked(now time.Time) {
	for key, c := range l.counters {
		if now.Sub(c.start) >= 2*l.window {
			delete(l.counters, key)
		}
	}
}

// Middleware rejects over-quota clients with 429, keyed by remote IP.
func (l *FixedWindowLimiter) Middleware(logger *zap.Logger) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	retryAfter := fmt.Sprintf("%d minutes", int(l.window.Minutes()))

	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			key := ctx.RemoteIP().String()
			if !l.Allow(key) {
				logger.Warn("rate limit exceeded", zap.String("remote_addr", key))
				respondError(ctx, http.StatusTooManyRequests, transport.NewError(
					string(domain.ErrCodeRateLimited),
					"Too many requests from this IP",
					map[string]interface{}{"retry_after": retryAfter},
				))
				return
			}
			next(ctx)
		}
	}
}
