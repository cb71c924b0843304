// Package httpcontext bridges fasthttp's request context to the stdlib
// context.Context the use cases expect, attaching the request ID and
// caller metadata on the way through.
package httpcontext

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	appLogger "github.com/questtrack/backend/pkg/logger"
)

// Key names a request-scoped context value set by Attach.
type Key string

const (
	KeyRemoteAddr Key = "remote_addr"
	KeyUserAgent  Key = "user_agent"
)

// Adapter derives per-request stdlib contexts with a fixed timeout.
type Adapter struct {
	timeout time.Duration
}

// NewAdapter returns an Adapter. A non-positive timeout falls back to
// 5 seconds.
func NewAdapter(timeout time.Duration) *Adapter {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Adapter{timeout: timeout}
}

// Attach builds a deadline-bound context for one request, echoes the
// request ID back on X-Request-ID and records the caller's address and
// user agent as context values.
func (a *Adapter) Attach(ctx *fasthttp.RequestCtx) (context.Context, context.CancelFunc) {
	stdCtx, cancel := context.WithTimeout(context.Background(), a.timeout)

	reqID := inboundRequestID(ctx)
	stdCtx = appLogger.ContextWithRequestID(stdCtx, reqID)
	ctx.Response.Header.Set("X-Request-ID", reqID)

	if remoteAddr := ctx.RemoteAddr(); remoteAddr != nil {
		stdCtx = context.WithValue(stdCtx, KeyRemoteAddr, remoteAddr.String())
	}
	if ua := string(ctx.Request.Header.UserAgent()); ua != "" {
		stdCtx = context.WithValue(stdCtx, KeyUserAgent, ua)
	}

	return stdCtx, cancel
}

// inboundRequestID reuses the caller's X-Request-ID when present so IDs
// survive proxy hops, otherwise it mints a fresh UUID.
func inboundRequestID(ctx *fasthttp.RequestCtx) string {
	if ctx == nil {
		return uuid.NewString()
	}
	if header := strings.TrimSpace(string(ctx.Request.Header.Peek("X-Request-ID"))); header != "" {
		return header
	}
	return uuid.NewString()
}
