package middleware

import (
	"github.com/valyala/fasthttp"

	"github.com/questtrack/backend/internal/monitor"
)

// CountRequests records each handled request on the monitor. Applied after
// authentication, so only authenticated API traffic is counted.
func CountRequests(mon *monitor.Monitor) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			mon.CountRequest()
			next(ctx)
		}
	}
}
