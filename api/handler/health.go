package handler

import (
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/questtrack/backend/internal/monitor"
	"github.com/questtrack/backend/pkg/httpcontext"
)

type HealthHandler struct {
	baseHandler
	monitor     *monitor.Monitor
	version     string
	environment string
}

func NewHealthHandler(mon *monitor.Monitor, version, environment string, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		monitor:     mon,
		version:     version,
		environment: environment,
	}
}

// @Summary Health check
// @Tags health
// @Router /health [get]
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	payload := map[string]interface{}{
		"status":         "healthy",
		"timestamp":      time.Now().UTC(),
		"uptime_seconds": int64(h.monitor.Uptime().Seconds()),
		"version":        h.version,
		"environment":    h.environment,
	}
	h.respondSuccess(ctx, http.StatusOK, payload)
}
