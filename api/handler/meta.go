package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/questtrack/backend/api/transport"
	"github.com/questtrack/backend/internal/monitor"
	"github.com/questtrack/backend/pkg/httpcontext"
)

// MetaHandler serves the discovery surface: root card, API docs, operational
// status, and the usage counters.
type MetaHandler struct {
	baseHandler
	monitor *monitor.Monitor
	version string
	demoKey string
}

func NewMetaHandler(mon *monitor.Monitor, version, demoKey string, adapter *httpcontext.Adapter, logger *zap.Logger) *MetaHandler {
	return &MetaHandler{
		baseHandler: newBaseHandler(adapter, logger),
		monitor:     mon,
		version:     version,
		demoKey:     demoKey,
	}
}

// @Summary Service card
// @Tags meta
// @Router / [get]
func (h *MetaHandler) Root(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"message":       "🏆 Quest Tracker API v" + h.version,
		"documentation": "/api/docs",
		"health_check":  "/health",
		"api_status":    "/api/status",
		"endpoints": map[string]string{
			"quests":     "/api/quests",
			"players":    "/api/players/:username",
			"categories": "/api/categories",
		},
		"authentication": map[string]string{
			"demo_key": h.demoKey,
			"usage":    "Include X-API-Key header or api_key query parameter",
		},
		"version":     h.version,
		"status":      "active",
		"server_time": time.Now().UTC(),
	})
}

// @Summary API documentation
// @Tags meta
// @Router /api/docs [get]
func (h *MetaHandler) Docs(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"title":       "Quest Tracker API Documentation",
		"version":     h.version,
		"description": "A gamified quest management API",
		"authentication": map[string]interface{}{
			"type":   "API Key",
			"header": "X-API-Key",
			"note":   "Include API key in X-API-Key header or api_key query parameter",
		},
		"endpoints": []map[string]string{
			{"method": "GET", "path": "/api/quests", "description": "List quests with filtering, sorting and pagination"},
			{"method": "GET", "path": "/api/quests/:id", "description": "Get one quest by ID"},
			{"method": "POST", "path": "/api/quests", "description": "Create a quest"},
			{"method": "POST", "path": "/api/quests/:id/complete", "description": "Mark a quest as completed"},
			{"method": "GET", "path": "/api/players", "description": "Player leaderboard"},
			{"method": "GET", "path": "/api/players/:username", "description": "Player profile and statistics"},
			{"method": "PUT", "path": "/api/players/:username/preferences", "description": "Update player preferences"},
			{"method": "GET", "path": "/api/categories", "description": "List categories"},
			{"method": "GET", "path": "/api/categories/:id", "description": "Category detail"},
			{"method": "GET", "path": "/api/categories/:id/suggestions", "description": "Generated quest suggestions"},
		},
		"rate_limits": map[string]int{
			"requests_per_15_minutes": 100,
		},
		"error_codes": map[string]string{
			"400": "Bad Request - validation failed or malformed parameter",
			"401": "Unauthorized - invalid or missing API key",
			"404": "Not Found - resource does not exist",
			"429": "Too Many Requests - rate limit exceeded",
			"500": "Internal Server Error",
		},
	})
}

// @Summary API status
// @Tags meta
// @Router /api/status [get]
func (h *MetaHandler) Status(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, map[string]interface{}{
		"api_status": "operational",
		"version":    h.version,
		"endpoints": map[string]string{
			"quests_list":    "GET /api/quests",
			"quest_by_id":    "GET /api/quests/:id",
			"complete_quest": "POST /api/quests/:id/complete",
			"player_profile": "GET /api/players/:username",
			"categories":     "GET /api/categories",
		},
		"rate_limits": map[string]interface{}{
			"requests_per_15_minutes": 100,
			"current_usage":           "Available via /api/stats",
		},
		"authentication": map[string]string{
			"type":   "API Key",
			"header": "X-API-Key",
		},
		"last_updated": time.Now().UTC(),
	})
}

// @Summary Usage counters
// @Tags meta
// @Router /api/stats [get]
func (h *MetaHandler) Stats(ctx *fasthttp.RequestCtx) {
	h.respondSuccess(ctx, http.StatusOK, h.monitor.Snapshot())
}

// NotFound is the fallback for unknown routes.
func (h *MetaHandler) NotFound(ctx *fasthttp.RequestCtx) {
	h.respondJSON(ctx, http.StatusNotFound, transport.NewError(
		"NOT_FOUND",
		fmt.Sprintf("Cannot %s %s", ctx.Method(), ctx.Path()),
		map[string]interface{}{
			"available_endpoints": []string{
				"GET /",
				"GET /health",
				"GET /api/docs",
				"GET /api/quests",
				"GET /api/quests/:id",
				"POST /api/quests",
				"POST /api/quests/:id/complete",
				"GET /api/players",
				"GET /api/players/:username",
				"PUT /api/players/:username/preferences",
				"GET /api/categories",
				"GET /api/categories/:id",
				"GET /api/categories/:id/suggestions",
			},
			"documentation": "/api/docs",
			"hint":          "Check the endpoint URL and HTTP method",
		},
	))
}
