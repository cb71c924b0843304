package router

import (
	"strings"

	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/questtrack/backend/api/handler"
)

type Handlers struct {
	Quest    *apiHandler.QuestHandler
	Player   *apiHandler.PlayerHandler
	Category *apiHandler.CategoryHandler
	Health   *apiHandler.HealthHandler
	Meta     *apiHandler.MetaHandler
}

// Middleware decorates a fasthttp handler.
type Middleware func(fasthttp.RequestHandler) fasthttp.RequestHandler

// Middlewares groups the cross-cutting layers applied to /api/ routes.
// RateLimit runs before Auth; Count runs after Auth so only authenticated
// traffic is counted.
type Middlewares struct {
	RateLimit Middleware
	Auth      Middleware
	Count     Middleware
}

// New builds the route table. Root, health check, and docs skip
// authentication; docs still pays the rate limit like every /api/ path.
func New(handlers Handlers, mw Middlewares) *router.Router {
	r := router.New()

	protected := func(h fasthttp.RequestHandler) fasthttp.RequestHandler {
		return chain(h, mw.RateLimit, mw.Auth, mw.Count)
	}

	// Public surface
	r.GET("/", handlers.Meta.Root)
	r.GET("/health", handlers.Health.Check)
	r.GET("/api/docs", chain(handlers.Meta.Docs, mw.RateLimit))

	// Meta
	r.GET("/api/status", protected(handlers.Meta.Status))
	r.GET("/api/stats", protected(handlers.Meta.Stats))

	// Quests
	r.GET("/api/quests", protected(handlers.Quest.List))
	r.POST("/api/quests", protected(handlers.Quest.Create))
	r.GET("/api/quests/{id}", protected(handlers.Quest.Get))
	r.POST("/api/quests/{id}/complete", protected(handlers.Quest.Complete))

	// Players
	r.GET("/api/players", protected(handlers.Player.Leaderboard))
	r.GET("/api/players/{username}", protected(handlers.Player.Get))
	r.PUT("/api/players/{username}/preferences", protected(handlers.Player.UpdatePreferences))

	// Categories
	r.GET("/api/categories", protected(handlers.Category.List))
	r.GET("/api/categories/{id}", protected(handlers.Category.Get))
	r.GET("/api/categories/{id}/suggestions", protected(handlers.Category.Suggestions))

	// Unknown /api/ paths still pay the rate limit and auth before the
	// 404 suggestion payload; anything outside /api/ falls through bare.
	protectedNotFound := protected(handlers.Meta.NotFound)
	r.NotFound = func(ctx *fasthttp.RequestCtx) {
		if strings.HasPrefix(string(ctx.Path()), "/api/") {
			protectedNotFound(ctx)
			return
		}
		handlers.Meta.NotFound(ctx)
	}

	return r
}

// chain applies middlewares outermost-first, skipping nil entries.
func chain(h fasthttp.RequestHandler, mws ...Middleware) fasthttp.RequestHandler {
	for i := len(mws) - 1; i >= 0; i-- {
		if mws[i] != nil {
			h = mws[i](h)
		}
	}
	return h
}
