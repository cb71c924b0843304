package main

import (
	"context"
	"log"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	apiHandler "github.com/questtrack/backend/api/handler"
	"github.com/questtrack/backend/internal/config"
	"github.com/questtrack/backend/internal/middleware"
	"github.com/questtrack/backend/internal/monitor"
	"github.com/questtrack/backend/internal/router"
	"github.com/questtrack/backend/internal/services/lifecycle"
	"github.com/questtrack/backend/pkg/httpcontext"
	"github.com/questtrack/backend/pkg/logger"
	"github.com/questtrack/backend/repository/memory"
	categoryUC "github.com/questtrack/backend/usecase/category"
	playerUC "github.com/questtrack/backend/usecase/player"
	questUC "github.com/questtrack/backend/usecase/quest"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	zapLogger, err := logger.New(logger.Config{
		Level:    cfg.Logger.Level,
		Encoding: cfg.Logger.Encoding,
	})
	if err != nil {
		log.Fatalf("logger error: %v", err)
	}
	defer zapLogger.Sync()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()

	manager := lifecycle.New(cfg.Context.ShutdownTimeout, zapLogger)
	manager.Listen(cancel)

	mon := monitor.New()

	questRepo := memory.NewQuestRepository(memory.SeedQuests())
	playerRepo := memory.NewPlayerRepository(memory.SeedPlayers(time.Now().UTC()))
	categoryRepo := memory.NewCategoryRepository(memory.SeedCategories(), memory.SeedCategoryStats())

	questUseCase := questUC.New(questRepo, zapLogger)
	playerUseCase := playerUC.New(playerRepo, zapLogger)
	categoryUseCase := categoryUC.New(categoryRepo, zapLogger)

	ctxAdapter := httpcontext.NewAdapter(cfg.Context.RequestTimeout)

	handlers := router.Handlers{
		Quest:    apiHandler.NewQuestHandler(questUseCase, ctxAdapter, zapLogger),
		Player:   apiHandler.NewPlayerHandler(playerUseCase, ctxAdapter, zapLogger),
		Category: apiHandler.NewCategoryHandler(categoryUseCase, ctxAdapter, zapLogger),
		Health:   apiHandler.NewHealthHandler(mon, cfg.Version, cfg.Environment, ctxAdapter, zapLogger),
		Meta:     apiHandler.NewMetaHandler(mon, cfg.Version, demoKey(cfg), ctxAdapter, zapLogger),
	}

	limiter := middleware.NewFixedWindowLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)

	r := router.New(handlers, router.Middlewares{
		RateLimit: limiter.Middleware(zapLogger),
		Auth:      middleware.APIKeyAuth(cfg.Auth.Keys, zapLogger),
		Count:     middleware.CountRequests(mon),
	})

	server := &fasthttp.Server{
		Handler:      r.Handler,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
		Name:         cfg.AppName,
	}

	go func() {
		zapLogger.Info("server started",
			zap.String("address", cfg.Address()),
			zap.String("environment", cfg.Environment),
			zap.Int("seed_quests", len(memory.SeedQuests())),
		)
		if err := server.ListenAndServe(cfg.Address()); err != nil {
			zapLogger.Fatal("server crashed", zap.Error(err))
		}
	}()

	manager.Register("http_server", func(ctx context.Context) error {
		return server.Shutdown()
	})

	<-appCtx.Done()

	if err := manager.Shutdown(context.Background()); err != nil {
		zapLogger.Error("graceful shutdown error", zap.Error(err))
	}
}

// demoKey picks the key advertised on the root endpoint for first-time callers.
func demoKey(cfg *config.Config) string {
	if len(cfg.Auth.Keys) > 0 {
		return cfg.Auth.Keys[0]
	}
	return ""
}
