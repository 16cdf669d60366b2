package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"

	"github.com/kalasetu/marketplace/internal/application/auth"
	"github.com/kalasetu/marketplace/internal/application/cart"
	"github.com/kalasetu/marketplace/internal/application/catalog"
	"github.com/kalasetu/marketplace/internal/application/dashboard"
	"github.com/kalasetu/marketplace/internal/application/story"
	"github.com/kalasetu/marketplace/internal/infrastructure/postgres"
	"github.com/kalasetu/marketplace/internal/interfaces/web"
	"github.com/kalasetu/marketplace/pkg/config"
	"github.com/kalasetu/marketplace/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("load configuration: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("starting application")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	storyRepo := postgres.NewStoryRepository(pool)
	statsRepo := postgres.NewStatsRepository(pool)

	authUC := auth.NewUseCase(userRepo)
	catalogUC := catalog.NewUseCase(productRepo)
	cartUC := cart.NewUseCase(productRepo)
	storyUC := story.NewUseCase(storyRepo, userRepo, productRepo)
	dashboardUC := dashboard.NewUseCase(statsRepo, productRepo)

	sessions := web.NewSessionManager(cfg.Session)
	media, err := web.NewMediaStore(cfg.Media.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("prepare media directory")
	}

	engine := html.New("./web/views", ".html")
	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		Views:        engine,
		ViewsLayout:  "layouts/main",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: web.NewErrorHandler(log),
	})
	app.Use(recover.New())

	app.Static("/media", media.Dir())
	app.Static("/static", "./web/static")

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	web.Router(app, web.RouterDeps{
		Sessions:    sessions,
		Users:       userRepo,
		AuthUC:      authUC,
		CatalogUC:   catalogUC,
		CartUC:      cartUC,
		StoryUC:     storyUC,
		DashboardUC: dashboardUC,
		Media:       media,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutdown signal received, stopping server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}

	log.Info().Msg("application stopped")
}
