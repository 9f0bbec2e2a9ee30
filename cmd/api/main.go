package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	apperrors "github.com/jaydenudallucsb/candyverse-sentiment-sparkle/errors"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/adapter/handler"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/internal/app"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/pkg/config"
	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/pkg/logger"
	pkgvalidator "github.com/jaydenudallucsb/candyverse-sentiment-sparkle/pkg/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Server.Environment, cfg.Log.Level)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	zl.Info("loading sentiment data", zap.String("source_kind", cfg.Source.Kind))
	application, err := app.Bootstrap(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("failed to bootstrap", zap.Error(err))
	}
	defer func() {
		if err := application.Close(); err != nil {
			zl.Warn("failed to release resources", zap.Error(err))
		}
	}()

	e := newServer(cfg, zl, application)

	go func() {
		addr := cfg.GetServerAddr()
		zl.Info("starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
			zap.String("source", application.SourceName),
		)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		zl.Error("server forced to shutdown", zap.Error(err))
		return
	}
	zl.Info("server stopped gracefully")
}

func newServer(cfg *config.Config, zl *zap.Logger, application *app.App) *echo.Echo {
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HTTPErrorHandler = handler.ErrorHandler(zl)
	e.HideBanner = true

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${id} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	e.Use(middleware.Recover())

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderXRequestID},
	}))

	if cfg.Server.RateLimit > 0 {
		e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
			Skipper: func(c echo.Context) bool { return c.Path() == "/health" },
			Store:   middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.Server.RateLimit)),
			DenyHandler: func(c echo.Context, _ string, _ error) error {
				return handler.HandleError(zl, c, apperrors.ErrRateLimited())
			},
			ErrorHandler: func(c echo.Context, err error) error {
				return handler.HandleError(zl, c, apperrors.ErrInvalidArgument("cannot identify client"))
			},
		}))
	}

	platformHandler := handler.NewPlatformHandler(application.Sentiment, zl)
	insightHandler := handler.NewInsightHandler(application.Insight, zl)
	handler.NewRouter(cfg, platformHandler, insightHandler, application.SourceName).Setup(e)

	return e
}
