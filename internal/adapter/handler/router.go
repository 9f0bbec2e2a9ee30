package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/jaydenudallucsb/candyverse-sentiment-sparkle/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg             *config.Config
	platformHandler *Platform
	insightHandler  *Insight
	sourceName      string
	startedAt       time.Time
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, platformHandler *Platform, insightHandler *Insight, sourceName string) *Router {
	return &Router{
		cfg:             cfg,
		platformHandler: platformHandler,
		insightHandler:  insightHandler,
		sourceName:      sourceName,
		startedAt:       time.Now(),
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)

	v1 := e.Group("/v1")

	rt.setupPlatformRoutes(v1)
	rt.setupInsightRoutes(v1)
}

// setupPlatformRoutes configures routes over the static dataset
func (rt *Router) setupPlatformRoutes(g *echo.Group) {
	platforms := g.Group("/platforms")
	platforms.GET("", rt.platformHandler.List)
	platforms.GET("/leaderboard", rt.platformHandler.Leaderboard)
	platforms.GET("/:id", rt.platformHandler.Get)
	platforms.GET("/:id/topics", rt.platformHandler.Topics)
	platforms.GET("/:id/trend", rt.platformHandler.Trend)

	g.GET("/competitive-insights", rt.platformHandler.CompetitiveInsights)
	g.GET("/timeline", rt.platformHandler.Timeline)
}

// setupInsightRoutes configures routes derived from the clustering snapshot
func (rt *Router) setupInsightRoutes(g *echo.Group) {
	insights := g.Group("/insights")
	insights.GET("", rt.insightHandler.List)
	insights.GET("/aggregate", rt.insightHandler.Aggregate)
	insights.GET("/venn", rt.insightHandler.Venn)

	clusters := g.Group("/clusters")
	clusters.GET("/:id", rt.insightHandler.Cluster)
	clusters.GET("/:id/delta", rt.insightHandler.Delta)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	environment := ""
	if rt.cfg != nil {
		environment = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": environment,
		"source":      rt.sourceName,
		"uptime":      time.Since(rt.startedAt).Round(time.Second).String(),
	})
}
