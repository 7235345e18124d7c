package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/Achyut17/Mrbeast-Dashboard/internal/handler"
	"github.com/Achyut17/Mrbeast-Dashboard/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Channel *handler.ChannelHandler
	Video   *handler.VideoHandler
	Stats   *handler.StatsHandler
	Export  *handler.ExportHandler
	Health  *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(handler.MetricsMiddleware())
	app.Use(middleware.NewCORS(corsOrigins))

	// Health checks (before API group)
	app.Get("/health/live", h.Health.Live)
	app.Get("/health/ready", h.Health.Ready)

	// Prometheus
	app.Get("/metrics", handler.MetricsHandler())

	reportLimit := middleware.NewReportRateLimiter().Handler()
	commentsLimit := middleware.NewCommentsRateLimiter().Handler()

	// API routes
	api := app.Group("/api")

	// Channel-level view
	api.Get("/channel", h.Channel.GetReport, reportLimit)

	// Video-level view
	api.Get("/videos", h.Video.List, reportLimit)
	api.Get("/videos/top", h.Video.Top, reportLimit)
	api.Get("/videos/export", h.Export.Export, reportLimit)
	api.Get("/videos/:videoId/comments", h.Video.Comments, commentsLimit)

	// Cross-metric statistics
	api.Get("/stats/correlations", h.Stats.GetCorrelations, reportLimit)
}
