package main

import (
	"log"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/Achyut17/Mrbeast-Dashboard/internal/cache"
	"github.com/Achyut17/Mrbeast-Dashboard/internal/config"
	"github.com/Achyut17/Mrbeast-Dashboard/internal/handler"
	"github.com/Achyut17/Mrbeast-Dashboard/internal/middleware"
	"github.com/Achyut17/Mrbeast-Dashboard/internal/router"
	"github.com/Achyut17/Mrbeast-Dashboard/internal/service"
	"github.com/Achyut17/Mrbeast-Dashboard/internal/youtube"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}
	if _, errMsg := middleware.ValidateChannelID(cfg.ChannelID); errMsg != "" {
		log.Fatalf("configuration error: %s", errMsg)
	}

	middleware.InitLogger(cfg.LogLevel, "channel-dashboard")
	handler.InitMetrics()

	// Response cache: shared Redis when configured, in-process otherwise.
	var store cache.Store
	var rdb *redis.Client
	if cfg.RedisURL != "" {
		redisStore := cache.NewRedis(cfg.RedisURL, cfg.CacheTTL)
		defer redisStore.Close()
		rdb = redisStore.Client()
		store = redisStore
	} else {
		memStore := cache.NewMemory(cfg.CacheTTL)
		defer memStore.Stop()
		store = memStore
	}

	client := youtube.NewClient(cfg.APIKey, handler.InstrumentStore(store),
		// The provider budgets quota per day; 5 req/s keeps cold windows
		// well under it while staying invisible to cached traffic.
		youtube.WithRateLimiter(rate.NewLimiter(rate.Limit(5), 10)),
		youtube.WithRequestHook(func(resource string, status int) {
			handler.Metrics.ProviderRequests.WithLabelValues(resource, statusLabel(status)).Inc()
		}),
	)

	channelSvc := service.NewChannelService(client, cfg.ChannelID)

	h := &router.Handlers{
		Channel: handler.NewChannelHandler(channelSvc),
		Video:   handler.NewVideoHandler(channelSvc),
		Stats:   handler.NewStatsHandler(channelSvc),
		Export:  handler.NewExportHandler(channelSvc),
		Health:  handler.NewHealthHandler(rdb),
	}

	app := fiber.New(fiber.Config{
		AppName:      "Channel Analytics API",
		ServerHeader: "channel-dashboard",
	})
	router.Setup(app, h, cfg.CORSOrigins)

	middleware.Logger.Info().
		Str("port", cfg.Port).
		Str("env", cfg.Environment).
		Str("channel", cfg.ChannelID).
		Msg("starting channel analytics backend")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

func statusLabel(status int) string {
	if status == 0 {
		return "transport_error"
	}
	return strconv.Itoa(status)
}
