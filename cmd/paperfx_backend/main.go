package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coocood/freecache"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/paperfx/paperfx_app/internal/adapters/sources"
	"github.com/paperfx/paperfx_app/internal/adapters/storage/jsonfile"
	"github.com/paperfx/paperfx_app/internal/app/background"
	portssvc "github.com/paperfx/paperfx_app/internal/core/ports/services"
	"github.com/paperfx/paperfx_app/internal/core/services"
	"github.com/paperfx/paperfx_app/internal/handlers"
	"github.com/paperfx/paperfx_app/internal/infrastructure/events"
	"github.com/paperfx/paperfx_app/internal/middleware"
	"github.com/paperfx/paperfx_app/internal/platform/cache"
	"github.com/paperfx/paperfx_app/internal/platform/config"
	"github.com/paperfx/paperfx_app/internal/utils"
	"github.com/paperfx/paperfx_app/pkg/jsonstore"
)

// @title PaperFX Backend API
// @version 1.0
// @description Paper-trading backend for fiat and crypto currencies.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// Document store for snapshots, history, portfolios and users.
	store, err := jsonstore.New(cfg.DataDir)
	if err != nil {
		logger.Error("Failed to initialize data store", slog.String("error", err.Error()))
		os.Exit(1)
	}
	repos := jsonfile.NewRepositoryProvider(store)

	// Response cache for the upstream source clients: Redis when an address
	// is configured, in-process freecache otherwise.
	responseCache, cacheCleanup := buildResponseCache(cfg, logger)
	defer cacheCleanup()

	sourceClients := buildSourceClients(cfg, responseCache, logger)

	container := services.NewServiceContainer(cfg, repos, sourceClients)

	posthogClient := utils.InitializePosthogClient(cfg.PosthogAPIKey, logger)
	defer posthogClient.Close()

	tradePublisher := events.NewTradePublisher(cfg.KafkaBrokers, cfg.KafkaTradesTopic, logger)
	defer func() {
		if err := tradePublisher.Close(); err != nil {
			logger.Error("Error closing trade publisher", slog.String("error", err.Error()))
		}
	}()

	r := gin.New()
	r.Use(
		middleware.StructuredLoggingMiddleware(logger),
		gin.Recovery(),
		cors.New(buildCORSConfig(cfg)),
	)
	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container, tradePublisher, posthogClient)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.EnableBackground {
		refresher := background.NewRateRefresher(container.Updater, cfg.RefreshInterval, logger)
		go refresher.Run(ctx)
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}
	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced shutdown", slog.String("error", err.Error()))
	}
	logger.Info("Server stopped")
}

// buildResponseCache selects the cache backend for upstream responses.
func buildResponseCache(cfg *config.Config, logger *slog.Logger) (cache.Cache, func()) {
	if !cfg.CacheEnabled {
		// Sources still need somewhere to park stale-fallback data, and
		// freecache caps one entry at 1/1024 of the cache size, so a full
		// upstream payload needs the configured size even here.
		return cache.NewFreeCache(freecache.NewCache(cfg.CacheSizeMB * 1024 * 1024)), func() {}
	}
	if cfg.RedisAddr != "" {
		redisCache, cleanup, err := cache.NewRedisCache(logger, cfg.RedisAddr, cfg.RedisDB)
		if err == nil {
			logger.Info("Using Redis response cache", slog.String("addr", cfg.RedisAddr))
			return redisCache, cleanup
		}
		logger.Warn("Redis unavailable, falling back to in-process cache", slog.String("error", err.Error()))
	}
	return cache.NewFreeCache(freecache.NewCache(cfg.CacheSizeMB * 1024 * 1024)), func() {}
}

// buildSourceClients wires the upstream clients behind their response caches.
func buildSourceClients(cfg *config.Config, responseCache cache.Cache, logger *slog.Logger) []portssvc.RateSourceClient {
	clients := []portssvc.RateSourceClient{
		sources.NewCachedClient(
			sources.NewCoinGeckoClient(cfg.CoinGeckoURL, cfg.HTTPClientTimeout),
			responseCache, cfg.CryptoCacheTTL, logger,
		),
	}
	if cfg.ExchangeRateAPIKey != "" {
		clients = append(clients, sources.NewCachedClient(
			sources.NewExchangeRateAPIClient(cfg.ExchangeRateAPIURL, cfg.ExchangeRateAPIKey, cfg.HTTPClientTimeout),
			responseCache, cfg.FiatCacheTTL, logger,
		))
	}
	return clients
}

func buildCORSConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-Request-ID")
	if len(cfg.CORSAllowedOrigins) == 1 && cfg.CORSAllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
		return corsCfg
	}
	corsCfg.AllowOrigins = cfg.CORSAllowedOrigins
	return corsCfg
}
