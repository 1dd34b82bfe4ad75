package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"trending-board/domain/repository"
	"trending-board/infrastructure/cache"
	youtubeclient "trending-board/infrastructure/clients/youtube"
	"trending-board/infrastructure/configuration"
	"trending-board/infrastructure/logger"
	httpHandler "trending-board/interfaces/http"
	"trending-board/server"
	"trending-board/usecase"

	"golang.org/x/sync/errgroup"
)

var httpServer *http.Server

func recoverPanic() {
	if err := recover(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Application panic recovered")
	}
}

func main() {
	defer recoverPanic()
	ctx := context.Background()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(interrupt)

	g, ctx := errgroup.WithContext(ctx)

	// Load env from files (non-destructive; OS env keeps precedence)
	configuration.LoadEnvFromFile("config.env", ".env")
	config := configuration.NewResolver()

	logger.GetLogger().
		WithField("hasAPIKey", config.GetConfig(configuration.KeyAPIKey, "") != "").
		WithField("authEnabled", config.AuthConfigured()).
		Info("Loaded dashboard configuration state")

	trendingCache := initiateCache(ctx, config)
	trendingClient := youtubeclient.NewClient()
	trendingUsecase := usecase.NewTrendingUsecase(trendingClient, trendingCache)
	authUsecase := usecase.NewAuthUsecase(config)

	dashboardHandler := httpHandler.NewDashboardHandler(authUsecase, trendingUsecase, config)
	router := server.InitiateRouter(dashboardHandler, authUsecase)

	port := resolvePort(config)
	logger.GetLogger().WithField("port", port).Info("Starting application")
	g.Go(func() error {
		httpServer = &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		}
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	select {
	case <-interrupt:
		logger.GetLogger().Info("Application shutdown requested")
	case <-ctx.Done():
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if httpServer != nil {
		_ = httpServer.Shutdown(shutdownCtx)
	}

	if err := g.Wait(); err != nil {
		logger.GetLogger().WithField("error", err).Error("Server returned an error")
		os.Exit(2)
	}
}

// initiateCache picks the cache backend: Redis when REDIS_HOST is configured,
// in-memory otherwise. A failed Redis connection falls back to memory so the
// dashboard still serves.
func initiateCache(ctx context.Context, config *configuration.Resolver) repository.ITrendingCache {
	host := config.GetConfig("REDIS_HOST", "")
	if host == "" {
		return cache.NewTrendingCache()
	}
	addr := fmt.Sprintf("%s:%s", host, config.GetConfig("REDIS_PORT", "6379"))
	client, err := cache.NewRedisClient(ctx, addr,
		config.GetConfig("REDIS_USERNAME", ""),
		config.GetConfig("REDIS_PASSWORD", ""))
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Redis not available - falling back to in-memory cache")
		return cache.NewTrendingCache()
	}
	logger.GetLogger().WithField("addr", addr).Info("Redis trending cache initialized")
	return cache.NewRedisTrendingCache(client, 0)
}

// resolvePort: APP_PORT -> PORT -> default 8501.
func resolvePort(config *configuration.Resolver) int {
	for _, key := range []string{"APP_PORT", "PORT"} {
		if v := config.GetConfig(key, ""); v != "" {
			if p, err := strconv.Atoi(v); err == nil {
				return p
			}
		}
	}
	return 8501
}
