package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/Postmodum37/searchy/internal/api/handler"
	"github.com/Postmodum37/searchy/internal/api/middleware"
	"github.com/Postmodum37/searchy/internal/cache"
	"github.com/Postmodum37/searchy/internal/config"
	"github.com/Postmodum37/searchy/internal/infrastructure/metrics"
	"github.com/Postmodum37/searchy/internal/infrastructure/ytdlp"
	"github.com/Postmodum37/searchy/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	store := cache.New(cfg.Cache.DefaultTTL)
	metrics.RegisterCacheSize(store.Size)

	extractor := ytdlp.New(ytdlp.Config{
		BinPath:          cfg.YouTube.BinPath,
		AgeLimit:         cfg.YouTube.AgeLimit,
		DefaultBrowser:   cfg.YouTube.DefaultBrowser,
		FallbackBrowsers: cfg.YouTube.FallbackBrowsers,
		AttemptTimeout:   cfg.YouTube.ExtractTimeout,
		MaxConcurrent:    cfg.YouTube.MaxConcurrent,
	})

	svc := usecase.NewVideoService(extractor, usecase.VideoServiceConfig{
		DefaultSearchLimit: cfg.Search.DefaultLimit,
		MaxSearchLimit:     cfg.Search.MaxLimit,
		AudioURLValidity:   cfg.YouTube.AudioURLValidity,
	})
	cachedSvc := usecase.NewCachedVideoService(svc, store, usecase.CachedVideoServiceConfig{
		SearchTTL:          cfg.Cache.SearchTTL,
		VideoTTL:           cfg.Cache.VideoTTL,
		DefaultSearchLimit: cfg.Search.DefaultLimit,
	})

	r := setupRouter(logger, cfg, cachedSvc, store)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting server",
			slog.String("service", cfg.API.Title),
			slog.String("version", cfg.API.Version),
			slog.Int("port", cfg.Server.Port),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return runCacheJanitor(gctx, logger, store, cfg.Cache.CleanupInterval)
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server shutdown error: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}

// runCacheJanitor periodically sweeps expired cache entries so memory is not
// held by entries nobody reads again.
func runCacheJanitor(ctx context.Context, logger *slog.Logger, store *cache.Store, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if removed := store.CleanupExpired(); removed > 0 {
				logger.Debug("cache sweep",
					slog.Int("removed", removed),
					slog.Int("remaining", store.Size()),
				)
			}
		}
	}
}

func setupRouter(logger *slog.Logger, cfg *config.Config, svc usecase.VideoService, store *cache.Store) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recoverer(logger))

	r.Get("/", handler.Info(cfg.API.Title, cfg.API.Version, cfg.API.Description))
	r.Get("/health", handler.Health(cfg.API.Version))
	r.Handle("/metrics", promhttp.Handler())

	vh := handler.NewVideoHandler(svc)
	r.Get("/search", vh.Search)
	r.Route("/videos", func(r chi.Router) {
		r.Get("/{id}", vh.Get)
		r.Get("/{id}/audio", vh.Audio)
	})

	ch := handler.NewCacheHandler(store)
	r.Delete("/cache", ch.Clear)
	r.Get("/cache/stats", ch.Stats)

	return r
}
