package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dog-viewer/internal/adapters/catalog/dogceo"
	mem "dog-viewer/internal/adapters/storage/memory"
	"dog-viewer/internal/platform/config"
	"dog-viewer/internal/platform/logger"
	"dog-viewer/internal/router"
)

// @title        Dog Viewer API
// @version      1.0
// @description  Mounts dog viewers that fetch breeds and random images from dog.ceo.
// @BasePath     /
func main() {
	dotenvErr := config.LoadDotEnv()

	cfg := config.FromEnv()
	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
	})
	defer func() { _ = log.Sync() }()

	if dotenvErr != nil {
		log.Warn("could not load .env, using system env", map[string]any{"error": dotenvErr})
	}

	h, err := router.NewRouter(router.Options{
		Logger: log,
		CatalogConfig: dogceo.Config{
			BaseURL: cfg.DogAPIBaseURL,
			Timeout: cfg.DogAPITimeout,
		},
		ViewerRepo: mem.ViewerRepoConfig{
			TTL:        cfg.ViewerTTL,
			MaxViewers: cfg.MaxViewers,
		},
	})
	if err != nil {
		log.Error("router setup failed", map[string]any{"error": err})
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      h,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 40 * time.Second, // ?wait=true puede bloquear hasta 30s
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Info("starting server", map[string]any{
		"addr":        cfg.Addr,
		"dog_api_url": cfg.DogAPIBaseURL,
	})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", map[string]any{"error": err})
		os.Exit(1)
	}
	log.Info("server stopped", nil)
}
