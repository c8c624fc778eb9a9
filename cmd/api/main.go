package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	_ "ncnews/docs"
	"ncnews/internal/app"
	"ncnews/internal/config"
	"ncnews/internal/logger"

	"github.com/rs/cors"
	"go.uber.org/zap"
)

// @title        NC News API
// @version      1.0
// @description  Articles, topics, users and comments of the NC News site.
// @BasePath     /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Log.Fatal("failed to load config", zap.Error(err))
	}
	if err := logger.InitLogger(cfg); err != nil {
		logger.Log.Fatal("failed to init logger", zap.Error(err))
	}
	defer logger.Log.Sync()

	warnings, err := cfg.Validate()
	if err != nil {
		logger.Log.Fatal("invalid config", zap.Error(err))
	}
	for _, w := range warnings {
		logger.Log.Warn("config", zap.String("warning", w))
	}

	router, cleanup, err := app.InitApp(cfg)
	if err != nil {
		logger.Log.Fatal("failed to init app", zap.Error(err))
	}
	defer cleanup()

	corsMiddleware := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      corsMiddleware.Handler(router),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Log.Info("server started", zap.String("port", cfg.Port), zap.String("env", cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Log.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Error("graceful shutdown failed", zap.Error(err))
	}
}
