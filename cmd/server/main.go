package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/hackathon/starter-api/internal/api"
	"github.com/hackathon/starter-api/internal/config"
	"github.com/hackathon/starter-api/internal/db"
	"github.com/hackathon/starter-api/internal/metrics"
	"github.com/hackathon/starter-api/internal/ratelimiter"
)

func main() {
	// ---- configuration ----
	cfg, err := config.Load()
	if err != nil {
		boot, _ := zap.NewProduction()
		boot.Fatal("failed to load config", zap.Error(err))
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	logger, err := zcfg.Build()
	if err != nil {
		panic(err)
	}
	defer logger.Sync() //nolint:errcheck

	// ---- core dependencies ----
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	onOK, onFailed := m.ProbeHooks()
	prober := db.NewProber(cfg.DatabaseURL, logger.Named("db"),
		db.WithLimiter(ratelimiter.New(cfg.DBPingRate)),
		db.WithHooks(db.Hooks{OnOK: onOK, OnFailed: onFailed}),
	)
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL is not set; /api/db/ping will report failure")
	}

	// ---- HTTP server ----
	router := api.NewRouter(cfg, prober, reg, logger)
	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("env", cfg.AppEnv),
			zap.Strings("cors_origins", cfg.CORSOrigins),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// ---- graceful shutdown ----
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped cleanly")
}
