package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/alfat81/fto/internal/config"
	"github.com/alfat81/fto/internal/relay"
	"github.com/alfat81/fto/internal/server"
	"github.com/alfat81/fto/pkg/logger"
)

// ENTRY POINT

func main() {
	// .env is optional, real deployments configure through the environment
	_ = godotenv.Load()

	development := os.Getenv("APP_ENV") != "production"
	zapLogger, err := logger.New(development)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer zapLogger.Sync()

	cfg, err := config.Load()
	if err != nil {
		zapLogger.Fatal("Failed to load config", zap.Error(err))
	}

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	var orderRelay server.OrderRelay
	if cfg.Telegram.Configured() {
		var reporter *relay.Reporter
		if cfg.Reports.Enabled {
			reporter = relay.NewReporter(cfg.Reports.Dir)
		}

		tg, err := relay.NewTelegram(cfg.Telegram, cfg.RelayTimeout, reporter, zapLogger)
		if err != nil {
			zapLogger.Fatal("Failed to create Telegram relay", zap.Error(err))
		}
		orderRelay = tg
	} else {
		zapLogger.Warn("Telegram relay disabled - no token or chat id configured")
	}

	srv := server.New(cfg, orderRelay, zapLogger)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zapLogger.Info("Server started",
			zap.Int("port", cfg.Port),
			zap.String("cors_origin", cfg.CORSOrigin),
			zap.Bool("telegram_configured", cfg.Telegram.Configured()))

		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Server stopped with error", zap.Error(err))
		}
	}()

	<-ctx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Shutdown failed", zap.Error(err))
	}

	zapLogger.Info("Server shutdown gracefully")
}
