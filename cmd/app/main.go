package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"crypto-tracker-backend/internal/app"
	"crypto-tracker-backend/internal/config"
	"crypto-tracker-backend/pkg/logger"

	"github.com/shopspring/decimal"
)

func main() {

	// context + signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("config load failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log := logger.New(&cfg.Logger)

	// Цены в JSON сериализуем числами, как отдаёт CoinGecko
	decimal.MarshalJSONWithoutQuotes = true

	// build application
	application, err := app.NewApp(*cfg, log)
	if err != nil {
		log.Error("app init failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// run application
	if err := application.Run(ctx); err != nil {
		log.Error("application stopped with error", slog.String("error", err.Error()))
	}

	log.Info("crypto-tracker-backend stopped")
}
