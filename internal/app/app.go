package app

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"crypto-tracker-backend/internal/config"
	"crypto-tracker-backend/internal/infra/coingecko"
	"crypto-tracker-backend/internal/metrics"
	"crypto-tracker-backend/internal/scheduler"
	"crypto-tracker-backend/internal/service/currency"
	"crypto-tracker-backend/internal/service/history"
	"crypto-tracker-backend/internal/service/market"
	"crypto-tracker-backend/internal/transport/httptransport"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type App struct {
	cfg config.Config
	log *slog.Logger

	e    *echo.Echo
	serv *http.Server

	currencies *currency.Cache
	history    *history.Service
	market     *market.Service

	cron *scheduler.Scheduler
}

func NewApp(cfg config.Config, log *slog.Logger) (*App, error) {
	app := &App{cfg: cfg, log: log}

	client := coingecko.NewClient(coingecko.Config{
		BaseURL:      cfg.CoinGecko.BaseURL,
		APIKeyHeader: cfg.CoinGecko.APIKeyHeader,
		APIKey:       cfg.CoinGecko.APIKey,
		Timeout:      cfg.CoinGecko.Timeout,
		UserAgent:    cfg.CoinGecko.UserAgent,
	})

	app.currencies = currency.NewCache(client, log)
	app.history = history.NewService(client, log)
	app.market = market.NewService(client, log)

	m := metrics.New(prometheus.DefaultRegisterer)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(httptransport.MetricsMiddleware(m))
	app.e = e

	h := httptransport.NewHandler(log, app.history, app.market, app.currencies, cfg.Server.RequestTimeout)
	h.RegisterRoutes(e)

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	app.serv = &http.Server{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Handler:      e,
	}

	app.cron = scheduler.New(log, m)

	log.Info("app initialized",
		slog.String("http_addr", cfg.Server.Addr),
		slog.Bool("currency_refresh_enabled", cfg.CurrencyCache.Enabled),
	)
	return app, nil
}

func (a *App) Run(ctx context.Context) error {
	if a.cfg.CurrencyCache.Enabled {
		if err := a.cron.AddRefreshJob(ctx, a.cfg.CurrencyCache.RefreshCron, "supported_currencies", a.currencies); err != nil {
			return err
		}
		a.cron.Start()

		// Прогрев на старте: неудача не фатальна, кэш догрузится лениво
		// при первой валидации.
		go func() {
			if err := a.currencies.Refresh(ctx); err != nil {
				a.log.Warn("initial currency warm-up failed", slog.String("error", err.Error()))
			}
		}()
	}

	a.log.Info("starting server", slog.String("addr", a.cfg.Server.Addr))
	go func() {
		if err := a.e.StartServer(a.serv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.log.Error("http server error", slog.String("error", err.Error()))
		}
	}()
	<-ctx.Done()
	return a.Shutdown(context.Background())
}

func (a *App) Shutdown(ctx context.Context) error {
	shCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()

	if a.cron != nil {
		a.cron.Stop()
	}

	if a.e != nil {
		if err := a.e.Shutdown(shCtx); err != nil {
			a.log.Error("http shutdown error", slog.String("error", err.Error()))
		}
	}

	a.log.Info("application stopped")
	return nil
}
