package scheduler

import (
	"context"
	"fmt"
	"log/slog"

	"crypto-tracker-backend/internal/metrics"

	"github.com/robfig/cron/v3"
)

// Refresher — задача, которую планировщик запускает по расписанию.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Scheduler — фоновые cron-задачи. Ошибки фоновых запусков никогда не
// поднимаются к обработчикам запросов: они логируются и учитываются в
// метриках, прежнее состояние задач сохраняется.
type Scheduler struct {
	cron    *cron.Cron
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New — планировщик с поддержкой секунд в cron-выражениях.
func New(logger *slog.Logger, m *metrics.Metrics) *Scheduler {
	return &Scheduler{
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger,
		metrics: m,
	}
}

// AddRefreshJob — регистрирует периодическое обновление по cron-выражению.
func (s *Scheduler) AddRefreshJob(ctx context.Context, spec, name string, r Refresher) error {
	_, err := s.cron.AddFunc(spec, func() {
		s.metrics.RefreshRunsTotal.WithLabelValues(name).Inc()
		if err := r.Refresh(ctx); err != nil {
			s.metrics.RefreshFailuresTotal.WithLabelValues(name).Inc()
			s.logger.Error("scheduled refresh failed", "job", name, "error", err)
			return
		}
		s.logger.Debug("scheduled refresh completed", "job", name)
	})
	if err != nil {
		return fmt.Errorf("register job %s: %w", name, err)
	}
	return nil
}

// Start — запускает планировщик.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("scheduler started")
}

// Stop — останавливает планировщик; уже идущие задачи дорабатывают.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info("scheduler stopped")
}
