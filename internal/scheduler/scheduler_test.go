package scheduler

import (
	"context"
	"log/slog"
	"testing"

	"crypto-tracker-backend/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

type noopRefresher struct{}

func (noopRefresher) Refresh(context.Context) error { return nil }

func TestAddRefreshJob_InvalidSpec(t *testing.T) {
	s := New(slog.Default(), metrics.New(prometheus.NewRegistry()))
	defer s.Stop()

	err := s.AddRefreshJob(context.Background(), "not a cron spec", "bad", noopRefresher{})
	if err == nil {
		t.Fatal("expected error for invalid cron spec")
	}
}

func TestAddRefreshJob_ValidSpec(t *testing.T) {
	s := New(slog.Default(), metrics.New(prometheus.NewRegistry()))
	defer s.Stop()

	if err := s.AddRefreshJob(context.Background(), "0 0 */12 * * *", "supported_currencies", noopRefresher{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
