package history

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"crypto-tracker-backend/internal/domain"
	derrors "crypto-tracker-backend/internal/errors"
	"crypto-tracker-backend/internal/pkg/timeconv"
)

//go:generate mockgen -destination=mocks/chart_provider_mock.go -package=mocks crypto-tracker-backend/internal/service/history ChartProvider

// ChartProvider — источник сырых исторических серий.
type ChartProvider interface {
	MarketChartRange(ctx context.Context, symbol, currency string, from, to int64) (*domain.MarketChart, error)
}

// Демо-тариф CoinGecko не принимает interval=daily: дневные точки
// приходят только когда окно запроса длиннее 90 дней.
const dailyGranularityThresholdDays = 90

// widenedSpanDays — до скольких дней расширяем окно запроса,
// чтобы гарантированно перешагнуть порог.
const widenedSpanDays = 91

// Service — резолвер исторических диапазонов: расширяет короткое окно
// запроса к API и обрезает результат обратно до запрошенного.
type Service struct {
	provider ChartProvider
	logger   *slog.Logger
}

func NewService(provider ChartProvider, logger *slog.Logger) *Service {
	return &Service{
		provider: provider,
		logger:   logger,
	}
}

// HistoricalPrices — дневные цены символа за [start, end] включительно.
// Если данных у API хватает, точек ровно (end-start)+1; более короткая
// серия отдаётся как есть, без добивки.
func (s *Service) HistoricalPrices(ctx context.Context, symbol, currency string, start, end time.Time) ([]domain.PricePoint, error) {
	requestedDays := timeconv.DaysBetween(start, end)
	if requestedDays < 0 {
		return nil, fmt.Errorf("%w: start %s is after end %s",
			derrors.ErrInvalidDateRange, start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	// Расширенный конец окна используется только в запросе к API
	// и никогда не попадает в ответ.
	queryEnd := end
	if requestedDays <= dailyGranularityThresholdDays {
		queryEnd = start.AddDate(0, 0, widenedSpanDays)
		s.logger.Warn("adjusted end date due to upstream granularity limit",
			"symbol", symbol,
			"query_end", queryEnd.Format("2006-01-02"),
		)
	}

	chart, err := s.provider.MarketChartRange(ctx, symbol, strings.ToLower(currency),
		timeconv.DateToUnix(start), timeconv.DateToUnix(queryEnd))
	if err != nil {
		return nil, err
	}
	if chart == nil || chart.Prices == nil {
		return nil, fmt.Errorf("%w: no price series for symbol %s", derrors.ErrDataUnavailable, symbol)
	}

	series := chart.Prices
	if len(series) > requestedDays+1 {
		series = series[:requestedDays+1]
		s.logger.Warn("truncated widened series back to requested window",
			"symbol", symbol,
			"points", len(series),
		)
	}

	ccy := strings.ToUpper(currency)
	out := make([]domain.PricePoint, 0, len(series))
	for _, point := range series {
		if len(point) < 2 {
			return nil, fmt.Errorf("%w: price point of arity %d for symbol %s",
				derrors.ErrDataMalformed, len(point), symbol)
		}
		out = append(out, domain.PricePoint{
			Date:     timeconv.MillisToDate(point[0].IntPart()),
			Price:    point[1].RoundBank(2),
			Currency: ccy,
		})
	}
	return out, nil
}
