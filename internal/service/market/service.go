package market

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"crypto-tracker-backend/internal/domain"
	derrors "crypto-tracker-backend/internal/errors"
)

//go:generate mockgen -destination=mocks/market_provider_mock.go -package=mocks crypto-tracker-backend/internal/service/market MarketProvider

// MarketProvider — источник текущих рыночных данных.
type MarketProvider interface {
	Markets(ctx context.Context, currency string, ids []string) ([]domain.MarketRow, error)
	CoinsList(ctx context.Context) ([]domain.CoinListing, error)
	CoinByID(ctx context.Context, id string) (*domain.CoinDocument, error)
}

// Service — тонкий слой над /coins/*: без ретраев и кэширования,
// каждый вызов идёт в API. Символы и валюта в ответе — верхним регистром.
type Service struct {
	provider MarketProvider
	logger   *slog.Logger
}

func NewService(provider MarketProvider, logger *slog.Logger) *Service {
	return &Service{
		provider: provider,
		logger:   logger,
	}
}

// Prices — текущие цены; symbols фильтрует выдачу, nil — все монеты.
func (s *Service) Prices(ctx context.Context, currency string, symbols []string) ([]domain.CoinPrice, error) {
	rows, err := s.provider.Markets(ctx, strings.ToLower(currency), symbols)
	if err != nil {
		s.logger.Error("failed to fetch market prices", "currency", currency, "err", err)
		return nil, err
	}

	ccy := strings.ToUpper(currency)
	out := make([]domain.CoinPrice, 0, len(rows))
	for _, row := range rows {
		out = append(out, domain.CoinPrice{
			Symbol:   strings.ToUpper(row.Symbol),
			Price:    row.CurrentPrice,
			Currency: ccy,
		})
	}
	return out, nil
}

// CoinsList — полный справочник монет как есть.
func (s *Service) CoinsList(ctx context.Context) ([]domain.CoinListing, error) {
	list, err := s.provider.CoinsList(ctx)
	if err != nil {
		s.logger.Error("failed to fetch coins list", "err", err)
		return nil, err
	}
	return list, nil
}

// MarketData — рыночные показатели монеты в валюте запроса.
// Отличаем сломанный контракт (нет symbol/market_data) от отсутствия
// данных (нет вложенных полей) — клиенту это разные ситуации.
func (s *Service) MarketData(ctx context.Context, id, currency string) (domain.CoinMarketData, error) {
	doc, err := s.provider.CoinByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to fetch coin document", "id", id, "err", err)
		return domain.CoinMarketData{}, err
	}

	if doc == nil || doc.Symbol == "" || doc.MarketData == nil {
		return domain.CoinMarketData{}, fmt.Errorf("%w: invalid or incomplete market data for %s",
			derrors.ErrDataMalformed, id)
	}

	md := doc.MarketData
	if md.MarketCap == nil || md.TotalVolume == nil || md.CirculatingSupply == nil {
		return domain.CoinMarketData{}, fmt.Errorf("%w: market data not found for %s",
			derrors.ErrDataUnavailable, id)
	}

	key := strings.ToLower(currency)
	return domain.CoinMarketData{
		ID:                id,
		Symbol:            strings.ToUpper(doc.Symbol),
		MarketCap:         md.MarketCap[key].IntPart(),
		Volume24h:         md.TotalVolume[key].IntPart(),
		CirculatingSupply: md.CirculatingSupply.IntPart(),
		Currency:          strings.ToUpper(currency),
	}, nil
}
