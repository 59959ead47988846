package market

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"crypto-tracker-backend/internal/domain"
	derrors "crypto-tracker-backend/internal/errors"
	"crypto-tracker-backend/internal/service/market/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

func setupSvc(t *testing.T) (context.Context, *gomock.Controller, *mocks.MockMarketProvider, *Service) {
	t.Helper()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	provider := mocks.NewMockMarketProvider(ctrl)
	svc := NewService(provider, slog.Default())
	return ctx, ctrl, provider, svc
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestPrices_UppercasesSymbolsAndCurrency(t *testing.T) {
	ctx, ctrl, provider, svc := setupSvc(t)
	defer ctrl.Finish()

	rows := []domain.MarketRow{
		{ID: "bitcoin", Symbol: "btc", CurrentPrice: dec("42000.5")},
		{ID: "ethereum", Symbol: "eth", CurrentPrice: dec("2200.01")},
	}
	// валюта в запросе к API — нижним регистром
	provider.EXPECT().
		Markets(gomock.Any(), "eur", []string{"bitcoin", "ethereum"}).
		Return(rows, nil)

	got, err := svc.Prices(ctx, "EUR", []string{"bitcoin", "ethereum"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 prices, got %d", len(got))
	}
	if got[0].Symbol != "BTC" || got[0].Currency != "EUR" {
		t.Fatalf("expected BTC/EUR, got %s/%s", got[0].Symbol, got[0].Currency)
	}
	if !got[0].Price.Equal(dec("42000.5")) {
		t.Fatalf("price must pass through unchanged, got %s", got[0].Price)
	}
}

func TestPrices_ProviderError(t *testing.T) {
	ctx, ctrl, provider, svc := setupSvc(t)
	defer ctrl.Finish()

	provider.EXPECT().
		Markets(gomock.Any(), "usd", gomock.Nil()).
		Return(nil, derrors.ErrUpstreamUnavailable)

	_, err := svc.Prices(ctx, "usd", nil)
	if !errors.Is(err, derrors.ErrUpstreamUnavailable) {
		t.Fatalf("expected ErrUpstreamUnavailable, got %v", err)
	}
}

func TestCoinsList_PassThrough(t *testing.T) {
	ctx, ctrl, provider, svc := setupSvc(t)
	defer ctrl.Finish()

	list := []domain.CoinListing{{ID: "bitcoin", Symbol: "btc", Name: "Bitcoin"}}
	provider.EXPECT().CoinsList(gomock.Any()).Return(list, nil)

	got, err := svc.CoinsList(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "bitcoin" {
		t.Fatalf("unexpected list: %+v", got)
	}
}

func marketDoc() *domain.CoinDocument {
	supply := dec("19600000")
	return &domain.CoinDocument{
		Symbol: "btc",
		MarketData: &domain.CoinDocumentMarket{
			MarketCap:         map[string]decimal.Decimal{"usd": dec("800000000000"), "eur": dec("740000000000")},
			TotalVolume:       map[string]decimal.Decimal{"usd": dec("35000000000"), "eur": dec("32000000000")},
			CirculatingSupply: &supply,
		},
	}
}

func TestMarketData_Success(t *testing.T) {
	ctx, ctrl, provider, svc := setupSvc(t)
	defer ctrl.Finish()

	provider.EXPECT().CoinByID(gomock.Any(), "bitcoin").Return(marketDoc(), nil)

	got, err := svc.MarketData(ctx, "bitcoin", "eur")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Symbol != "BTC" || got.Currency != "EUR" {
		t.Fatalf("expected BTC/EUR, got %s/%s", got.Symbol, got.Currency)
	}
	if got.MarketCap != 740000000000 {
		t.Fatalf("market cap must be picked by lowercase currency key, got %d", got.MarketCap)
	}
	if got.CirculatingSupply != 19600000 {
		t.Fatalf("unexpected circulating supply: %d", got.CirculatingSupply)
	}
}

// Нет symbol или market_data — API сломал контракт.
func TestMarketData_MalformedDocument(t *testing.T) {
	ctx, ctrl, provider, svc := setupSvc(t)
	defer ctrl.Finish()

	docs := []*domain.CoinDocument{
		nil,
		{Symbol: "", MarketData: &domain.CoinDocumentMarket{}},
		{Symbol: "btc", MarketData: nil},
	}
	provider.EXPECT().CoinByID(gomock.Any(), "bitcoin").Return(docs[0], nil)
	provider.EXPECT().CoinByID(gomock.Any(), "bitcoin").Return(docs[1], nil)
	provider.EXPECT().CoinByID(gomock.Any(), "bitcoin").Return(docs[2], nil)

	for i := range docs {
		_, err := svc.MarketData(ctx, "bitcoin", "usd")
		if err == nil || !errors.Is(err, derrors.ErrDataMalformed) {
			t.Fatalf("case %d: expected ErrDataMalformed, got %v", i, err)
		}
	}
}

// market_data на месте, но вложенных полей нет — данных просто нет.
func TestMarketData_MissingNestedFields(t *testing.T) {
	ctx, ctrl, provider, svc := setupSvc(t)
	defer ctrl.Finish()

	doc := marketDoc()
	doc.MarketData.CirculatingSupply = nil
	provider.EXPECT().CoinByID(gomock.Any(), "bitcoin").Return(doc, nil)

	_, err := svc.MarketData(ctx, "bitcoin", "usd")
	if err == nil || !errors.Is(err, derrors.ErrDataUnavailable) {
		t.Fatalf("expected ErrDataUnavailable, got %v", err)
	}
}
