package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricePoint — одна точка исторического графика цены.
// Цена округлена до 2 знаков, дата — полночь UTC.
type PricePoint struct {
	Date     time.Time
	Price    decimal.Decimal
	Currency string // ISO-код в верхнем регистре (USD, EUR)
}

// CoinPrice — текущая цена монеты в валюте запроса.
type CoinPrice struct {
	Symbol   string
	Price    decimal.Decimal
	Currency string
}

// CoinListing — элемент справочника монет CoinGecko.
type CoinListing struct {
	ID     string `json:"id"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// CoinMarketData — рыночные показатели монеты в валюте запроса.
type CoinMarketData struct {
	ID                string
	Symbol            string
	MarketCap         int64
	Volume24h         int64
	CirculatingSupply int64
	Currency          string
}
