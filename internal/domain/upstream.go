package domain

import "github.com/shopspring/decimal"

// Сырые структуры ответов CoinGecko. Сервисы принимают их от клиента
// и приводят к клиентским моделям выше.

// MarketChart — ответ /coins/{id}/market_chart/range.
// Каждая точка — пара [epoch_millis, price]; порядок — как отдал API.
type MarketChart struct {
	Prices       [][]decimal.Decimal `json:"prices"`
	MarketCaps   [][]decimal.Decimal `json:"market_caps"`
	TotalVolumes [][]decimal.Decimal `json:"total_volumes"`
}

// MarketRow — строка ответа /coins/markets.
type MarketRow struct {
	ID           string          `json:"id"`
	Symbol       string          `json:"symbol"`
	CurrentPrice decimal.Decimal `json:"current_price"`
}

// CoinDocument — вложенный документ /coins/{id}.
// Указатели и nil-карты отличают отсутствующие поля от нулевых значений.
type CoinDocument struct {
	Symbol     string              `json:"symbol"`
	MarketData *CoinDocumentMarket `json:"market_data"`
}

type CoinDocumentMarket struct {
	MarketCap         map[string]decimal.Decimal `json:"market_cap"`
	TotalVolume       map[string]decimal.Decimal `json:"total_volume"`
	CirculatingSupply *decimal.Decimal           `json:"circulating_supply"`
}
