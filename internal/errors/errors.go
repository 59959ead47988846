package errors

import "errors"

var (
	// ErrUpstreamUnavailable — сетевая ошибка или не-2xx от CoinGecko.
	ErrUpstreamUnavailable = errors.New("upstream API unavailable")
	// ErrDataUnavailable — API ответил, но нужных данных нет.
	ErrDataUnavailable = errors.New("cryptocurrency data not found")
	// ErrDataMalformed — API нарушил контракт: документ структурно неполный.
	ErrDataMalformed = errors.New("cryptocurrency data invalid or malformed")
	ErrInvalidCurrency  = errors.New("unsupported currency")
	ErrInvalidDateRange = errors.New("invalid date range")
)
