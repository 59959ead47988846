package currency

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	derrors "crypto-tracker-backend/internal/errors"
)

//go:generate mockgen -destination=mocks/currency_provider_mock.go -package=mocks crypto-tracker-backend/internal/service/currency CurrencyProvider

// CurrencyProvider — источник списка поддерживаемых валют котировки.
type CurrencyProvider interface {
	SupportedVsCurrencies(ctx context.Context) ([]string, error)
}

// Cache — множество поддерживаемых валют с ленивой загрузкой.
// Много конкурентных читателей, один писатель; Refresh подменяет карту
// целиком по ссылке, после публикации карта не мутируется. Протухший
// набор безопаснее пустого: неудачный Refresh не вытесняет прежний.
type Cache struct {
	provider CurrencyProvider
	logger   *slog.Logger

	mu    sync.RWMutex
	codes map[string]struct{} // nil, пока не было успешной загрузки
}

func NewCache(provider CurrencyProvider, logger *slog.Logger) *Cache {
	return &Cache{
		provider: provider,
		logger:   logger,
	}
}

// IsValid — входит ли код в текущий набор поддерживаемых валют.
// Пустой код отклоняется без обращения к API; при холодном старте
// набор загружается здесь же, и ошибка загрузки отдаётся вызывающему.
func (c *Cache) IsValid(ctx context.Context, code string) (bool, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return false, nil
	}

	codes, err := c.snapshot(ctx)
	if err != nil {
		return false, err
	}

	_, ok := codes[strings.ToLower(code)]
	return ok, nil
}

// Refresh — безусловная перезагрузка набора из API с атомарной подменой.
// Фоновые запуски планировщика игнорируют возвращённую ошибку — она
// нужна только пути холодного старта.
func (c *Cache) Refresh(ctx context.Context) error {
	list, err := c.provider.SupportedVsCurrencies(ctx)
	if err != nil {
		return fmt.Errorf("fetch supported currencies: %w", err)
	}

	next := make(map[string]struct{}, len(list))
	for _, code := range list {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		next[strings.ToLower(code)] = struct{}{}
	}

	if len(next) == 0 {
		c.logger.Warn("currency refresh returned empty list, keeping previous set")
		return fmt.Errorf("%w: empty supported currencies response", derrors.ErrDataUnavailable)
	}

	c.mu.Lock()
	c.codes = next
	c.mu.Unlock()

	c.logger.Info("supported currencies refreshed", "count", len(next))
	return nil
}

// snapshot — текущая карта; при первом обращении загружает её из API.
// Гонка двух ленивых загрузок безвредна: обе читают один источник,
// побеждает последняя запись.
func (c *Cache) snapshot(ctx context.Context) (map[string]struct{}, error) {
	c.mu.RLock()
	codes := c.codes
	c.mu.RUnlock()
	if codes != nil {
		return codes, nil
	}

	if err := c.Refresh(ctx); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.codes, nil
}
