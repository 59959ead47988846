package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"crypto-tracker-backend/internal/domain"
	derrors "crypto-tracker-backend/internal/errors"
)

// Config — настройки клиента CoinGecko.
// Ключ API передаётся в заголовке, имя заголовка зависит от тарифа
// (демо — x-cg-demo-api-key, pro — x-cg-pro-api-key).
type Config struct {
	BaseURL      string
	APIKeyHeader string
	APIKey       string
	Timeout      time.Duration
	UserAgent    string
}

// Client — HTTP-клиент CoinGecko API v3.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient - Создаёт нового клиента для работы с API CoinGecko.
func NewClient(cfg Config) *Client {
	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

// Markets — текущие цены монет: GET /coins/markets.
// Пустой список ids означает «все монеты по капитализации».
func (c *Client) Markets(ctx context.Context, currency string, ids []string) ([]domain.MarketRow, error) {
	q := url.Values{}
	q.Set("vs_currency", strings.ToLower(currency))
	if len(ids) > 0 {
		q.Set("ids", strings.Join(ids, ","))
	}

	var rows []domain.MarketRow
	if err := c.getJSON(ctx, q, &rows, "coins", "markets"); err != nil {
		return nil, err
	}
	return rows, nil
}

// CoinsList — справочник всех монет: GET /coins/list.
func (c *Client) CoinsList(ctx context.Context) ([]domain.CoinListing, error) {
	var list []domain.CoinListing
	if err := c.getJSON(ctx, nil, &list, "coins", "list"); err != nil {
		return nil, err
	}
	return list, nil
}

// MarketChartRange — историческая серия цен за окно [from, to] в секундах
// Unix: GET /coins/{id}/market_chart/range.
func (c *Client) MarketChartRange(ctx context.Context, id, currency string, from, to int64) (*domain.MarketChart, error) {
	q := url.Values{}
	q.Set("vs_currency", strings.ToLower(currency))
	q.Set("from", strconv.FormatInt(from, 10))
	q.Set("to", strconv.FormatInt(to, 10))

	var chart domain.MarketChart
	if err := c.getJSON(ctx, q, &chart, "coins", id, "market_chart", "range"); err != nil {
		return nil, err
	}
	return &chart, nil
}

// CoinByID — документ монеты с рыночными данными: GET /coins/{id}.
// Тикеры и данные сообщества не запрашиваем — нужен только market_data.
func (c *Client) CoinByID(ctx context.Context, id string) (*domain.CoinDocument, error) {
	q := url.Values{}
	q.Set("tickers", "false")
	q.Set("community_data", "false")
	q.Set("developer_data", "false")

	var doc domain.CoinDocument
	if err := c.getJSON(ctx, q, &doc, "coins", id); err != nil {
		return nil, err
	}
	return &doc, nil
}

// SupportedVsCurrencies — список поддерживаемых валют котировки:
// GET /simple/supported_vs_currencies.
func (c *Client) SupportedVsCurrencies(ctx context.Context) ([]string, error) {
	var currencies []string
	if err := c.getJSON(ctx, nil, &currencies, "simple", "supported_vs_currencies"); err != nil {
		return nil, err
	}
	return currencies, nil
}

// getJSON — общий путь запроса: сборка URL, заголовки, проверка статуса,
// декодирование тела. Сетевые ошибки и не-2xx заворачиваются в
// ErrUpstreamUnavailable.
func (c *Client) getJSON(ctx context.Context, query url.Values, out any, segments ...string) error {
	u, err := url.Parse(c.cfg.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base URL: %w", err)
	}
	u.Path, err = url.JoinPath(u.Path, segments...)
	if err != nil {
		return fmt.Errorf("building request path: %w", err)
	}
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set(c.cfg.APIKeyHeader, c.cfg.APIKey)
	}
	if ua := c.cfg.UserAgent; ua != "" {
		req.Header.Set("User-Agent", ua)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", derrors.ErrUpstreamUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s returned %s", derrors.ErrUpstreamUnavailable, strings.Join(segments, "/"), resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
