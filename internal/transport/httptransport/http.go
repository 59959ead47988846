package httptransport

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"log/slog"

	"crypto-tracker-backend/internal/domain"
	derrors "crypto-tracker-backend/internal/errors"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Date — календарная дата, сериализуется как yyyy-mm-dd.
type Date time.Time

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + time.Time(d).Format(dateLayout) + `"`), nil
}

// HistoryService — абстракция исторических цен.
type HistoryService interface {
	HistoricalPrices(ctx context.Context, symbol, currency string, start, end time.Time) ([]domain.PricePoint, error)
}

// MarketService — абстракция текущих рыночных данных.
type MarketService interface {
	Prices(ctx context.Context, currency string, symbols []string) ([]domain.CoinPrice, error)
	CoinsList(ctx context.Context) ([]domain.CoinListing, error)
	MarketData(ctx context.Context, id, currency string) (domain.CoinMarketData, error)
}

// CurrencyValidator — проверка кода валюты перед походом в API.
type CurrencyValidator interface {
	IsValid(ctx context.Context, code string) (bool, error)
}

// PricePoint — DTO точки исторического графика.
type PricePoint struct {
	Date     Date            `json:"date"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
}

// CoinPrice — DTO текущей цены.
type CoinPrice struct {
	Symbol   string          `json:"symbol"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
}

// MarketData — DTO рыночных показателей монеты.
type MarketData struct {
	ID                string `json:"id"`
	Symbol            string `json:"symbol"`
	MarketCap         int64  `json:"market_cap"`
	Volume24h         int64  `json:"24h_volume"`
	CirculatingSupply int64  `json:"circulating_supply"`
	Currency          string `json:"currency"`
}

// ErrorResponse — единый формат ошибки: код, сообщение, путь запроса и
// момент времени — достаточно для диагностики на стороне клиента.
type ErrorResponse struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Path      string `json:"path"`
	Timestamp string `json:"timestamp"`
}

// Handler — HTTP-обработчики криптовалютного API.
type Handler struct {
	logger     *slog.Logger
	history    HistoryService
	market     MarketService
	currencies CurrencyValidator
	timeout    time.Duration
}

func NewHandler(logger *slog.Logger, history HistoryService, market MarketService, currencies CurrencyValidator, timeout time.Duration) *Handler {
	if logger == nil {
		log.Fatal("nil logger")
	}
	if history == nil || market == nil || currencies == nil {
		log.Fatal("nil service")
	}
	// Задаём таймаут по умолчанию, если он не задан
	if timeout <= 0 {
		timeout = time.Second * 15
	}
	return &Handler{
		logger:     logger,
		history:    history,
		market:     market,
		currencies: currencies,
		timeout:    timeout,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/crypto")
	g.GET("/prices", h.GetPrices)
	g.GET("/supported", h.GetCoinsList)
	g.GET("/history/:symbol", h.GetHistoricalPrices)
	g.GET("/market/:symbol", h.GetMarketData)
}

// GetPrices — GET /api/crypto/prices?symbols=&currency=
func (h *Handler) GetPrices(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	currency, err := h.requireValidCurrency(ctx, c.QueryParam("currency"))
	if err != nil {
		return h.writeError(c, err)
	}

	var symbols []string
	if raw := strings.TrimSpace(c.QueryParam("symbols")); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				symbols = append(symbols, s)
			}
		}
	}

	prices, err := h.market.Prices(ctx, currency, symbols)
	if err != nil {
		return h.writeError(c, err)
	}

	out := make([]CoinPrice, 0, len(prices))
	for _, p := range prices {
		out = append(out, CoinPrice{Symbol: p.Symbol, Price: p.Price, Currency: p.Currency})
	}
	return c.JSON(http.StatusOK, out)
}

// GetCoinsList — GET /api/crypto/supported
func (h *Handler) GetCoinsList(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	list, err := h.market.CoinsList(ctx)
	if err != nil {
		return h.writeError(c, err)
	}
	if list == nil {
		list = []domain.CoinListing{}
	}
	return c.JSON(http.StatusOK, list)
}

// GetHistoricalPrices — GET /api/crypto/history/:symbol?start=&end=&currency=
func (h *Handler) GetHistoricalPrices(c echo.Context) error {
	symbol := strings.TrimSpace(c.Param("symbol"))
	if symbol == "" {
		return h.writeBadRequest(c, "symbol is required")
	}

	start, err := time.Parse(dateLayout, c.QueryParam("start"))
	if err != nil {
		return h.writeBadRequest(c, "Invalid date format. Please use the format yyyy-MM-dd.")
	}
	end, err := time.Parse(dateLayout, c.QueryParam("end"))
	if err != nil {
		return h.writeBadRequest(c, "Invalid date format. Please use the format yyyy-MM-dd.")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	currency, err := h.requireValidCurrency(ctx, c.QueryParam("currency"))
	if err != nil {
		return h.writeError(c, err)
	}

	h.logger.Info("fetching historical price data",
		"symbol", symbol,
		"start", start.Format(dateLayout),
		"end", end.Format(dateLayout),
		"currency", currency,
	)

	points, err := h.history.HistoricalPrices(ctx, symbol, currency, start, end)
	if err != nil {
		return h.writeError(c, err)
	}

	out := make([]PricePoint, 0, len(points))
	for _, p := range points {
		out = append(out, PricePoint{Date: Date(p.Date), Price: p.Price, Currency: p.Currency})
	}
	return c.JSON(http.StatusOK, out)
}

// GetMarketData — GET /api/crypto/market/:symbol?currency=
func (h *Handler) GetMarketData(c echo.Context) error {
	id := strings.TrimSpace(c.Param("symbol"))
	if id == "" {
		return h.writeBadRequest(c, "symbol is required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	currency, err := h.requireValidCurrency(ctx, c.QueryParam("currency"))
	if err != nil {
		return h.writeError(c, err)
	}

	data, err := h.market.MarketData(ctx, id, currency)
	if err != nil {
		return h.writeError(c, err)
	}

	return c.JSON(http.StatusOK, MarketData{
		ID:                data.ID,
		Symbol:            data.Symbol,
		MarketCap:         data.MarketCap,
		Volume24h:         data.Volume24h,
		CirculatingSupply: data.CirculatingSupply,
		Currency:          data.Currency,
	})
}

// requireValidCurrency — валюта по умолчанию usd; любой явный код
// проходит через кэш поддерживаемых валют до обращения к API.
func (h *Handler) requireValidCurrency(ctx context.Context, currency string) (string, error) {
	currency = strings.TrimSpace(currency)
	if currency == "" {
		currency = "usd"
	}

	ok, err := h.currencies.IsValid(ctx, currency)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", derrors.ErrInvalidCurrency
	}
	return currency, nil
}

func (h *Handler) writeError(c echo.Context, err error) error {
	code, status := FromServiceError(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			slog.String("path", c.Request().URL.Path),
			slog.String("error", err.Error()),
		)
	}
	return c.JSON(status, ErrorResponse{
		Error:     string(code),
		Message:   err.Error(),
		Path:      c.Request().URL.Path,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *Handler) writeBadRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:     "BAD_REQUEST",
		Message:   message,
		Path:      c.Request().URL.Path,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
