package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"sort"
	"time"

	"stock_dashboard/internal/feature/quotes/domain/entity"
	"stock_dashboard/internal/feature/quotes/usecase"
	"stock_dashboard/internal/platform/externalapi/yahoo/dto"
)

// userAgent is sent on every request; Yahoo rejects Go's default agent.
const userAgent = "Mozilla/5.0 (compatible; stock-dashboard/1.0)"

// Client calls the Yahoo Finance v8 chart API. It implements the quotes
// feature's MarketRepository.
type Client struct {
	cfg    Config
	client *http.Client
}

var _ usecase.MarketRepository = (*Client)(nil)

// NewClient creates a Yahoo chart API client with the given configuration
// and HTTP client.
func NewClient(cfg Config, client *http.Client) *Client {
	return &Client{cfg: cfg, client: client}
}

// GetHistory fetches the daily candles for a ticker over the given range
// (e.g. "1mo", "1y"). Days where Yahoo reports null prices are skipped.
func (c *Client) GetHistory(ctx context.Context, symbol, period string) ([]entity.Candle, error) {
	result, err := c.fetchChart(ctx, symbol, period)
	if err != nil {
		return nil, err
	}
	if len(result.Indicators.Quote) == 0 {
		return []entity.Candle{}, nil
	}

	q := result.Indicators.Quote[0]
	candles := make([]entity.Candle, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(q.Open) || i >= len(q.High) || i >= len(q.Low) || i >= len(q.Close) {
			break
		}
		// Null entries mark days without a trade (halts, partial sessions).
		if q.Open[i] == nil || q.High[i] == nil || q.Low[i] == nil || q.Close[i] == nil {
			continue
		}
		var volume int64
		if i < len(q.Volume) && q.Volume[i] != nil {
			volume = *q.Volume[i]
		}
		candles = append(candles, entity.Candle{
			Symbol: symbol,
			Time:   time.Unix(ts, 0).UTC(),
			Open:   *q.Open[i],
			High:   *q.High[i],
			Low:    *q.Low[i],
			Close:  *q.Close[i],
			Volume: volume,
		})
	}
	return candles, nil
}

// GetQuote fetches the latest quote for a ticker. The chart metadata carries
// the current and previous close prices; the dividend events of the trailing
// year come along on the same call.
func (c *Client) GetQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	result, err := c.fetchChart(ctx, symbol, "1y")
	if err != nil {
		return nil, err
	}

	quote := &entity.Quote{
		Symbol:        result.Meta.Symbol,
		Currency:      result.Meta.Currency,
		Price:         result.Meta.RegularMarketPrice,
		PreviousClose: result.Meta.ChartPreviousClose,
	}

	if result.Events != nil {
		for _, d := range result.Events.Dividends {
			quote.Dividends = append(quote.Dividends, entity.Dividend{
				Date:   time.Unix(d.Date, 0).UTC(),
				Amount: d.Amount,
			})
		}
		sort.Slice(quote.Dividends, func(i, j int) bool {
			return quote.Dividends[i].Date.Before(quote.Dividends[j].Date)
		})
	}

	return quote, nil
}

// fetchChart performs one chart API call and returns the single result.
func (c *Client) fetchChart(ctx context.Context, symbol, period string) (*dto.Result, error) {
	q := url.Values{}
	q.Set("range", period)
	q.Set("interval", "1d")
	q.Set("events", "div")

	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", c.cfg.BaseURL, url.PathEscape(symbol), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	res, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	// Yahoo answers errors (unknown ticker, bad range) with a JSON body and
	// a non-200 status, so the body is decoded before the status is checked.
	var body dto.ChartResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		if res.StatusCode >= 400 {
			return nil, fmt.Errorf("yahoo http %d", res.StatusCode)
		}
		return nil, err
	}

	if body.Chart.Error != nil {
		return nil, fmt.Errorf("yahoo: %s (%s)", body.Chart.Error.Description, body.Chart.Error.Code)
	}
	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("yahoo http %d", res.StatusCode)
	}
	if len(body.Chart.Result) == 0 {
		return nil, fmt.Errorf("yahoo: empty result for %s", symbol)
	}

	return &body.Chart.Result[0], nil
}
