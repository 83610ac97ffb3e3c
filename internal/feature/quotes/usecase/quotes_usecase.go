// Package usecase implements the business logic for market data lookups.
package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"stock_dashboard/internal/feature/quotes/domain/entity"
)

// DefaultPeriod is the history range used when the caller does not specify
// one.
const DefaultPeriod = "1y"

// validPeriods are the history ranges the dashboard offers.
var validPeriods = map[string]struct{}{
	"1mo": {},
	"3mo": {},
	"6mo": {},
	"1y":  {},
	"2y":  {},
}

var (
	// ErrInvalidPeriod is returned for a period outside the supported set.
	ErrInvalidPeriod = errors.New("period must be one of 1mo, 3mo, 6mo, 1y, 2y")

	// ErrEmptySymbol is returned when no ticker symbol was supplied.
	ErrEmptySymbol = errors.New("ticker symbol is required")
)

// MarketRepository abstracts the market data source. Following Go
// convention, the interface is defined by the consumer (usecase), not the
// provider (the Yahoo client or a caching decorator).
type MarketRepository interface {
	GetHistory(ctx context.Context, symbol, period string) ([]entity.Candle, error)
	GetQuote(ctx context.Context, symbol string) (*entity.Quote, error)
}

// quotesUsecase implements market data lookups.
type quotesUsecase struct {
	market MarketRepository
}

// NewQuotesUsecase creates a new quotesUsecase.
func NewQuotesUsecase(market MarketRepository) *quotesUsecase {
	return &quotesUsecase{market: market}
}

func normalizeSymbol(symbol string) (string, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return "", ErrEmptySymbol
	}
	return symbol, nil
}

// GetHistory returns daily candles for the ticker over the requested period.
func (qu *quotesUsecase) GetHistory(ctx context.Context, symbol, period string) ([]entity.Candle, error) {
	symbol, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	if period == "" {
		period = DefaultPeriod
	}
	if _, ok := validPeriods[period]; !ok {
		return nil, ErrInvalidPeriod
	}
	return qu.market.GetHistory(ctx, symbol, period)
}

// GetQuote returns the latest quote for the ticker with the trailing twelve
// month dividend yield derived from the reported dividend events.
func (qu *quotesUsecase) GetQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	symbol, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}

	q, err := qu.market.GetQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	q.DividendYield = trailingYield(q.Dividends, q.Price, time.Now())
	return q, nil
}

// trailingYield sums the dividends paid in the 365 days before now and
// divides by the current price.
func trailingYield(dividends []entity.Dividend, price float64, now time.Time) float64 {
	if price <= 0 {
		return 0
	}
	cutoff := now.AddDate(0, 0, -365)
	var sum float64
	for _, d := range dividends {
		if d.Date.After(cutoff) && !d.Date.After(now) {
			sum += d.Amount
		}
	}
	return sum / price
}
