// Package handler provides the HTTP handlers for the quotes feature.
package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/api"
	"stock_dashboard/internal/feature/quotes/domain/entity"
	"stock_dashboard/internal/feature/quotes/usecase"
)

// QuotesUsecase defines the usecase interface for market data lookups.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type QuotesUsecase interface {
	GetHistory(ctx context.Context, symbol, period string) ([]entity.Candle, error)
	GetQuote(ctx context.Context, symbol string) (*entity.Quote, error)
}

// QuoteHandler handles HTTP requests for market data.
type QuoteHandler struct {
	uc QuotesUsecase
}

// NewQuoteHandler creates a new QuoteHandler with the given usecase.
func NewQuoteHandler(uc QuotesUsecase) *QuoteHandler {
	return &QuoteHandler{uc: uc}
}

// GetQuote returns the latest quote for a ticker, including the trailing
// dividend yield.
//
// Example endpoint:
// GET /api/quotes/AAPL
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	symbol := c.Param("symbol")

	q, err := h.uc.GetQuote(c.Request.Context(), symbol)
	if err != nil {
		c.JSON(statusFor(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	out := api.QuoteResponse{
		Symbol:        q.Symbol,
		Currency:      q.Currency,
		Price:         q.Price,
		PreviousClose: q.PreviousClose,
		DividendYield: q.DividendYield,
	}
	for _, d := range q.Dividends {
		out.Dividends = append(out.Dividends, api.DividendResponse{
			Date:   d.Date.UTC().Format("2006-01-02"),
			Amount: d.Amount,
		})
	}

	c.JSON(http.StatusOK, out)
}

// GetHistory returns daily candles over the requested period.
//
// Example endpoint:
// GET /api/quotes/AAPL/history?period=1y
func (h *QuoteHandler) GetHistory(c *gin.Context) {
	symbol := c.Param("symbol")
	period := c.Query("period")

	candles, err := h.uc.GetHistory(c.Request.Context(), symbol, period)
	if err != nil {
		c.JSON(statusFor(err), api.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]api.CandleResponse, 0, len(candles))
	for _, x := range candles {
		out = append(out, api.CandleResponse{
			Time:   x.Time.UTC().Format("2006-01-02"),
			Open:   x.Open,
			High:   x.High,
			Low:    x.Low,
			Close:  x.Close,
			Volume: x.Volume,
		})
	}

	c.JSON(http.StatusOK, out)
}

func statusFor(err error) int {
	if errors.Is(err, usecase.ErrInvalidPeriod) || errors.Is(err, usecase.ErrEmptySymbol) {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}
