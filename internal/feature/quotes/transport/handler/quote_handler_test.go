package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stock_dashboard/internal/feature/quotes/domain/entity"
	"stock_dashboard/internal/feature/quotes/usecase"
)

// mockQuotesUsecase is a mock implementation of the QuotesUsecase interface.
type mockQuotesUsecase struct {
	GetHistoryFunc func(ctx context.Context, symbol, period string) ([]entity.Candle, error)
	GetQuoteFunc   func(ctx context.Context, symbol string) (*entity.Quote, error)
}

func (m *mockQuotesUsecase) GetHistory(ctx context.Context, symbol, period string) ([]entity.Candle, error) {
	if m.GetHistoryFunc != nil {
		return m.GetHistoryFunc(ctx, symbol, period)
	}
	return nil, nil
}

func (m *mockQuotesUsecase) GetQuote(ctx context.Context, symbol string) (*entity.Quote, error) {
	if m.GetQuoteFunc != nil {
		return m.GetQuoteFunc(ctx, symbol)
	}
	return &entity.Quote{}, nil
}

func newQuoteRouter(uc QuotesUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewQuoteHandler(uc)
	r := gin.New()
	r.GET("/api/quotes/:symbol", h.GetQuote)
	r.GET("/api/quotes/:symbol/history", h.GetHistory)
	return r
}

func TestQuoteHandler_GetQuote_Success(t *testing.T) {
	uc := &mockQuotesUsecase{
		GetQuoteFunc: func(ctx context.Context, symbol string) (*entity.Quote, error) {
			assert.Equal(t, "AAPL", symbol)
			return &entity.Quote{
				Symbol:        "AAPL",
				Currency:      "USD",
				Price:         232.5,
				PreviousClose: 230.1,
				DividendYield: 0.0043,
				Dividends: []entity.Dividend{
					{Date: time.Date(2025, 5, 12, 0, 0, 0, 0, time.UTC), Amount: 0.26},
				},
			}, nil
		},
	}

	r := newQuoteRouter(uc)
	req := httptest.NewRequest(http.MethodGet, "/api/quotes/AAPL", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"symbol": "AAPL",
		"currency": "USD",
		"price": 232.5,
		"previous_close": 230.1,
		"dividend_yield": 0.0043,
		"dividends": [{"date": "2025-05-12", "amount": 0.26}]
	}`, w.Body.String())
}

func TestQuoteHandler_GetQuote_NoDividends(t *testing.T) {
	uc := &mockQuotesUsecase{
		GetQuoteFunc: func(ctx context.Context, symbol string) (*entity.Quote, error) {
			return &entity.Quote{Symbol: "TSLA", Currency: "USD", Price: 340.0, PreviousClose: 335.0}, nil
		},
	}

	r := newQuoteRouter(uc)
	req := httptest.NewRequest(http.MethodGet, "/api/quotes/TSLA", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	// dividends are omitted entirely for non-paying securities
	assert.NotContains(t, w.Body.String(), "dividends")
}

func TestQuoteHandler_GetQuote_Errors(t *testing.T) {
	tests := []struct {
		name           string
		usecaseErr     error
		expectedStatus int
	}{
		{"empty symbol", usecase.ErrEmptySymbol, http.StatusBadRequest},
		{"upstream failure", assert.AnError, http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockQuotesUsecase{
				GetQuoteFunc: func(ctx context.Context, symbol string) (*entity.Quote, error) {
					return nil, tt.usecaseErr
				},
			}

			r := newQuoteRouter(uc)
			req := httptest.NewRequest(http.MethodGet, "/api/quotes/XXXX", nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
		})
	}
}

func TestQuoteHandler_GetHistory_Success(t *testing.T) {
	uc := &mockQuotesUsecase{
		GetHistoryFunc: func(ctx context.Context, symbol, period string) ([]entity.Candle, error) {
			assert.Equal(t, "AAPL", symbol)
			assert.Equal(t, "3mo", period)
			return []entity.Candle{
				{
					Symbol: "AAPL",
					Time:   time.Date(2025, 8, 12, 13, 30, 0, 0, time.UTC),
					Open:   230.0,
					High:   233.0,
					Low:    229.0,
					Close:  232.0,
					Volume: 50000000,
				},
			}, nil
		},
	}

	r := newQuoteRouter(uc)
	req := httptest.NewRequest(http.MethodGet, "/api/quotes/AAPL/history?period=3mo", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[
		{
			"time": "2025-08-12",
			"open": 230.0,
			"high": 233.0,
			"low": 229.0,
			"close": 232.0,
			"volume": 50000000
		}
	]`, w.Body.String())
}

func TestQuoteHandler_GetHistory_InvalidPeriod(t *testing.T) {
	uc := &mockQuotesUsecase{
		GetHistoryFunc: func(ctx context.Context, symbol, period string) ([]entity.Candle, error) {
			return nil, usecase.ErrInvalidPeriod
		},
	}

	r := newQuoteRouter(uc)
	req := httptest.NewRequest(http.MethodGet, "/api/quotes/AAPL/history?period=7y", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuoteHandler_GetHistory_Empty(t *testing.T) {
	uc := &mockQuotesUsecase{
		GetHistoryFunc: func(ctx context.Context, symbol, period string) ([]entity.Candle, error) {
			return []entity.Candle{}, nil
		},
	}

	r := newQuoteRouter(uc)
	req := httptest.NewRequest(http.MethodGet, "/api/quotes/AAPL/history", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}
