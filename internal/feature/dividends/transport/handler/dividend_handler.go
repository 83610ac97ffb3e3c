// Package handler provides the HTTP handlers for the dividends feature.
package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/api"
	companiesusecase "stock_dashboard/internal/feature/companies/usecase"
	"stock_dashboard/internal/feature/dividends/domain/entity"
	"stock_dashboard/internal/feature/dividends/usecase"
)

// historyDefaultSpan is the number of years a history request covers when
// the caller gives no range.
const historyDefaultSpan = 5

// DividendsUsecase defines the usecase interface for dividend disclosure
// lookups. Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type DividendsUsecase interface {
	GetDividends(ctx context.Context, code string, year int) ([]entity.DividendAllotment, error)
	GetDividendHistory(ctx context.Context, code string, from, to int) (map[int][]entity.DividendAllotment, error)
}

// DividendHandler handles HTTP requests for dividend disclosures.
type DividendHandler struct {
	uc DividendsUsecase
}

// NewDividendHandler creates a new DividendHandler with the given usecase.
func NewDividendHandler(uc DividendsUsecase) *DividendHandler {
	return &DividendHandler{uc: uc}
}

// GetDividends returns the dividend disclosure rows for one business year.
//
// Example endpoint:
// GET /api/companies/:code/dividends?year=2024
func (h *DividendHandler) GetDividends(c *gin.Context) {
	code := c.Param("code")

	// The most recent completed business year is the useful default.
	yearStr := c.DefaultQuery("year", strconv.Itoa(time.Now().Year()-1))
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid year"})
		return
	}

	rows, err := h.uc.GetDividends(c.Request.Context(), code, year)
	if err != nil {
		status := upstreamStatus(err)
		c.JSON(status, api.ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, toAllotmentResponses(rows))
}

// GetDividendHistory returns disclosure rows per business year over a range.
//
// Example endpoint:
// GET /api/companies/:code/dividends/history?from=2020&to=2024
func (h *DividendHandler) GetDividendHistory(c *gin.Context) {
	code := c.Param("code")

	to, err := intQuery(c, "to", time.Now().Year()-1)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid to year"})
		return
	}
	from, err := intQuery(c, "from", to-historyDefaultSpan+1)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid from year"})
		return
	}

	years, err := h.uc.GetDividendHistory(c.Request.Context(), code, from, to)
	if err != nil {
		status := upstreamStatus(err)
		c.JSON(status, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := make(map[string][]api.AllotmentResponse, len(years))
	for year, rows := range years {
		out[strconv.Itoa(year)] = toAllotmentResponses(rows)
	}
	c.JSON(http.StatusOK, out)
}

func intQuery(c *gin.Context, name string, def int) (int, error) {
	s := c.Query(name)
	if s == "" {
		return def, nil
	}
	return strconv.Atoi(s)
}

// upstreamStatus maps usecase errors onto HTTP statuses: caller mistakes are
// 400/404, everything else is a failing upstream.
func upstreamStatus(err error) int {
	switch {
	case errors.Is(err, usecase.ErrInvalidCompanyCode),
		errors.Is(err, usecase.ErrInvalidYearRange):
		return http.StatusBadRequest
	case errors.Is(err, companiesusecase.ErrCompanyNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

func toAllotmentResponses(rows []entity.DividendAllotment) []api.AllotmentResponse {
	out := make([]api.AllotmentResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, api.AllotmentResponse{
			CorpCode:    r.CorpCode,
			CorpName:    r.CorpName,
			Item:        r.Item,
			StockKind:   r.StockKind,
			CurrentTerm: r.CurrentTerm,
			PriorTerm:   r.PriorTerm,
			TwoPrior:    r.TwoPrior,
		})
	}
	return out
}
