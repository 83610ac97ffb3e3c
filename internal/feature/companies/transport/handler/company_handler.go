// Package handler provides the HTTP handlers for the companies feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"stock_dashboard/internal/api"
	"stock_dashboard/internal/feature/companies/domain/entity"
	"stock_dashboard/internal/feature/companies/usecase"
)

// CompanyUsecase defines the directory lookup interface.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type CompanyUsecase interface {
	SearchCompanies(ctx context.Context, query string, limit int) ([]entity.Company, error)
}

// RefreshUsecase defines the directory refresh interface.
type RefreshUsecase interface {
	RefreshDirectory(ctx context.Context) (int, error)
}

// CompanyHandler handles HTTP requests for the company directory.
type CompanyHandler struct {
	uc      CompanyUsecase
	refresh RefreshUsecase
}

// NewCompanyHandler creates a new CompanyHandler.
func NewCompanyHandler(uc CompanyUsecase, refresh RefreshUsecase) *CompanyHandler {
	return &CompanyHandler{uc: uc, refresh: refresh}
}

// Search returns directory entries matching a name or stock code prefix.
//
// Example endpoint:
// GET /api/companies?q=samsung&limit=20
func (h *CompanyHandler) Search(c *gin.Context) {
	query := c.Query("q")
	limit, _ := strconv.Atoi(c.Query("limit")) // 0 lets the usecase default apply

	companies, err := h.uc.SearchCompanies(c.Request.Context(), query, limit)
	if err != nil {
		if errors.Is(err, usecase.ErrEmptyQuery) {
			c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: err.Error()})
		return
	}

	out := make([]api.CompanyResponse, 0, len(companies))
	for _, co := range companies {
		out = append(out, api.CompanyResponse{
			CorpCode:  co.CorpCode,
			StockCode: co.StockCode,
			Name:      co.Name,
		})
	}
	c.JSON(http.StatusOK, out)
}

// Refresh re-downloads the corp code directory from DART. The route is
// behind JWT auth because a refresh consumes a whole-directory download on
// the DART quota.
//
// Example endpoint:
// POST /api/admin/companies/refresh
func (h *CompanyHandler) Refresh(c *gin.Context) {
	n, err := h.refresh.RefreshDirectory(c.Request.Context())
	if err != nil {
		slog.Error("company directory refresh failed", "error", err)
		c.JSON(http.StatusBadGateway, api.ErrorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusOK, api.RefreshResponse{Count: n})
}
