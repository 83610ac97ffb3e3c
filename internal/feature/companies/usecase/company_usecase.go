// Package usecase implements the business logic for the listed-company
// directory.
package usecase

import (
	"context"
	"strings"

	"stock_dashboard/internal/feature/companies/domain/entity"
)

const (
	// DefaultSearchLimit is the number of matches returned when the caller
	// does not specify a limit.
	DefaultSearchLimit = 20
	// MaxSearchLimit caps the number of matches per search.
	MaxSearchLimit = 100
)

// CompanyRepository abstracts the persistence layer for the company
// directory. Following Go convention, the interface is defined by the
// consumer (usecase), not the provider (adapters).
type CompanyRepository interface {
	// Search returns companies whose name or stock code starts with the
	// query, ordered by name.
	Search(ctx context.Context, query string, limit int) ([]entity.Company, error)

	// FindByStockCode returns the company listed under the 6-digit stock code.
	FindByStockCode(ctx context.Context, stockCode string) (*entity.Company, error)

	// FindByCorpCode returns the company with the 8-digit DART corp code.
	FindByCorpCode(ctx context.Context, corpCode string) (*entity.Company, error)

	// UpsertBatch inserts or updates companies keyed by corp code.
	UpsertBatch(ctx context.Context, companies []entity.Company) error

	// Count returns the number of companies in the directory.
	Count(ctx context.Context) (int64, error)
}

// CompanyUsecase provides directory lookups for the dashboard and for corp
// code resolution.
type CompanyUsecase struct {
	repo CompanyRepository
}

// NewCompanyUsecase creates a new CompanyUsecase.
func NewCompanyUsecase(repo CompanyRepository) *CompanyUsecase {
	return &CompanyUsecase{repo: repo}
}

// SearchCompanies returns directory entries matching the query.
func (u *CompanyUsecase) SearchCompanies(ctx context.Context, query string, limit int) ([]entity.Company, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, ErrEmptyQuery
	}
	if limit <= 0 || limit > MaxSearchLimit {
		limit = DefaultSearchLimit
	}
	return u.repo.Search(ctx, query, limit)
}

// ResolveCorpCode maps a 6-digit stock code to its DART corp code.
func (u *CompanyUsecase) ResolveCorpCode(ctx context.Context, stockCode string) (string, error) {
	c, err := u.repo.FindByStockCode(ctx, stockCode)
	if err != nil {
		return "", err
	}
	return c.CorpCode, nil
}
