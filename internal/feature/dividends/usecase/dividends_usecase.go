// Package usecase implements the business logic for dividend disclosure
// lookups.
package usecase

import (
	"context"
	"log/slog"
	"time"

	"stock_dashboard/internal/feature/dividends/domain/entity"
	"stock_dashboard/internal/shared/ratelimiter"
)

const (
	// MinBusinessYear is the earliest business year DART serves dividend
	// disclosures for.
	MinBusinessYear = 2000
	// MaxHistorySpan is the maximum number of years a single history request
	// may cover.
	MaxHistorySpan = 10
)

// DisclosureRepository abstracts the source of dividend disclosure rows.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (the DART client or a caching decorator).
type DisclosureRepository interface {
	FindAllotments(ctx context.Context, corpCode string, year int) ([]entity.DividendAllotment, error)
}

// CorpCodeResolver resolves a 6-digit listed stock code to the 8-digit DART
// corporation code the disclosure API requires.
type CorpCodeResolver interface {
	ResolveCorpCode(ctx context.Context, stockCode string) (string, error)
}

// dividendsUsecase implements dividend disclosure lookups.
type dividendsUsecase struct {
	disclosures DisclosureRepository
	resolver    CorpCodeResolver
	rateLimiter ratelimiter.RateLimiterInterface
}

// NewDividendsUsecase creates a new dividendsUsecase.
func NewDividendsUsecase(disclosures DisclosureRepository, resolver CorpCodeResolver,
	rateLimiter ratelimiter.RateLimiterInterface) *dividendsUsecase {
	return &dividendsUsecase{
		disclosures: disclosures,
		resolver:    resolver,
		rateLimiter: rateLimiter,
	}
}

// clampYear confines a business year to the range DART can answer for.
func clampYear(year int) int {
	if year < MinBusinessYear {
		return MinBusinessYear
	}
	if current := time.Now().Year(); year > current {
		return current
	}
	return year
}

// resolveCode accepts either an 8-digit DART corp code or a 6-digit stock
// code, and returns the corp code.
func (du *dividendsUsecase) resolveCode(ctx context.Context, code string) (string, error) {
	switch len(code) {
	case 8:
		return code, nil
	case 6:
		return du.resolver.ResolveCorpCode(ctx, code)
	default:
		return "", ErrInvalidCompanyCode
	}
}

// GetDividends returns the dividend disclosure rows for one company and
// business year. An empty slice means the company filed no dividend
// disclosure for that year.
func (du *dividendsUsecase) GetDividends(ctx context.Context, code string, year int) ([]entity.DividendAllotment, error) {
	corpCode, err := du.resolveCode(ctx, code)
	if err != nil {
		return nil, err
	}
	return du.disclosures.FindAllotments(ctx, corpCode, clampYear(year))
}

// GetDividendHistory fetches disclosures for each business year in
// [from, to], one DART call per year, pacing the calls through the rate
// limiter. A failing year is logged and skipped so one bad year does not
// lose the rest of the range.
func (du *dividendsUsecase) GetDividendHistory(ctx context.Context, code string, from, to int) (map[int][]entity.DividendAllotment, error) {
	corpCode, err := du.resolveCode(ctx, code)
	if err != nil {
		return nil, err
	}

	from, to = clampYear(from), clampYear(to)
	if from > to {
		return nil, ErrInvalidYearRange
	}
	if to-from+1 > MaxHistorySpan {
		from = to - MaxHistorySpan + 1
	}

	out := make(map[int][]entity.DividendAllotment)
	for year := from; year <= to; year++ {
		du.rateLimiter.WaitIfNeeded()
		rows, err := du.disclosures.FindAllotments(ctx, corpCode, year)
		if err != nil {
			slog.Error("failed to fetch dividend disclosure", "corp_code", corpCode, "year", year, "error", err)
			continue
		}
		if len(rows) > 0 {
			out[year] = rows
		}
	}
	return out, nil
}
