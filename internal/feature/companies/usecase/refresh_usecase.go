package usecase

import (
	"context"
	"log/slog"

	"stock_dashboard/internal/feature/companies/domain/entity"
)

// upsertChunkSize bounds one INSERT statement when refreshing the directory.
const upsertChunkSize = 500

// CorpCodeSource abstracts the download of the DART corporation code
// directory.
type CorpCodeSource interface {
	FetchCorpCodes(ctx context.Context) ([]entity.Company, error)
}

// RefreshUsecase downloads the corp code directory and persists the listed
// companies.
type RefreshUsecase struct {
	source CorpCodeSource
	repo   CompanyRepository
}

// NewRefreshUsecase creates a new RefreshUsecase.
func NewRefreshUsecase(source CorpCodeSource, repo CompanyRepository) *RefreshUsecase {
	return &RefreshUsecase{source: source, repo: repo}
}

// RefreshDirectory fetches the full corp code list from DART, keeps the
// listed companies (those with a stock code) and upserts them in chunks.
// It returns the number of companies written.
func (u *RefreshUsecase) RefreshDirectory(ctx context.Context) (int, error) {
	all, err := u.source.FetchCorpCodes(ctx)
	if err != nil {
		return 0, err
	}

	listed := make([]entity.Company, 0, len(all))
	for _, c := range all {
		if c.StockCode != "" {
			listed = append(listed, c)
		}
	}

	for start := 0; start < len(listed); start += upsertChunkSize {
		end := start + upsertChunkSize
		if end > len(listed) {
			end = len(listed)
		}
		if err := u.repo.UpsertBatch(ctx, listed[start:end]); err != nil {
			return 0, err
		}
	}

	slog.Info("company directory refreshed", "total", len(all), "listed", len(listed))
	return len(listed), nil
}
