// Package adapters provides the repository implementations for the
// companies feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"stock_dashboard/internal/feature/companies/domain/entity"
	"stock_dashboard/internal/feature/companies/usecase"
)

// companyGorm is the GORM implementation of the CompanyRepository interface.
type companyGorm struct {
	db *gorm.DB
}

var _ usecase.CompanyRepository = (*companyGorm)(nil)

// NewCompanyRepository creates a new companyGorm repository on the given
// connection.
func NewCompanyRepository(db *gorm.DB) *companyGorm {
	return &companyGorm{db: db}
}

// Search returns companies whose name or stock code starts with the query,
// ordered by name.
func (r *companyGorm) Search(ctx context.Context, query string, limit int) ([]entity.Company, error) {
	var rows []entity.Company
	q := r.db.WithContext(ctx).
		Where("name LIKE ? OR stock_code LIKE ?", query+"%", query+"%").
		Order("name ASC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByStockCode fetches the company listed under the 6-digit stock code.
// It returns usecase.ErrCompanyNotFound when no company matches.
func (r *companyGorm) FindByStockCode(ctx context.Context, stockCode string) (*entity.Company, error) {
	var c entity.Company
	if err := r.db.WithContext(ctx).Where("stock_code = ?", stockCode).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCompanyNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindByCorpCode fetches the company with the 8-digit DART corp code.
// It returns usecase.ErrCompanyNotFound when no company matches.
func (r *companyGorm) FindByCorpCode(ctx context.Context, corpCode string) (*entity.Company, error) {
	var c entity.Company
	if err := r.db.WithContext(ctx).Where("corp_code = ?", corpCode).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrCompanyNotFound
		}
		return nil, err
	}
	return &c, nil
}

// UpsertBatch inserts or updates companies keyed by corp code.
func (r *companyGorm) UpsertBatch(ctx context.Context, companies []entity.Company) error {
	if len(companies) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "corp_code"}},
		DoUpdates: clause.AssignmentColumns([]string{"stock_code", "name", "modify_date"}),
	}).Create(&companies).Error
}

// Count returns the number of companies in the directory.
func (r *companyGorm) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&entity.Company{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}
