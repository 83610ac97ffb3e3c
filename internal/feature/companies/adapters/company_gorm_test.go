package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stock_dashboard/internal/feature/companies/domain/entity"
	"stock_dashboard/internal/feature/companies/usecase"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.Company{})
	require.NoError(t, err, "failed to migrate table")

	return db
}

// seedCompanies inserts a small directory for the lookup tests.
func seedCompanies(t *testing.T, repo *companyGorm) {
	t.Helper()

	err := repo.UpsertBatch(context.Background(), []entity.Company{
		{CorpCode: "00126380", StockCode: "005930", Name: "삼성전자", ModifyDate: "20250101"},
		{CorpCode: "00164742", StockCode: "005380", Name: "현대자동차", ModifyDate: "20250101"},
		{CorpCode: "00401731", StockCode: "000660", Name: "SK하이닉스", ModifyDate: "20250101"},
	})
	require.NoError(t, err, "failed to seed companies")
}

func TestCompanyGorm_Search(t *testing.T) {
	t.Run("matches by name prefix", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewCompanyRepository(db)
		seedCompanies(t, repo)

		rows, err := repo.Search(context.Background(), "삼성", 10)

		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, "삼성전자", rows[0].Name)
	})

	t.Run("matches by stock code prefix", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewCompanyRepository(db)
		seedCompanies(t, repo)

		rows, err := repo.Search(context.Background(), "005", 10)

		require.NoError(t, err)
		assert.Len(t, rows, 2)
	})

	t.Run("respects limit", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewCompanyRepository(db)
		seedCompanies(t, repo)

		rows, err := repo.Search(context.Background(), "005", 1)

		require.NoError(t, err)
		assert.Len(t, rows, 1)
	})

	t.Run("no match", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewCompanyRepository(db)
		seedCompanies(t, repo)

		rows, err := repo.Search(context.Background(), "없는회사", 10)

		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}

func TestCompanyGorm_FindByStockCode(t *testing.T) {
	t.Run("existing company", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewCompanyRepository(db)
		seedCompanies(t, repo)

		c, err := repo.FindByStockCode(context.Background(), "005930")

		require.NoError(t, err)
		assert.Equal(t, "00126380", c.CorpCode)
	})

	t.Run("unknown stock code", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewCompanyRepository(db)
		seedCompanies(t, repo)

		_, err := repo.FindByStockCode(context.Background(), "999999")

		assert.ErrorIs(t, err, usecase.ErrCompanyNotFound)
	})
}

func TestCompanyGorm_FindByCorpCode(t *testing.T) {
	t.Run("existing company", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewCompanyRepository(db)
		seedCompanies(t, repo)

		c, err := repo.FindByCorpCode(context.Background(), "00401731")

		require.NoError(t, err)
		assert.Equal(t, "SK하이닉스", c.Name)
	})

	t.Run("unknown corp code", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewCompanyRepository(db)

		_, err := repo.FindByCorpCode(context.Background(), "00000000")

		assert.ErrorIs(t, err, usecase.ErrCompanyNotFound)
	})
}

func TestCompanyGorm_UpsertBatch(t *testing.T) {
	t.Run("updates existing entries by corp code", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewCompanyRepository(db)
		seedCompanies(t, repo)

		// Re-upsert with a changed name and modify date
		err := repo.UpsertBatch(context.Background(), []entity.Company{
			{CorpCode: "00126380", StockCode: "005930", Name: "삼성전자(주)", ModifyDate: "20250801"},
		})
		require.NoError(t, err)

		c, err := repo.FindByCorpCode(context.Background(), "00126380")
		require.NoError(t, err)
		assert.Equal(t, "삼성전자(주)", c.Name)
		assert.Equal(t, "20250801", c.ModifyDate)

		// Still three companies, no duplicate row
		n, err := repo.Count(context.Background())
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewCompanyRepository(db)

		err := repo.UpsertBatch(context.Background(), nil)

		assert.NoError(t, err)
	})
}

func TestCompanyGorm_Count(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCompanyRepository(db)

	n, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)

	seedCompanies(t, repo)

	n, err = repo.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}
