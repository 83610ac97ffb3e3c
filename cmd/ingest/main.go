// Command ingest downloads the DART corporation code directory and upserts
// the listed companies into the database. Run it once at setup and then on a
// schedule to pick up new listings.
package main

import (
	"context"
	"log"
	"time"

	"stock_dashboard/internal/app/di"
	companyadapters "stock_dashboard/internal/feature/companies/adapters"
	companyentity "stock_dashboard/internal/feature/companies/domain/entity"
	companyusecase "stock_dashboard/internal/feature/companies/usecase"
	"stock_dashboard/internal/platform/config"
	infradb "stock_dashboard/internal/platform/db"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		log.Fatal(err)
	}

	db := infradb.OpenDB(cfg.DB)
	if err := infradb.Migrate(db, &companyentity.Company{}); err != nil {
		log.Fatal("migration failed:", err)
	}

	dartClient := di.NewDisclosureClient(cfg.DART)
	companyRepo := companyadapters.NewCompanyRepository(db)
	uc := companyusecase.NewRefreshUsecase(dartClient, companyRepo)

	// The corp code archive is a few megabytes; five minutes covers a slow
	// download plus the upserts.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	count, err := uc.RefreshDirectory(ctx)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("ingest ok: %d listed companies", count)
}
