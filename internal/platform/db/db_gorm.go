// Package db opens the GORM database connection used for the company
// directory and user accounts.
package db

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"stock_dashboard/internal/platform/config"
)

// Dialector returns the GORM dialector for the configured driver.
func Dialector(cfg config.DBConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "sqlite":
		return sqlite.Open(cfg.DSN), nil
	case "postgres":
		return postgres.Open(cfg.DSN), nil
	default:
		return nil, fmt.Errorf("unsupported db driver: %s", cfg.Driver)
	}
}

// OpenDB connects to the database, retrying until a deadline so the server
// survives a database that is still starting up. Fatal on misconfiguration
// or when the deadline passes.
func OpenDB(cfg config.DBConfig) *gorm.DB {
	dial, err := Dialector(cfg)
	if err != nil {
		log.Fatalf("db config: %v", err)
	}

	var db *gorm.DB
	deadline := time.Now().Add(60 * time.Second)
	for {
		// TranslateError maps driver-specific unique violations onto
		// gorm.ErrDuplicatedKey for both sqlite and postgres.
		db, err = gorm.Open(dial, &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	return db
}

// Migrate runs schema migrations for the given models.
func Migrate(db *gorm.DB, models ...interface{}) error {
	return db.AutoMigrate(models...)
}
