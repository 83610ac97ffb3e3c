// Package entity defines the domain models for the companies feature.
package entity

import "time"

// Company is one listed company from the DART corporation code directory.
// Only companies with a stock code (i.e. listed on KOSPI/KOSDAQ/KONEX) are
// kept in the directory.
type Company struct {
	ID         uint      `gorm:"primaryKey"`
	CorpCode   string    `gorm:"size:8;not null;uniqueIndex"`
	StockCode  string    `gorm:"size:6;not null;index"`
	Name       string    `gorm:"size:255;not null;index"`
	ModifyDate string    `gorm:"size:8;not null"` // YYYYMMDD as reported by DART
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`
}
