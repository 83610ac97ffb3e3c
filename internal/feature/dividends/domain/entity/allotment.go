// Package entity defines the domain models for the dividends feature.
package entity

// DividendAllotment is one row of a DART dividend disclosure (the alotMatter
// dataset). DART reports the numeric cells as display strings with thousands
// separators, or "-" when a value does not apply, and they are passed through
// untouched.
type DividendAllotment struct {
	ReceiptNo   string // Disclosure receipt number (rcept_no)
	CorpClass   string // Market class: Y=KOSPI, K=KOSDAQ, N=KONEX, E=other
	CorpCode    string // 8-digit DART corporation code
	CorpName    string // Company name as disclosed
	Item        string // Disclosed item label, e.g. cash dividend per share
	StockKind   string // Share class for per-share items (common/preferred)
	CurrentTerm string // Value for the business year requested
	PriorTerm   string // Value for the preceding business year
	TwoPrior    string // Value for two business years before
}
