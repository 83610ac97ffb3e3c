// Package yahoo provides a client for the Yahoo Finance chart API.
package yahoo

import "time"

// Config holds configuration for the Yahoo Finance chart API client.
// The chart endpoint is unauthenticated.
type Config struct {
	BaseURL string        // Base URL for the API (e.g. "https://query1.finance.yahoo.com")
	Timeout time.Duration // HTTP request timeout
}
