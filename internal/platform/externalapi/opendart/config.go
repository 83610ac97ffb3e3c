// Package opendart provides a client for the DART (Data Analysis, Retrieval
// and Transfer) open API operated by the Korean Financial Supervisory
// Service.
package opendart

import "time"

// Config holds configuration for the DART API client.
type Config struct {
	APIKey  string        // crtfc_key issued by opendart.fss.or.kr
	BaseURL string        // Base URL for the API (e.g. "https://opendart.fss.or.kr")
	Timeout time.Duration // HTTP request timeout
}
