// Package dto defines data transfer objects for Yahoo Finance chart API
// responses.
package dto

// ChartResponse is the top-level container of the v8 chart endpoint.
type ChartResponse struct {
	Chart ChartData `json:"chart"`
}

// ChartData carries either the results or an API error.
type ChartData struct {
	Result []Result  `json:"result"`
	Error  *APIError `json:"error"`
}

// APIError is Yahoo's error object, also present on non-200 responses.
type APIError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// Result is one chart result: metadata, the time axis, optional corporate
// events and the quote arrays.
type Result struct {
	Meta       Meta       `json:"meta"`
	Timestamp  []int64    `json:"timestamp"`
	Events     *Events    `json:"events"`
	Indicators Indicators `json:"indicators"`
}

// Meta holds the quote snapshot that accompanies every chart response.
type Meta struct {
	Currency           string  `json:"currency"`
	Symbol             string  `json:"symbol"`
	RegularMarketPrice float64 `json:"regularMarketPrice"`
	ChartPreviousClose float64 `json:"chartPreviousClose"`
}

// Events holds corporate events keyed by their unix timestamp.
type Events struct {
	Dividends map[string]DividendEvent `json:"dividends"`
}

// DividendEvent is one cash dividend.
type DividendEvent struct {
	Amount float64 `json:"amount"`
	Date   int64   `json:"date"`
}

// Indicators wraps the OHLCV arrays.
type Indicators struct {
	Quote []Quote `json:"quote"`
}

// Quote holds the OHLCV arrays, index-aligned with Result.Timestamp.
// Entries are pointers because Yahoo emits null for days without data.
type Quote struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*int64   `json:"volume"`
}
