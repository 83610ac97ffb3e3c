// Package entity defines the domain models for the quotes feature.
package entity

import "time"

// Candle represents OHLCV (Open, High, Low, Close, Volume) candlestick data
// for one trading day of a ticker.
type Candle struct {
	Symbol string    // Ticker symbol (e.g. "AAPL")
	Time   time.Time // Start of the trading day
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}
