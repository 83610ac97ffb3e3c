package entity

import "time"

// Dividend is a single cash dividend event reported by the market data API.
type Dividend struct {
	Date   time.Time
	Amount float64
}

// Quote is the latest snapshot for a ticker. DividendYield is the trailing
// twelve month dividend sum divided by the current price; zero for
// non-paying securities.
type Quote struct {
	Symbol        string
	Currency      string
	Price         float64
	PreviousClose float64
	DividendYield float64
	Dividends     []Dividend
}
