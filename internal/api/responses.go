// Package api defines the shared request and response DTOs for the HTTP API.
package api

// ErrorResponse is the common error payload returned by all endpoints.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is a simple acknowledgement payload.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a signed JWT after a successful login.
type TokenResponse struct {
	Token string `json:"token"`
}

// SignupRequest represents the request body for the /signup endpoint.
// Gin binding tags validate presence, email format and password length.
type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest represents the request body for the /login endpoint.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// CandleResponse is one OHLCV bar of a price history response.
type CandleResponse struct {
	Time   string  `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// QuoteResponse is the latest quote for a ticker, including the trailing
// twelve month dividend yield when the security pays dividends.
type QuoteResponse struct {
	Symbol        string             `json:"symbol"`
	Currency      string             `json:"currency"`
	Price         float64            `json:"price"`
	PreviousClose float64            `json:"previous_close"`
	DividendYield float64            `json:"dividend_yield"`
	Dividends     []DividendResponse `json:"dividends,omitempty"`
}

// DividendResponse is a single cash dividend event.
type DividendResponse struct {
	Date   string  `json:"date"`
	Amount float64 `json:"amount"`
}

// AllotmentResponse is one row of a DART dividend disclosure. The term values
// are reported verbatim: DART formats them with thousands separators and uses
// "-" for not-applicable cells.
type AllotmentResponse struct {
	CorpCode    string `json:"corp_code"`
	CorpName    string `json:"corp_name"`
	Item        string `json:"item"`
	StockKind   string `json:"stock_kind,omitempty"`
	CurrentTerm string `json:"current_term"`
	PriorTerm   string `json:"prior_term"`
	TwoPrior    string `json:"two_terms_prior"`
}

// RefreshResponse reports the outcome of a company directory refresh.
type RefreshResponse struct {
	Count int `json:"count"`
}

// CompanyResponse is one entry of the listed-company directory.
type CompanyResponse struct {
	CorpCode  string `json:"corp_code"`
	StockCode string `json:"stock_code"`
	Name      string `json:"name"`
}
