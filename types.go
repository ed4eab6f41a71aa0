package currency

// Code a 3-letter currency code, e.g. USD
type Code string

// Amount a monetary amount
type Amount float64

// Rate an exchange rate
type Rate float64

// Rates maps currency codes to rates
type Rates map[Code]Rate

// Input the amount and resolved currency a conversion started from
type Input struct {
	Amount   Amount `json:"amount"`
	Currency Code   `json:"currency"`
}

// Result of a conversion. Output amounts are rounded to 2 decimal places.
type Result struct {
	Input  Input           `json:"input"`
	Output map[Code]Amount `json:"output"`
}

// Info describes a supported currency
type Info struct {
	Code   Code   `json:"code"`
	Symbol string `json:"symbol,omitempty"`
	Name   string `json:"name,omitempty"`
}
