package exchange

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	currency "go-currency-converter"
	"go-currency-converter/symbols"
)

// Converter converts amounts against a fixed rate table.
// A Converter is safe for concurrent use: it never mutates its tables.
type Converter struct {
	rates    *currency.Table
	symbols  *symbols.Table
	resolver Resolver
}

// New constructs a valid Converter
func New(rates *currency.Table, symbols *symbols.Table) *Converter {
	return &Converter{
		rates:    rates,
		symbols:  symbols,
		resolver: NewResolver(rates, symbols),
	}
}

// Convert converts amount from the input currency to the output currency, or to every
// supported currency when output is blank. Converted amounts are rounded half away from
// zero to 2 decimal places.
func (c *Converter) Convert(amount, input, output string) (currency.Result, error) {
	value, err := ParseAmount(amount)
	if err != nil {
		return currency.Result{}, err
	}

	from, to, err := c.codes(input, output)
	if err != nil {
		return currency.Result{}, err
	}

	rates, err := CrossRates(c.rates, from, to)
	if err != nil {
		return currency.Result{}, err
	}

	result := currency.Result{
		Input: currency.Input{
			Amount:   currency.Amount(value.InexactFloat64()),
			Currency: from,
		},
		Output: make(map[currency.Code]currency.Amount, len(rates)),
	}
	for code, rate := range rates {
		converted := value.Mul(decimal.NewFromFloat(float64(rate))).Round(2).InexactFloat64()
		if !finite(converted) {
			return currency.Result{}, fmt.Errorf("%w: %q in %v is out of range", currency.ErrValue, amount, code)
		}
		result.Output[code] = currency.Amount(converted)
	}

	return result, nil
}

// Rate the exchange rates from the input currency to the output currency, or to every
// supported currency when output is blank.
func (c *Converter) Rate(input, output string) (currency.Rates, error) {
	from, to, err := c.codes(input, output)
	if err != nil {
		return nil, err
	}
	return CrossRates(c.rates, from, to)
}

// Code resolves a code or symbol to a supported currency code
func (c *Converter) Code(identifier string) (currency.Code, bool) {
	return c.resolver.Code(identifier)
}

// Symbol the display symbol of a supported currency given by code or symbol
func (c *Converter) Symbol(identifier string) (string, bool) {
	code, ok := c.resolver.Code(identifier)
	if !ok {
		return "", false
	}
	return c.symbols.Canonical(code)
}

// SupportedCurrencies every code in the rate table, sorted
func (c *Converter) SupportedCurrencies() []currency.Code {
	return c.rates.Codes()
}

// Currencies describes every supported currency, sorted by code
func (c *Converter) Currencies() []currency.Info {
	codes := c.rates.Codes()
	infos := make([]currency.Info, len(codes))
	for i, code := range codes {
		symbol, _ := c.symbols.Canonical(code)
		infos[i] = currency.Info{
			Code:   code,
			Symbol: symbol,
			Name:   c.symbols.Name(code),
		}
	}
	return infos
}

func (c *Converter) codes(input, output string) (from, to currency.Code, err error) {
	from, err = c.resolver.Resolve(input)
	if err != nil {
		return "", "", fmt.Errorf("input currency: %w", err)
	}
	if strings.TrimSpace(output) == "" {
		return from, "", nil
	}
	to, err = c.resolver.Resolve(output)
	if err != nil {
		return "", "", fmt.Errorf("output currency: %w", err)
	}
	return from, to, nil
}

// maxExponent bounds the decimal exponent of an amount; rounding costs grow with it
const maxExponent = 100

// ParseAmount parses a decimal amount, returning an error wrapping currency.ErrValue
// when s is not a number or does not fit a float64.
func ParseAmount(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is not a number", currency.ErrValue, s)
	}
	if exp := d.Exponent(); exp > maxExponent || exp < -maxExponent {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is out of range", currency.ErrValue, s)
	}
	if !finite(d.InexactFloat64()) {
		return decimal.Decimal{}, fmt.Errorf("%w: %q is out of range", currency.ErrValue, s)
	}
	return d, nil
}

func finite(f float64) bool {
	return !math.IsInf(f, 0) && !math.IsNaN(f)
}
