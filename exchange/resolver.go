package exchange

import (
	"fmt"
	"strings"

	currency "go-currency-converter"
	"go-currency-converter/symbols"
)

// Resolver turns user-supplied identifiers, codes or symbols, into currency codes
type Resolver struct {
	rates   *currency.Table
	symbols *symbols.Table
}

// NewResolver constructs a Resolver over a rate table and a symbol table
func NewResolver(rates *currency.Table, symbols *symbols.Table) Resolver {
	return Resolver{rates: rates, symbols: symbols}
}

// Code resolves identifier. Codes match case-insensitively; symbols match exactly,
// after trimming. Symbols of currencies missing from the rate table, and ambiguous
// symbols, do not resolve.
func (r Resolver) Code(identifier string) (currency.Code, bool) {
	trimmed := strings.TrimSpace(identifier)
	if trimmed == "" {
		return "", false
	}

	code := currency.Code(strings.ToUpper(trimmed))
	if r.rates.Has(code) {
		return code, true
	}

	code, ok := r.symbols.Lookup(trimmed)
	if !ok || !r.rates.Has(code) {
		return "", false
	}
	return code, true
}

// Resolve resolves identifier or returns an error wrapping currency.ErrUnsupportedCurrency
func (r Resolver) Resolve(identifier string) (currency.Code, error) {
	if code, ok := r.Code(identifier); ok {
		return code, nil
	}
	if candidates := r.symbols.Ambiguous(strings.TrimSpace(identifier)); len(candidates) > 0 {
		return "", fmt.Errorf("%w: %q is ambiguous between %v", currency.ErrUnsupportedCurrency, identifier, candidates)
	}
	return "", fmt.Errorf("%w: %q", currency.ErrUnsupportedCurrency, identifier)
}
