package exchange

import (
	"testing"

	"github.com/stretchr/testify/require"

	currency "go-currency-converter"
	"go-currency-converter/symbols"
)

// testRates a USD based table without ZAR, as published by the ECB
var testRates = currency.Rates{
	"BRL": 3.1512,
	"CZK": 25.108,
	"EUR": 0.93084,
	"GBP": 0.78,
	"ILS": 3.6512,
	"JPY": 109.08,
	"KRW": 1134.2,
	"SEK": 8.9044,
	"DKK": 6.9236,
	"THB": 34.37,
}

func testTables(t *testing.T) (*currency.Table, *symbols.Table) {
	t.Helper()

	rates, err := currency.NewTable("USD", testRates)
	require.NoError(t, err)

	syms, err := symbols.Default()
	require.NoError(t, err)

	return rates, syms
}

func testConverter(t *testing.T) *Converter {
	t.Helper()
	return New(testTables(t))
}
