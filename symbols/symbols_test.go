package symbols

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	currency "go-currency-converter"
)

func TestDefault(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	tests := []struct {
		symbol string
		want   currency.Code
	}{
		{"$", "USD"},
		{"€", "EUR"},
		{"£", "GBP"},
		{"¥", "JPY"},
		{"₩", "KRW"},
		{"฿", "THB"},
		{"₫", "VND"},
		{"₪", "ILS"},
		{"R$", "BRL"},
		{"AR$", "ARS"},
		{"CL$", "CLP"},
		{"R", "ZAR"},
	}
	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			code, ok := table.Lookup(tt.symbol)
			assert.True(t, ok)
			assert.Equal(t, tt.want, code)
		})
	}
}

func TestDefault_Ambiguous(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	_, ok := table.Lookup("kr")
	assert.False(t, ok)
	assert.Equal(t, []currency.Code{"DKK", "ISK", "NOK", "SEK"}, table.Ambiguous("kr"))
	assert.Nil(t, table.Ambiguous("$"))
	assert.Contains(t, table.AmbiguousSymbols(), "kr")
}

func TestDefault_Canonical(t *testing.T) {
	table, err := Default()
	require.NoError(t, err)

	s, ok := table.Canonical("SEK")
	assert.True(t, ok)
	assert.Equal(t, "kr", s)

	s, ok = table.Canonical("USD")
	assert.True(t, ok)
	assert.Equal(t, "$", s)

	_, ok = table.Canonical("XXX")
	assert.False(t, ok)

	assert.Equal(t, "Czech Koruna", table.Name("CZK"))
}

func TestLookup_CaseSensitive(t *testing.T) {
	table, err := New([]Entry{{Code: "CZK", Symbols: []string{"K\u010d"}}})
	require.NoError(t, err)

	_, ok := table.Lookup("K\u010c")
	assert.False(t, ok)

	code, ok := table.Lookup("K\u010d")
	assert.True(t, ok)
	assert.Equal(t, currency.Code("CZK"), code)
}

func TestLookup_Normalization(t *testing.T) {
	composed := "K\u010d"
	decomposed := "Kc\u030c"

	table, err := New([]Entry{{Code: "CZK", Symbols: []string{decomposed}}})
	require.NoError(t, err)

	code, ok := table.Lookup(composed)
	assert.True(t, ok)
	assert.Equal(t, currency.Code("CZK"), code)

	s, _ := table.Canonical("CZK")
	assert.Equal(t, composed, s)
}

func TestNew_Invalid(t *testing.T) {
	_, err := New([]Entry{
		{Code: "usd", Symbols: []string{"$"}},
		{Code: "EURO", Symbols: []string{"€"}},
		{Code: "GBP", Symbols: []string{""}},
		{Code: "JPY", Symbols: []string{"¥"}},
		{Code: "JPY", Symbols: []string{"¥"}},
	})
	require.Error(t, err)

	msg := err.Error()
	assert.True(t, strings.Contains(msg, "entry 0"), msg)
	assert.True(t, strings.Contains(msg, "entry 1"), msg)
	assert.True(t, strings.Contains(msg, "entry 2"), msg)
	assert.True(t, strings.Contains(msg, "duplicate code JPY"), msg)
}

func TestNew_RepeatedSymbolSameCode(t *testing.T) {
	table, err := New([]Entry{{Code: "USD", Symbols: []string{"$", "$"}}})
	require.NoError(t, err)

	code, ok := table.Lookup("$")
	assert.True(t, ok)
	assert.Equal(t, currency.Code("USD"), code)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "currencies.json")
	data := `[{"code":"EUR","name":"Euro","symbols":["€"]},{"code":"USD","symbols":["$"]}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	table, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []currency.Code{"EUR", "USD"}, table.Codes())

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoad_BadJSON(t *testing.T) {
	_, err := Load(strings.NewReader(`{"code":`))
	assert.Error(t, err)
}
