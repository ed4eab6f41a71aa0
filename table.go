package currency

import (
	"fmt"
	"math"
	"sort"
)

// Table exchange rates of every supported currency relative to a base currency.
// A Table is immutable once built and safe for concurrent reads.
type Table struct {
	base    Code
	rates   Rates
	dropped []Code
}

// NewTable builds a Table from rates relative to base. The base is always present with
// rate 1.0, whatever rates says about it. Entries with a malformed code or a rate that
// is not a positive finite number are left out and reported by Dropped.
func NewTable(base Code, rates Rates) (*Table, error) {
	if !IsCode(string(base)) {
		return nil, fmt.Errorf("bad base currency %q", base)
	}

	t := &Table{
		base:  base,
		rates: make(Rates, len(rates)+1),
	}
	for code, rate := range rates {
		if code == base {
			continue
		}
		if !IsCode(string(code)) || !validRate(rate) {
			t.dropped = append(t.dropped, code)
			continue
		}
		t.rates[code] = rate
	}
	t.rates[base] = 1.0
	sortCodes(t.dropped)

	return t, nil
}

// Base the currency all rates are relative to
func (t *Table) Base() Code {
	return t.base
}

// Rate of code relative to the base
func (t *Table) Rate(code Code) (Rate, bool) {
	rate, ok := t.rates[code]
	return rate, ok
}

// Has reports whether code is quoted
func (t *Table) Has(code Code) bool {
	_, ok := t.rates[code]
	return ok
}

// Codes every quoted currency, sorted
func (t *Table) Codes() []Code {
	codes := make([]Code, 0, len(t.rates))
	for code := range t.rates {
		codes = append(codes, code)
	}
	sortCodes(codes)
	return codes
}

// Dropped the provider entries NewTable left out, sorted
func (t *Table) Dropped() []Code {
	return append([]Code(nil), t.dropped...)
}

// Len number of quoted currencies, base included
func (t *Table) Len() int {
	return len(t.rates)
}

func validRate(rate Rate) bool {
	return rate > 0 && !math.IsInf(float64(rate), 0) && !math.IsNaN(float64(rate))
}

func sortCodes(codes []Code) {
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
}

// IsCode reports whether s has the shape of a currency code: three ASCII uppercase letters
func IsCode(s string) bool {
	if len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}
