package exchange

import (
	"fmt"

	currency "go-currency-converter"
)

// CrossRates derives rates from one currency using a table of rates against the base:
// rate(from -> x) = rate[x] / rate[from].
// With an empty to, every quoted currency is returned; otherwise only to.
func CrossRates(table *currency.Table, from, to currency.Code) (currency.Rates, error) {
	fromRate, ok := table.Rate(from)
	if !ok {
		return nil, fmt.Errorf("%w: %v", currency.ErrUnsupportedCurrency, from)
	}

	if to != "" {
		toRate, ok := table.Rate(to)
		if !ok {
			return nil, fmt.Errorf("%w: %v", currency.ErrUnsupportedCurrency, to)
		}
		return currency.Rates{to: toRate / fromRate}, nil
	}

	rates := make(currency.Rates, table.Len())
	for _, code := range table.Codes() {
		rate, _ := table.Rate(code)
		rates[code] = rate / fromRate
	}
	return rates, nil
}
