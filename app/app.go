package app

import (
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	currency "go-currency-converter"
	"go-currency-converter/config"
	"go-currency-converter/exchange"
	"go-currency-converter/fixer"
	"go-currency-converter/symbols"
)

// NewService wires the rate provider, the symbol table and the exchange service described by cfg
func NewService(cfg *config.Config, logger log.Logger) (exchange.Service, error) {
	syms, err := LoadSymbols(cfg.SymbolsFile)
	if err != nil {
		return nil, err
	}
	for symbol, codes := range syms.AmbiguousSymbols() {
		level.Warn(logger).Log("msg", "ambiguous currency symbol will not resolve", "symbol", symbol, "codes", fmt.Sprint(codes))
	}

	fixerService := fixer.NewService(cfg.RatesURL, cfg.RatesTimeout)
	fixerService = fixer.NewLoggingService(level.Debug(log.With(logger, "component", "fixer_rest")), fixerService)
	fixerService = fixer.NewRetryingService(cfg.RatesRetries, cfg.RatesRetryBackoff, level.Warn(log.With(logger, "component", "fixer_retry")), fixerService)

	exchangeService := exchange.NewService(level.Warn(log.With(logger, "component", "exchange_rates")), fixerService, currency.Code(cfg.BaseCurrency), syms)
	exchangeService = exchange.NewLoggingService(level.Debug(log.With(logger, "component", "exchange")), exchangeService)

	return exchangeService, nil
}

// LoadSymbols loads the symbol table from path, or the built-in one when path is empty
func LoadSymbols(path string) (*symbols.Table, error) {
	if path == "" {
		return symbols.Default()
	}
	return symbols.LoadFile(path)
}
