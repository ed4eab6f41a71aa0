package exchange

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-kit/log"

	currency "go-currency-converter"
	"go-currency-converter/fixer"
	"go-currency-converter/symbols"
)

// Service converts amounts with rates fetched from the provider
type Service interface {
	Convert(ctx context.Context, amount, input, output string) (currency.Result, error)
	Currencies(ctx context.Context) ([]currency.Info, error)
	Refresh(ctx context.Context) error
}

// service fetches the rate table once, on first use, and converts against it
type service struct {
	// fixerService to fetch rates against base
	fixerService fixer.Service
	base         currency.Code
	symbols      *symbols.Table

	// logger for provider entries the rate table leaves out
	logger log.Logger

	// lock guards converter, which is replaced whole by a refresh
	lock      sync.Mutex
	converter *Converter
}

// NewService constructs a valid Service
func NewService(logger log.Logger, s fixer.Service, base currency.Code, symbols *symbols.Table) Service {
	return &service{
		logger:       logger,
		fixerService: s,
		base:         base,
		symbols:      symbols,
	}
}

// Convert see Converter.Convert. The first call fetches the rates.
func (s *service) Convert(ctx context.Context, amount, input, output string) (currency.Result, error) {
	c, err := s.load(ctx)
	if err != nil {
		return currency.Result{}, err
	}
	return c.Convert(amount, input, output)
}

// Currencies every supported currency
func (s *service) Currencies(ctx context.Context) ([]currency.Info, error) {
	c, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return c.Currencies(), nil
}

// Refresh fetches the rates now, replacing the current table on success
func (s *service) Refresh(ctx context.Context) error {
	c, err := s.fetch(ctx)
	if err != nil {
		return err
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	s.converter = c
	return nil
}

// load returns the current converter, fetching rates if there are none yet.
// A failed fetch leaves nothing behind, so the next call tries again.
func (s *service) load(ctx context.Context) (*Converter, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if s.converter != nil {
		return s.converter, nil
	}

	c, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}
	s.converter = c
	return c, nil
}

func (s *service) fetch(ctx context.Context) (*Converter, error) {
	rates, err := s.fixerService.LatestRates(ctx, s.base)
	if err != nil {
		return nil, fmt.Errorf("loading rates [%v]: %w", s.base, err)
	}

	table, err := currency.NewTable(s.base, rates)
	if err != nil {
		return nil, fmt.Errorf("%w: unusable rates [%v]: %w", currency.ErrConnection, s.base, err)
	}
	for _, code := range table.Dropped() {
		s.logger.Log("msg", "dropping malformed rate", "base", s.base, "code", code, "rate", rates[code])
	}

	return New(table, s.symbols), nil
}
