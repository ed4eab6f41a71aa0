package fixer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-kit/log"
	"github.com/sethvargo/go-retry"

	currency "go-currency-converter"
)

// retryingService decorates a fixer.Service, re-attempting failed fetches
// a fixed number of times with a constant backoff.
type retryingService struct {
	// next the service being decorated
	next Service

	// retries attempts after the first one; 0 disables retrying
	retries uint64

	// backoff wait between attempts
	backoff time.Duration

	logger log.Logger
}

// NewRetryingService returns a new retrying Service
func NewRetryingService(retries uint64, backoff time.Duration, logger log.Logger, s Service) Service {
	return &retryingService{
		next:    s,
		retries: retries,
		backoff: backoff,
		logger:  logger,
	}
}

func (s *retryingService) LatestRates(ctx context.Context, base currency.Code) (currency.Rates, error) {
	if s.retries == 0 {
		return s.next.LatestRates(ctx, base)
	}

	b, err := retry.NewConstant(s.backoff)
	if err != nil {
		return nil, fmt.Errorf("retry backoff: %w", err)
	}
	b = retry.WithMaxRetries(s.retries, b)

	var rates currency.Rates
	attempt := 0
	err = retry.Do(ctx, b, func(ctx context.Context) error {
		attempt++
		r, err := s.next.LatestRates(ctx, base)
		if err != nil {
			s.logger.Log("msg", "fetch failed", "base", base, "attempt", attempt, "err", err)
			return retry.RetryableError(err)
		}
		rates = r
		return nil
	})
	if err != nil {
		if !errors.Is(err, currency.ErrConnection) {
			err = fmt.Errorf("%w: %w", currency.ErrConnection, err)
		}
		return nil, fmt.Errorf("after %d attempts: %w", attempt, err)
	}

	return rates, nil
}
