package fixer

import (
	"context"
	"time"

	"github.com/go-kit/log"

	currency "go-currency-converter"
)

// loggingService decorates a fixer.Service with logging
type loggingService struct {
	next   Service
	logger log.Logger
}

// NewLoggingService return a new logging service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) LatestRates(ctx context.Context, base currency.Code) (rates currency.Rates, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "latest_rates",
			"base", base,
			"count", len(rates),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.LatestRates(ctx, base)
}
