package exchange

import (
	"context"
	"time"

	"github.com/go-kit/log"

	currency "go-currency-converter"
)

// loggingService decorates an exchange.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Convert(ctx context.Context, amount, input, output string) (result currency.Result, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "convert",
			"amount", amount,
			"input", input,
			"output", output,
			"currency", result.Input.Currency,
			"converted", len(result.Output),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Convert(ctx, amount, input, output)
}

func (s *loggingService) Currencies(ctx context.Context) (infos []currency.Info, err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "currencies",
			"count", len(infos),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Currencies(ctx)
}

func (s *loggingService) Refresh(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		s.logger.Log(
			"method", "refresh",
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Refresh(ctx)
}
