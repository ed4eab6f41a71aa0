package fixer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tidwall/gjson"

	currency "go-currency-converter"
)

const DefaultURL = "http://api.fixer.io/latest"

// Service wraps the rate provider REST API
type Service interface {
	// LatestRates loads the rates of every quoted currency relative to base.
	// Every failure wraps currency.ErrConnection.
	LatestRates(ctx context.Context, base currency.Code) (currency.Rates, error)
}

// service rate provider API
type service struct {
	// url endpoint, queried with ?base=<code>
	url string

	// client for HTTP requests
	client http.Client
}

// NewService constructs a valid Service. A zero timeout leaves the client without one.
func NewService(endpoint string, timeout time.Duration) Service {
	return &service{
		url: endpoint,
		client: http.Client{
			Timeout: timeout,
		},
	}
}

// LatestRates loads the current rates for a base currency.
// The body must carry a "rates" object mapping codes to numbers (or numeric strings).
func (s *service) LatestRates(ctx context.Context, base currency.Code) (currency.Rates, error) {
	u, err := url.Parse(s.url)
	if err != nil {
		return nil, fmt.Errorf("%w: bad url: %w", currency.ErrConnection, err)
	}
	q := u.Query()
	q.Set("base", string(base))
	u.RawQuery = q.Encode()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building http request: %w", currency.ErrConnection, err)
	}
	request.Header.Set("Accept", "application/json")

	httpResponse, err := s.client.Do(request)
	if err != nil {
		return nil, fmt.Errorf("%w: http get: %w", currency.ErrConnection, err)
	}
	defer httpResponse.Body.Close()

	if httpResponse.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: http status %v", currency.ErrConnection, httpResponse.Status)
	}

	bytes, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading json: %w", currency.ErrConnection, err)
	}

	rates, err := decodeRates(bytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", currency.ErrConnection, err)
	}

	return rates, nil
}

func decodeRates(body []byte) (currency.Rates, error) {
	if !gjson.ValidBytes(body) {
		return nil, errors.New("decoding json: invalid body")
	}

	field := gjson.GetBytes(body, "rates")
	if !field.IsObject() {
		return nil, errors.New("decoding json: no rates object")
	}

	rates := currency.Rates{}
	var err error
	field.ForEach(func(k, v gjson.Result) bool {
		var f float64
		switch v.Type {
		case gjson.Number:
			f = v.Float()
		case gjson.String:
			f, err = strconv.ParseFloat(v.Str, 64)
			if err != nil {
				err = fmt.Errorf("bad rate value for %v: %w", k.Str, err)
				return false
			}
		default:
			err = fmt.Errorf("bad rate value for %v: %v", k.Str, v.Raw)
			return false
		}
		rates[currency.Code(k.Str)] = currency.Rate(f)
		return true
	})
	if err != nil {
		return nil, err
	}

	return rates, nil
}
