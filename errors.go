package currency

import (
	"encoding/json"
	"errors"
)

var (
	// ErrConnection the rate provider could not be reached or returned an unusable response
	ErrConnection = errors.New("unable to fetch exchange rates")

	// ErrUnsupportedCurrency a currency code or symbol could not be resolved
	ErrUnsupportedCurrency = errors.New("currency code or symbol is not supported")

	// ErrValue an amount is not a number, or is too large or too precise to convert
	ErrValue = errors.New("invalid amount")
)

// ErrorKind names the class of a failure in error payloads
type ErrorKind string

const (
	// KindConnection the rate provider failed
	KindConnection ErrorKind = "ConnectionError"
	// KindUnsupportedCurrency an input or output currency did not resolve
	KindUnsupportedCurrency ErrorKind = "UnsupportedCurrencyError"
	// KindValue the amount is not a usable number
	KindValue ErrorKind = "ValueError"
	// KindOther anything else
	KindOther ErrorKind = "Error"
)

// KindOf classifies err. Errors that wrap none of the sentinels are KindOther.
func KindOf(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrConnection):
		return KindConnection
	case errors.Is(err, ErrUnsupportedCurrency):
		return KindUnsupportedCurrency
	case errors.Is(err, ErrValue):
		return KindValue
	default:
		return KindOther
	}
}

// Failure a classified error, marshalled as {"<kind>": "<message>"}
type Failure struct {
	Kind    ErrorKind
	Message string
}

// NewFailure classifies err
func NewFailure(err error) Failure {
	return Failure{Kind: KindOf(err), Message: err.Error()}
}

// MarshalJSON encodes the failure as {"<kind>": "<message>"}
func (f Failure) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[ErrorKind]string{f.Kind: f.Message})
}
