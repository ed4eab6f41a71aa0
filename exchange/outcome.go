package exchange

import (
	"context"
	"fmt"

	currency "go-currency-converter"
)

// Outcome of a safe conversion: exactly one of Result and Failure is set
type Outcome struct {
	Result  *currency.Result
	Failure *currency.Failure
}

// ExitCode 0 on success, 1 on failure
func (o Outcome) ExitCode() int {
	if o.Failure != nil {
		return 1
	}
	return 0
}

// Payload the value to serialize: the result or the failure payload
func (o Outcome) Payload() interface{} {
	if o.Failure != nil {
		return o.Failure
	}
	return o.Result
}

// TryConvert runs s.Convert and turns every failure, panics included, into a
// classified Failure instead of returning it.
func TryConvert(ctx context.Context, s Service, amount, input, output string) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			failure := currency.Failure{Kind: currency.KindOther, Message: fmt.Sprint(r)}
			outcome = Outcome{Failure: &failure}
		}
	}()

	result, err := s.Convert(ctx, amount, input, output)
	if err != nil {
		failure := currency.NewFailure(err)
		return Outcome{Failure: &failure}
	}
	return Outcome{Result: &result}
}
