package http

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	currency "go-currency-converter"
)

type mock struct {
	t      *testing.T
	amount string
	input  string
	output string
	err    error
}

func (m *mock) Convert(_ context.Context, amount, input, output string) (currency.Result, error) {
	assert.Equal(m.t, m.amount, amount, "amount")
	assert.Equal(m.t, m.input, input, "input")
	assert.Equal(m.t, m.output, output, "output")
	if m.err != nil {
		return currency.Result{}, m.err
	}
	return currency.Result{
		Input:  currency.Input{Amount: 3, Currency: "GBP"},
		Output: map[currency.Code]currency.Amount{"FOO": 6},
	}, nil
}

func (m *mock) Currencies(_ context.Context) ([]currency.Info, error) {
	if m.err != nil {
		return nil, m.err
	}
	return []currency.Info{{Code: "GBP", Symbol: "£", Name: "British Pound"}}, nil
}

func (m *mock) Refresh(_ context.Context) error {
	return m.err
}

func TestServer_ServeHTTP(t *testing.T) {
	es := mock{
		t:      t,
		amount: "3",
		input:  "GBP",
		output: "FOO",
	}

	server := NewServer(&es)

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/convert?amount=3&input_currency=GBP&output_currency=FOO", nil)

	server.ServeHTTP(w, r)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Equal(t, `{"input":{"amount":3,"currency":"GBP"},"output":{"FOO":6}}`, strings.TrimSpace(w.Body.String()))
}

func TestServer_ServeHTTPFailures(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantKind string
	}{
		{"value", fmt.Errorf("%w: \"x\"", currency.ErrValue), http.StatusBadRequest, "ValueError"},
		{"unsupported", fmt.Errorf("%w: \"XXX\"", currency.ErrUnsupportedCurrency), http.StatusBadRequest, "UnsupportedCurrencyError"},
		{"connection", fmt.Errorf("%w: down", currency.ErrConnection), http.StatusBadGateway, "ConnectionError"},
		{"other", fmt.Errorf("boom"), http.StatusInternalServerError, "Error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			es := mock{t: t, amount: "x", input: "GBP", err: tt.err}
			server := NewServer(&es)

			w := httptest.NewRecorder()
			r := httptest.NewRequest("GET", "/api/convert?amount=x&input_currency=GBP", nil)

			server.ServeHTTP(w, r)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), `"`+tt.wantKind+`"`)
		})
	}
}

// unencodable a Service whose results json refuses
type unencodable struct {
	mock
}

func (u *unencodable) Convert(_ context.Context, _, _, _ string) (currency.Result, error) {
	return currency.Result{
		Input:  currency.Input{Amount: currency.Amount(math.Inf(1)), Currency: "GBP"},
		Output: map[currency.Code]currency.Amount{"FOO": currency.Amount(math.Inf(1))},
	}, nil
}

func TestServer_ServeHTTPUnencodable(t *testing.T) {
	server := NewServer(&unencodable{mock{t: t}})

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/convert?amount=3&input_currency=GBP", nil)

	server.ServeHTTP(w, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), `"Error"`)
}

func TestServer_Currencies(t *testing.T) {
	server := NewServer(&mock{t: t})

	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/api/currencies", nil)

	server.ServeHTTP(w, r)

	assert.Equal(t, 200, w.Code)
	assert.Equal(t, `[{"code":"GBP","symbol":"£","name":"British Pound"}]`, strings.TrimSpace(w.Body.String()))
}

func TestServer_MethodNotAllowed(t *testing.T) {
	server := NewServer(&mock{t: t})

	for _, path := range []string{"/api/convert", "/api/currencies"} {
		w := httptest.NewRecorder()
		r := httptest.NewRequest("POST", path, strings.NewReader(`{}`))

		server.ServeHTTP(w, r)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, path)
	}
}
