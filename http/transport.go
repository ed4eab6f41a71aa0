package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	currency "go-currency-converter"
	"go-currency-converter/exchange"
)

// Server dependencies for HTTP Server functions
type Server struct {
	Service exchange.Service
	router  http.ServeMux
}

func NewServer(s exchange.Service) *Server {
	server := &Server{
		Service: s,
		router:  http.ServeMux{},
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Handle("/api/convert", s.convert())
	s.router.Handle("/api/currencies", s.currencies())
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// convert produces HTTP handler for currency conversions.
// Query parameters mirror the command-line flags.
func (s *Server) convert() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeJSON(rw, http.StatusMethodNotAllowed, currency.Failure{Kind: currency.KindOther, Message: "method not allowed"})
			return
		}

		q := r.URL.Query()
		outcome := exchange.TryConvert(r.Context(), s.Service,
			q.Get("amount"),
			q.Get("input_currency"),
			q.Get("output_currency"),
		)
		if outcome.Failure != nil {
			writeJSON(rw, status(outcome.Failure.Kind), outcome.Failure)
			return
		}

		writeJSON(rw, http.StatusOK, outcome.Result)
	}
}

// currencies produces HTTP handler listing supported currencies
func (s *Server) currencies() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeJSON(rw, http.StatusMethodNotAllowed, currency.Failure{Kind: currency.KindOther, Message: "method not allowed"})
			return
		}

		infos, err := s.Service.Currencies(r.Context())
		if err != nil {
			failure := currency.NewFailure(err)
			writeJSON(rw, status(failure.Kind), failure)
			return
		}

		writeJSON(rw, http.StatusOK, infos)
	}
}

func status(kind currency.ErrorKind) int {
	switch kind {
	case currency.KindValue, currency.KindUnsupportedCurrency:
		return http.StatusBadRequest
	case currency.KindConnection:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeJSON encodes v before touching rw, so a value json cannot encode becomes a 500 error payload
func writeJSON(rw http.ResponseWriter, code int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		code = http.StatusInternalServerError
		body, _ = json.Marshal(currency.Failure{Kind: currency.KindOther, Message: fmt.Sprintf("encoding response: %v", err)})
	}
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(code)
	_, _ = rw.Write(append(body, '\n'))
}
