package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log/level"
	"github.com/spf13/pflag"

	currency "go-currency-converter"
	"go-currency-converter/app"
	"go-currency-converter/config"
	"go-currency-converter/exchange"
	"go-currency-converter/logging"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run performs one conversion and prints the result, or the failure payload, as JSON.
// It returns the process exit code: 0 on success, 1 on a failed conversion, 2 on bad usage.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := pflag.NewFlagSet("currency_converter", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	amount := fs.String("amount", "", "amount to convert (required)")
	input := fs.String("input_currency", "", "code or symbol of the input currency (required)")
	output := fs.String("output_currency", "", "code or symbol of the output currency; all currencies when omitted")
	config.Flags(fs)

	if err := fs.Parse(args); err != nil {
		return 2
	}
	for _, name := range []string{"amount", "input_currency"} {
		if !fs.Changed(name) {
			fmt.Fprintf(stderr, "missing required flag --%v\n", name)
			fs.PrintDefaults()
			return 2
		}
	}

	cfg, err := config.Load(fs)
	if err != nil {
		return fail(stdout, err)
	}

	logger := logging.NewLogger(stderr, cfg.LogLevel)

	service, err := app.NewService(cfg, logger)
	if err != nil {
		return fail(stdout, err)
	}

	outcome := exchange.TryConvert(ctx, service, *amount, *input, *output)
	if outcome.Failure != nil {
		level.Error(logger).Log("msg", "conversion failed", "kind", outcome.Failure.Kind, "err", outcome.Failure.Message)
	}
	if err := printJSON(stdout, outcome.Payload()); err != nil {
		level.Error(logger).Log("msg", "writing result", "err", err)
		return 1
	}
	return outcome.ExitCode()
}

func fail(stdout io.Writer, err error) int {
	_ = printJSON(stdout, currency.NewFailure(err))
	return 1
}

// printJSON writes v as JSON indented by four spaces. Object keys come out sorted.
func printJSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "    ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
