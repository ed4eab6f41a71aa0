package main

import (
	"context"
	"os"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/spf13/pflag"

	"go-currency-converter/app"
	"go-currency-converter/config"
	"go-currency-converter/http"
	"go-currency-converter/logging"

	nhttp "net/http"
)

func main() {
	config.Flags(pflag.CommandLine)
	pflag.Parse()

	cfg, err := config.Load(pflag.CommandLine)
	if err != nil {
		logger := logging.NewLogger(os.Stderr, "info")
		level.Error(logger).Log("msg", "loading configuration", "err", err)
		os.Exit(1)
	}

	logger := logging.NewLogger(os.Stderr, cfg.LogLevel)

	service, err := app.NewService(cfg, logger)
	if err != nil {
		level.Error(logger).Log("msg", "building service", "err", err)
		os.Exit(1)
	}

	// rates are fetched once, up front; the server never refreshes them on its own
	if err := service.Refresh(context.Background()); err != nil {
		level.Error(logger).Log("msg", "loading rates", "err", err)
		os.Exit(1)
	}

	handler := http.NewServer(service)

	addr := ":" + cfg.Port
	level.Info(logger).Log("msg", "listening", "addr", addr, "base", cfg.BaseCurrency)
	if err := nhttp.ListenAndServe(addr, handler); err != nil {
		level.Error(log.With(logger, "addr", addr)).Log("msg", "server stopped", "err", err)
		os.Exit(1)
	}
}
