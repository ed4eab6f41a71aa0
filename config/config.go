package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"go-currency-converter/fixer"
)

// Config holds application configuration.
type Config struct {
	// BaseCurrency the currency rates are requested against
	BaseCurrency string `validate:"required,len=3,alpha,uppercase"`

	// RatesURL provider endpoint, queried with ?base=
	RatesURL string `validate:"required,url"`

	// RatesTimeout bounds a rate fetch; 0 means no timeout
	RatesTimeout time.Duration `validate:"gte=0"`

	// RatesRetries extra attempts after a failed fetch
	RatesRetries uint64

	RatesRetryBackoff time.Duration `validate:"gt=0"`

	// SymbolsFile overrides the built-in currency data when set
	SymbolsFile string

	LogLevel string `validate:"oneof=debug info warn error none"`

	Port string `validate:"required"`
}

// flagKeys maps command-line flags to configuration keys
var flagKeys = map[string]string{
	"base_currency": "BASE_CURRENCY",
	"rates_url":     "RATES_URL",
	"symbols_file":  "SYMBOLS_FILE",
	"log_level":     "LOG_LEVEL",
}

// Flags registers the configuration flags that may override the environment
func Flags(fs *pflag.FlagSet) {
	fs.String("base_currency", "", "currency rates are fetched against (env BASE_CURRENCY)")
	fs.String("rates_url", "", "rate provider endpoint (env RATES_URL)")
	fs.String("symbols_file", "", "currency symbols data file (env SYMBOLS_FILE)")
	fs.String("log_level", "", "debug, info, warn, error or none (env LOG_LEVEL)")
}

// Load loads configuration from defaults, a .env file if present, environment variables
// and, when fs is not nil, flags registered with Flags.
func Load(fs *pflag.FlagSet) (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("BASE_CURRENCY", "USD")
	v.SetDefault("RATES_URL", fixer.DefaultURL)
	v.SetDefault("RATES_TIMEOUT", "0s")
	v.SetDefault("RATES_RETRIES", 0)
	v.SetDefault("RATES_RETRY_BACKOFF", "1s")
	v.SetDefault("SYMBOLS_FILE", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("PORT", "8080")
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flagKeys {
			f := fs.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag %v: %w", name, err)
			}
		}
	}

	cfg := &Config{
		BaseCurrency:      v.GetString("BASE_CURRENCY"),
		RatesURL:          v.GetString("RATES_URL"),
		RatesTimeout:      v.GetDuration("RATES_TIMEOUT"),
		RatesRetries:      v.GetUint64("RATES_RETRIES"),
		RatesRetryBackoff: v.GetDuration("RATES_RETRY_BACKOFF"),
		SymbolsFile:       v.GetString("SYMBOLS_FILE"),
		LogLevel:          v.GetString("LOG_LEVEL"),
		Port:              v.GetString("PORT"),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
