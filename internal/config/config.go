package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// ConnectionsCfg carries the named connection strings. Selection between
// them is configuration-driven, never discovered at runtime.
type ConnectionsCfg struct {
	ErpProdDSN string `env:"ERP_PROD_DSN"`
	ErpTestDSN string `env:"ERP_TEST_DSN"`
	DwhDSN     string `env:"DWH_DSN"`
	LogsDSN    string `env:"LOGS_DSN"`
}

// Config is application configuration
type Config struct {
	AppName        string `env:"APP_NAME" envDefault:"erp-crm-api"`
	Port           int    `env:"PORT" envDefault:"3000"`
	TestMode       bool   `env:"ERP_TEST_MODE" envDefault:"true"`
	ConnectionsCfg ConnectionsCfg
}

// Build reads configuration from .env file (when present) and environment
func Build() (Config, error) {
	var cfg Config

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("failed to load .env file - %w", err)
	}

	opts := env.Options{RequiredIfNoDef: true}
	if err := env.Parse(&cfg, opts); err != nil {
		return cfg, fmt.Errorf("failed to parse environment variables - %w", err)
	}

	return cfg, nil
}
