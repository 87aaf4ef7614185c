// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Sources holds the CSV export URL of each spreadsheet tab.
type Sources struct {
	WorksURL    string `env:"SHEETFOLIO_WORKS_URL" envDefault:"https://docs.google.com/spreadsheets/d/e/2PACX-1vRVcLlVMNA4wX8PevFh09fjGRqMZtpt3hdmjLAZo46Y18IM_19musy7Jx1odVjx3SdIY-MEUfTLjb4o/pub?gid=1920935035&single=true&output=csv" validate:"required,url"`
	SettingsURL string `env:"SHEETFOLIO_SETTINGS_URL" envDefault:"https://docs.google.com/spreadsheets/d/e/2PACX-1vRVcLlVMNA4wX8PevFh09fjGRqMZtpt3hdmjLAZo46Y18IM_19musy7Jx1odVjx3SdIY-MEUfTLjb4o/pub?gid=352265221&single=true&output=csv" validate:"required,url"`
	ResumeURL   string `env:"SHEETFOLIO_RESUME_URL" envDefault:"https://docs.google.com/spreadsheets/d/e/2PACX-1vRVcLlVMNA4wX8PevFh09fjGRqMZtpt3hdmjLAZo46Y18IM_19musy7Jx1odVjx3SdIY-MEUfTLjb4o/pub?gid=699763124&single=true&output=csv" validate:"required,url"`
	ContactURL  string `env:"SHEETFOLIO_CONTACT_URL" envDefault:"https://docs.google.com/spreadsheets/d/e/2PACX-1vRVcLlVMNA4wX8PevFh09fjGRqMZtpt3hdmjLAZo46Y18IM_19musy7Jx1odVjx3SdIY-MEUfTLjb4o/pub?gid=838679064&single=true&output=csv" validate:"required,url"`
}

// Config is the process configuration.
type Config struct {
	Sources
	Addr        string        `env:"SHEETFOLIO_ADDR" envDefault:"127.0.0.1:8080" validate:"required,hostname_port"`
	HTTPTimeout time.Duration `env:"SHEETFOLIO_HTTP_TIMEOUT" envDefault:"30s" validate:"gt=0"`
	UserAgent   string        `env:"SHEETFOLIO_USER_AGENT"`
	Verbose     bool          `env:"SHEETFOLIO_VERBOSE" envDefault:"false"`
}

// Load reads files (default ".env" when none are named) into the process
// environment, then parses the environment into a Config. Missing files
// are not an error.
func Load(files ...string) (Config, error) {
	_ = godotenv.Load(files...)
	return Parse()
}

// Parse builds a Config from the current environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that every source is an absolute URL and the listen
// address is host:port.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
