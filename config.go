package main

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/jhw/go-lafon/pkg/lafon"
)

// Config holds demo defaults read from the environment. Flags override them.
type Config struct {
	Engine     string  `env:"LAFON_ENGINE" envDefault:"auto"`
	ExactLimit int     `env:"LAFON_EXACT_LIMIT" envDefault:"10000"`
	Precision  int32   `env:"LAFON_PRECISION" envDefault:"10"`
	Threshold  float64 `env:"LAFON_THRESHOLD" envDefault:"0.05"`
	Debug      bool    `env:"LAFON_DEBUG" envDefault:"false"`
}

// loadConfig loads configuration from environment variables
func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// options converts the demo configuration into engine options
func (c Config) options() (lafon.Options, error) {
	kind, err := lafon.ParseEngineKind(c.Engine)
	if err != nil {
		return lafon.Options{}, err
	}
	return lafon.Options{
		Engine:     kind,
		ExactLimit: c.ExactLimit,
		Precision:  c.Precision,
		Threshold:  c.Threshold,
		Debug:      c.Debug,
	}, nil
}
