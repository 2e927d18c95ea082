package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

type App struct {
	Development bool  `env:"DEVELOPMENT"`
	Board       Board `envPrefix:"MINES_"`
	Log         Log   `envPrefix:"MINES_"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*App, error) {
	var cfg App
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c App) Validate() error {
	return errors.Join(c.Board.Validate(), c.Log.Validate())
}
