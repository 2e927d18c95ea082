package config

import (
	"fmt"

	"github.com/vancomm/glsweeper/internal/mines"
)

type Board struct {
	Width   int     `env:"WIDTH" envDefault:"11"`
	Height  int     `env:"HEIGHT" envDefault:"11"`
	Density float64 `env:"DENSITY" envDefault:"0.2"`
	// Seed makes mine placement reproducible; 0 picks a random seed.
	Seed     uint64 `env:"SEED"`
	MinSize  int    `env:"MIN_SIZE" envDefault:"1"`
	MaxSize  int    `env:"MAX_SIZE" envDefault:"1000"`
	SizeStep int    `env:"SIZE_STEP" envDefault:"5"`
}

func (b Board) Validate() error {
	if b.MinSize < 1 {
		return fmt.Errorf("min size must be at least 1, got %d", b.MinSize)
	}
	if b.MaxSize < b.MinSize {
		return fmt.Errorf("max size %d is below min size %d", b.MaxSize, b.MinSize)
	}
	if b.SizeStep < 1 {
		return fmt.Errorf("size step must be at least 1, got %d", b.SizeStep)
	}
	if b.Width < b.MinSize || b.Width > b.MaxSize ||
		b.Height < b.MinSize || b.Height > b.MaxSize {
		return fmt.Errorf(
			"board %dx%d is outside %d..%d", b.Width, b.Height, b.MinSize, b.MaxSize,
		)
	}
	if b.Density < 0 || b.Density >= 1 {
		return fmt.Errorf("density must be in [0, 1), got %g", b.Density)
	}
	return nil
}

func (b Board) Limits() mines.Limits {
	return mines.Limits{Min: b.MinSize, Max: b.MaxSize, Step: b.SizeStep}
}
