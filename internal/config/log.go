package config

import (
	"fmt"
	"log/slog"
)

type Log struct {
	File       string `env:"LOG_FILE" envDefault:"minesweeper.log"`
	Level      string `env:"LOG_LEVEL" envDefault:"info"`
	MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"10"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"3"`
}

func (l Log) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", l.Level, err)
	}
	return level, nil
}

func (l Log) Validate() error {
	_, err := l.SlogLevel()
	return err
}
