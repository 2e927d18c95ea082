package main

import (
	"io"
	"log/slog"

	"github.com/lmittmann/tint"

	"github.com/vancomm/glsweeper/internal/config"
	"github.com/vancomm/glsweeper/internal/mines"
)

func newLogger(cfg *config.App, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.Log.SlogLevel()
	if err != nil {
		return nil, err
	}

	var logger *slog.Logger
	if cfg.Development {
		logger = slog.New(
			tint.NewHandler(w, &tint.Options{Level: slog.LevelDebug}),
		)
	} else {
		logger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}

	mines.Log = logger.With(slog.String("component", "mines"))
	return logger, nil
}
