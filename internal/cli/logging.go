// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/lmittmann/tint"

	"github.com/katalvlaran/modregex/synth"
)

// NewLogger returns a tint console logger writing to w.
func NewLogger(w io.Writer, cfg LoggingConfig) (*slog.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    !cfg.Color,
	})), nil
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return level, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}

// roundLogger routes elimination rounds to the debug log.
func roundLogger(logger *slog.Logger) func(synth.Round) error {
	return func(r synth.Round) error {
		logger.Debug("eliminated state",
			"round", r.Index,
			"state", r.State,
			"updates", r.Updates,
			"nodes", r.Nodes,
			"peak", r.Peak,
			"remaining", r.Remaining,
		)
		return nil
	}
}
