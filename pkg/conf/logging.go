// Copyright SAP SE
// SPDX-License-Identifier: Apache-2.0

package conf

import (
	"io"
	"log/slog"
	"os"

	"github.com/sapcc/go-api-declarations/bininfo"
)

// Level parsed from the config, case-insensitive and with offsets such as
// "warn+2". Unknown or empty levels fall back to info.
func (c LoggingConfig) Level() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LevelStr)); err != nil {
		return slog.LevelInfo
	}
	return level
}

// Use the configured logger for the whole process, writing to stdout.
func (c LoggingConfig) SetDefaultLogger() {
	c.setDefaultLogger(os.Stdout)
}

func (c LoggingConfig) setDefaultLogger(w io.Writer) {
	opts := &slog.HandlerOptions{Level: c}
	var handler slog.Handler
	if c.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	logger := slog.New(handler).With("component", bininfo.Component())
	slog.SetDefault(logger)
	logger.Debug("default logger configured", "level", c.Level().String(), "format", c.Format)
}
