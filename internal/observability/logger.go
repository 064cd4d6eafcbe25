// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package observability constructs the process-wide logger.
package observability

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates a console-format zerolog logger writing to w. When debug
// is false the level is capped at info, matching the CLI's --debug toggle.
func NewLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
