// Package logging builds the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/lmittmann/tint"
)

// tint color codes for request attributes.
const (
	colorStatusOK    = 10
	colorStatusError = 9
	colorDuration    = 214
)

// Options configure New.
type Options struct {
	Level   string
	Colored bool
}

// ParseLevel maps "debug", "info", "warn" and "error" to slog levels.
// Anything else is info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// New returns a tint-backed logger writing to w.
func New(w io.Writer, opts Options) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      ParseLevel(opts.Level),
		TimeFormat: time.DateTime,
		NoColor:    !opts.Colored,
	}))
}

// StatusAttr colors an HTTP status by class.
func StatusAttr(status int) slog.Attr {
	attr := slog.Int("status", status)
	if status >= 500 {
		return tint.Attr(colorStatusError, attr)
	}
	return tint.Attr(colorStatusOK, attr)
}

// DurationAttr renders a request duration.
func DurationAttr(d time.Duration) slog.Attr {
	return tint.Attr(colorDuration, slog.String("duration", d.String()))
}
