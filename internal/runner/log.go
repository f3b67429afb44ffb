package runner

import (
	"io"
	"log/slog"
)

// newLogger returns a text logger without timestamps. The level label is
// omitted for info records, which carry the normal progress messages.
func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			if a.Key == slog.LevelKey && a.Value.String() == slog.LevelInfo.String() {
				return slog.Attr{}
			}
			return a
		},
	}))
}
