package logging

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"hermannm.dev/devlog"
)

// New builds a console logger whose level is driven by verbosity
// (-v, repeated: 0 = warn, 1 = info, 2+ = debug) unless logFilter names
// an explicit level, which always wins.
func New(w io.Writer, verbosity int, logFilter string) (*slog.Logger, error) {
	level, err := resolveLevel(verbosity, logFilter)
	if err != nil {
		return nil, err
	}
	var levelVar slog.LevelVar
	levelVar.Set(level)
	handler := devlog.NewHandler(w, &devlog.Options{Level: &levelVar})
	return slog.New(handler), nil
}

func resolveLevel(verbosity int, logFilter string) (slog.Level, error) {
	if logFilter != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(strings.ToLower(logFilter))); err != nil {
			return 0, fmt.Errorf("invalid --log-filter %q: %w", logFilter, err)
		}
		return level, nil
	}
	switch {
	case verbosity >= 2:
		return slog.LevelDebug, nil
	case verbosity == 1:
		return slog.LevelInfo, nil
	default:
		return slog.LevelWarn, nil
	}
}
