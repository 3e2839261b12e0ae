package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// CurrentLevel is the level of the default logger.
var CurrentLevel slog.Level

// SetupLogging configures logging before loading configuration.
func SetupLogging() error {
	_, debug := os.LookupEnv("DEBUG")
	level := new(slog.LevelVar)
	if debug {
		level.Set(slog.LevelDebug)
	} else {
		// Early configuration using environment variable, to debug initialization.
		envlevel, found := os.LookupEnv(envPrefix + "VERBOSITY")
		if found {
			err := level.UnmarshalText([]byte(envlevel))
			if err != nil {
				return fmt.Errorf("bad %sVERBOSITY value: %s", envPrefix, envlevel)
			}
		}
	}

	SetLoggingHandler(level.Level(), defaultColor())
	return nil
}

func SetLoggingHandler(level slog.Level, color bool) {
	SetLoggingOutput(os.Stderr, level, color)
}

func SetLoggingOutput(w io.Writer, level slog.Level, color bool) {
	CurrentLevel = level
	var h slog.Handler
	if color {
		h = tint.NewHandler(w, &tint.Options{
			Level: level,
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				if a.Key == "err" && a.Value.Kind() == slog.KindAny && a.Value.Any() == nil {
					// Drop nil error.
					return slog.Attr{}
				}
				return a
			},
			TimeFormat: "15:04:05",
		})
	} else {
		h = slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: level,
		})
	}
	slog.SetDefault(slog.New(h))
}
