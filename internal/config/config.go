package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"reflect"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/mattn/go-isatty"
	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"

	"github.com/dalibo/permutate/internal/normalize"
	"github.com/dalibo/permutate/internal/output"
)

const envPrefix = "PERMUTATE_"

// Config holds flags, environment and file values controlling permutate.
type Config struct {
	Benchmark    bool
	Files        bool
	NoDelimiters bool `mapstructure:"no-delimiters"`
	Delimiter    string
	Template     string
	BufferSize   int `mapstructure:"buffer-size"`
	Color        bool
	Config       string
	Quiet        int
	Verbose      int
	Verbosity    string
	LogLevel     slog.Level `mapstructure:"-"`
}

func defaults() map[string]any {
	return map[string]any{
		"benchmark":     false,
		"files":         false,
		"no-delimiters": false,
		"delimiter":     " ",
		"template":      "",
		"buffer-size":   output.BufferSize,
		"color":         defaultColor(),
		"config":        "",
		"quiet":         0,
		"verbose":       0,
		"verbosity":     "",
	}
}

func defaultColor() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stderr.Fd())
}

// Load merges defaults, YAML file, environment and flags, in this order.
//
// flags must be parsed.
func Load(flags *pflag.FlagSet) (c Config, err error) {
	err = godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return c, fmt.Errorf(".env: %w", err)
	}

	k := koanf.New(".")
	_ = k.Load(confmap.Provider(defaults(), k.Delim()), nil)

	path, _ := flags.GetString("config")
	if path == "" {
		path = os.Getenv(envPrefix + "CONFIG")
	}
	path = FindFile(path)
	if path != "" {
		slog.Debug("Loading YAML configuration.", "path", path)
		err = k.Load(fileProvider{path: path}, parser{})
		if err != nil {
			return c, fmt.Errorf("%s: %w", path, err)
		}
	}

	_ = k.Load(env.Provider(envPrefix, k.Delim(), func(key string) string {
		slog.Debug("Loading environment variable.", "var", key)
		key = strings.TrimPrefix(key, envPrefix)
		return strings.ReplaceAll(strings.ToLower(key), "_", "-")
	}), nil)

	err = k.Load(posflag.Provider(flags, k.Delim(), k), nil)
	if err != nil {
		return c, fmt.Errorf("flags: %w", err)
	}

	err = decode(k.Raw(), &c)
	if err != nil {
		return c, err
	}
	c.LogLevel, err = c.level()
	return c, err
}

func decode(raw map[string]any, c *Config) error {
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       decodeHook,
		Result:           c,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return d.Decode(raw)
}

// Normalize loose values. Implements mapstructure.DecodeHookFuncValue.
func decodeHook(from, to reflect.Value) (any, error) {
	if to.Kind() == reflect.Bool {
		return normalize.Boolean(from.Interface()), nil
	}
	return from.Interface(), nil
}

var levels = []slog.Level{
	slog.LevelDebug,
	slog.LevelInfo,
	slog.LevelWarn,
	slog.LevelError,
}

func (c Config) level() (slog.Level, error) {
	if c.Verbosity == "" {
		// Default log level is INFO, which index is 1.
		index := 1 - c.Verbose + c.Quiet
		index = max(0, min(index, len(levels)-1))
		return levels[index], nil
	}
	var level slog.Level
	err := level.UnmarshalText([]byte(c.Verbosity))
	if err != nil {
		return slog.LevelInfo, fmt.Errorf("bad verbosity: %w", err)
	}
	return level, nil
}

// Separator returns the string printed between values.
func (c Config) Separator() string {
	if c.NoDelimiters {
		return ""
	}
	return c.Delimiter
}
