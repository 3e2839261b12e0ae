package config

import (
	"fmt"
	"os"
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/knadh/koanf/maps"
	"gopkg.in/yaml.v3"
)

var knownKeys = mapset.NewSet(
	"benchmark",
	"files",
	"no-delimiters",
	"delimiter",
	"template",
	"buffer-size",
	"color",
	"verbosity",
)

// fileProvider reads a file for koanf.
type fileProvider struct {
	path string
}

func (p fileProvider) ReadBytes() ([]byte, error) {
	if p.path == "-" {
		return nil, fmt.Errorf("configuration can't be read from stdin")
	}
	return os.ReadFile(p.path)
}

func (fileProvider) Read() (map[string]any, error) {
	panic("not implemented")
}

// parser returns YAML configuration as plain map for koanf.
type parser struct{}

func (parser) Unmarshal(data []byte) (map[string]any, error) {
	var root map[string]any
	err := yaml.Unmarshal(data, &root)
	if err != nil {
		return nil, err
	}
	// Nested maps flatten to unknown dotted keys.
	flat, _ := maps.Flatten(root, nil, ".")
	keys := mapset.NewSetFromMapKeys(flat)
	unknown := keys.Difference(knownKeys).ToSlice()
	if len(unknown) > 0 {
		slices.Sort(unknown)
		return nil, fmt.Errorf("unknown key '%s'", unknown[0])
	}
	return maps.Unflatten(flat, "."), nil
}

func (parser) Marshal(map[string]any) ([]byte, error) {
	panic("not implemented")
}
