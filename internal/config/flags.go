package config

import (
	"github.com/spf13/pflag"
)

// NewFlagSet defines command line flags.
//
// Flag names are configuration keys.
func NewFlagSet(name string) *pflag.FlagSet {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SortFlags = false
	fs.BoolP("benchmark", "b", false, "Run permutations to completion without printing them.")
	fs.BoolP("files", "f", false, "Read values from files, one value per line.")
	fs.BoolP("no-delimiters", "n", false, "Don't separate values with a space.")
	fs.StringP("delimiter", "d", " ", "Separate values with this string.")
	fs.StringP("template", "t", "", "Print combinations with a template like '{0}-{1.upper()}'.")
	fs.StringP("config", "c", "", "Path to YAML configuration file.")
	fs.Bool("color", false, "Force color output.")
	fs.CountP("verbose", "v", "Increase log verbosity.")
	fs.CountP("quiet", "q", "Decrease log verbosity.")
	fs.BoolP("help", "h", false, "Show this help message and exit.")
	fs.BoolP("version", "V", false, "Show version and exit.")
	return fs
}
