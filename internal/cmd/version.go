package cmd

import (
	"fmt"
	"io"
	"runtime"
	"runtime/debug"
	"slices"
)

var (
	commit   string
	Version  string // set by main
	versions = make(map[string]string)
	mainDeps = []string{
		"github.com/knadh/koanf/v2",
		"github.com/spf13/pflag",
		"github.com/lmittmann/tint",
	}
)

func version() string {
	if Version == "" {
		return versions["github.com/dalibo/permutate"]
	}
	return Version
}

func init() {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		panic("Failed to read build information.")
	}
	for _, mod := range bi.Deps {
		if slices.Contains(mainDeps, mod.Path) {
			versions[mod.Path] = mod.Version
		}
		if len(versions) >= len(mainDeps) {
			break
		}
	}

	versions[bi.Main.Path] = bi.Main.Version

	for i := range bi.Settings {
		if bi.Settings[i].Key == "vcs.revision" {
			commit = bi.Settings[i].Value[:min(8, len(bi.Settings[i].Value))]
			break
		}
	}
}

func showVersion(w io.Writer) {
	fmt.Fprintf(w, "permutate %s\n", version())

	for _, path := range mainDeps {
		fmt.Fprintf(w, "%s %s\n", path, versions[path])
	}

	fmt.Fprintf(w, "%s %s %s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
