package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/lithammer/dedent"
	"github.com/spf13/pflag"

	"github.com/dalibo/permutate/internal/arguments"
	"github.com/dalibo/permutate/internal/config"
	"github.com/dalibo/permutate/internal/output"
	"github.com/dalibo/permutate/internal/perf"
	"github.com/dalibo/permutate/internal/pyfmt"
	"github.com/dalibo/permutate/pkg/permutator"
)

// Standard streams, redirected for testing.
var (
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

const exampleUsage = "Example Usage: permutate 1 2 3 ::: 4 5 6 ::: 1 2 3"

func Main() {
	defer logPanic()

	err := config.SetupLogging()
	if err == nil {
		err = run(os.Args[1:])
	}
	if err == nil {
		return
	}

	var code errorCode
	if errors.As(err, &code) {
		code.Exit()
	}
	slog.Error("Fatal error.", "err", err)
	if config.CurrentLevel > slog.LevelDebug {
		slog.Error("Run permutate with --verbose to get more informations.")
	}
	os.Exit(1)
}

func run(args []string) error {
	fs := config.NewFlagSet("permutate")
	fs.SetOutput(Stderr)
	// Values like -1 are not flags.
	fs.SetInterspersed(false)
	fs.Usage = func() {}
	err := fs.Parse(args)
	if err != nil {
		fmt.Fprintf(Stderr, "permutate: %s\n", err)
		fmt.Fprintf(Stderr, "Try 'permutate --help' for more information.\n")
		return errorCode{code: 1, message: err.Error()}
	}

	if help, _ := fs.GetBool("help"); help {
		usage(Stdout, fs)
		return nil
	} else if v, _ := fs.GetBool("version"); v {
		showVersion(Stdout)
		return nil
	}

	c, err := config.Load(fs)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	config.SetLoggingOutput(Stderr, c.LogLevel, c.Color)
	slog.Debug("Starting permutate.",
		"version", version(),
		"runtime", runtime.Version(),
		"commit", commit,
		"pid", os.Getpid(),
	)

	lists, err := arguments.Parse(strings.Join(fs.Args(), " "), c.Files)
	if err != nil {
		fmt.Fprintf(Stderr, "permutate: parse error: %s.\n", err)
		fmt.Fprintln(Stderr, exampleUsage)
		return errorCode{code: 1, message: "parse error"}
	}

	p, err := newPermutator(lists)
	if err != nil {
		return err
	}
	slog.Debug("Permutating lists.", "lists", len(lists), "total", p.Total())

	if c.Benchmark {
		benchmark(p)
		return nil
	}
	printer, err := newPrinter(c, width(lists))
	if err != nil {
		return err
	}
	return permutate(p, printer)
}

// width returns the number of values in a combination.
func width(lists [][]string) int {
	if len(lists) == 1 {
		return len(lists[0])
	}
	return len(lists)
}

func newPrinter(c config.Config, width int) (*output.Printer, error) {
	buffer := output.NewBuffer(Stdout, c.BufferSize)
	if c.Template == "" {
		return output.NewPrinter(buffer, c.Separator()), nil
	}
	template, err := pyfmt.Parse(c.Template)
	if err != nil {
		return nil, fmt.Errorf("template: %w", err)
	}
	if template.Width() > width {
		return nil, fmt.Errorf("template: field {%d} out of %d values", template.Width()-1, width)
	}
	return output.NewTemplatePrinter(buffer, template), nil
}

// newPermutator permutates a single list with itself.
func newPermutator(lists [][]string) (*permutator.Permutator[[]string], error) {
	if len(lists) == 1 {
		return permutator.NewRepeated(lists[0])
	}
	return permutator.NewLists(lists...)
}

func permutate(p *permutator.Permutator[[]string], printer *output.Printer) error {
	buffer, ok := p.Next()
	for ok {
		err := printer.Print(buffer)
		if err != nil {
			return fmt.Errorf("write: %w", err)
		}
		ok = p.NextInto(&buffer)
	}
	err := printer.Flush()
	if err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}

func benchmark(p *permutator.Permutator[[]string]) {
	watch := perf.StopWatch{}
	count := 0
	watch.TimeIt(func() {
		buffer, ok := p.Next()
		for ok {
			count++
			ok = p.NextInto(&buffer)
		}
	})
	slog.Info("Benchmark complete.",
		"count", count,
		"elapsed", watch.Total,
		"rate", fmt.Sprintf("%.0f/s", watch.Rate(count)),
		"mempeak", perf.FormatBytes(perf.ReadVMPeak()),
	)
}

func usage(w io.Writer, fs *pflag.FlagSet) {
	fmt.Fprintf(w, "usage: permutate [OPTIONS] [VALUES...] [::: VALUES...]...\n\n")
	fmt.Fprint(w, fs.FlagUsages())
	fmt.Fprint(w, dedent.Dedent(`

	Prints every combination of the input lists, one per line. The last list
	varies fastest. A single list is permutated with itself.

	Separators:
	    :::   Start a new list.
	    ::::  Start a new list of files, one value per line. - is stdin.
	    :::+  Append following values to the previous list.

	Options may be set in permutate.yml or with PERMUTATE_* environment
	variables, e.g. PERMUTATE_DELIMITER=, or PERMUTATE_VERBOSITY=debug.
	`))
	fmt.Fprintf(w, "\n%s\n", exampleUsage)
}

func logPanic() {
	r := recover()
	if r == nil {
		return
	}
	slog.Error("Panic!", "err", r)
	buf := debug.Stack()
	fmt.Fprintf(os.Stderr, "%s", buf)
	slog.Error("Aborting permutate.", "err", r)
	if config.CurrentLevel > slog.LevelDebug {
		slog.Error("Run permutate with --verbose to get more informations.")
	}
	os.Exit(1)
}
