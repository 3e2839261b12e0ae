// Build lists of values from command line arguments.
package arguments

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dalibo/permutate/internal/errorlist"
	"github.com/dalibo/permutate/internal/lists"
)

const (
	// Separator starts a new list.
	Separator = ":::"
	// FileSeparator starts a new list read from files.
	FileSeparator = "::::"
	// AppendSeparator appends following values to the previous list.
	AppendSeparator = ":::+"
)

var (
	ErrNoInputsProvided = errors.New("no input was provided after separator")
	ErrNotEnoughInputs  = errors.New("not enough inputs were provided")
)

// Stdin is read for the - file path. Redirected for testing.
var Stdin io.Reader = os.Stdin

type FileError struct {
	Path string
	Err  error
}

func (err *FileError) Error() string {
	return fmt.Sprintf("%s could not be read: %s", err.Path, err.Err)
}

func (err *FileError) Unwrap() error {
	return err.Err
}

// Parse splits input in lists of values.
//
// If files is true, each value is a path to a file whose lines are the
// values of the list. Multiple files in the same list are concatenated.
//
// File errors are aggregated in an errorlist.List.
func Parse(input string, files bool) ([][]string, error) {
	out := [][]string{nil}
	readFiles := files
	pending := false
	errs := errorlist.New("files could not be read")

	for _, token := range Tokenize(input) {
		if !token.Quoted {
			switch token.Value {
			case Separator:
				out = append(out, nil)
				readFiles, pending = files, true
				continue
			case FileSeparator:
				out = append(out, nil)
				readFiles, pending = true, true
				continue
			case AppendSeparator:
				readFiles, pending = files, true
				continue
			}
		}
		pending = false

		last := len(out) - 1
		if !readFiles {
			out[last] = append(out[last], token.Value)
			continue
		}

		values, err := ReadLines(token.Value)
		if err != nil {
			if !errs.Append(err) {
				return nil, errs
			}
			continue
		}
		slog.Debug("Read values from file.", "path", token.Value, "count", len(values))
		out[last] = append(out[last], values...)
	}

	if err := errs.Err(); err != nil {
		return nil, err
	}
	if len(out) == 1 && len(out[0]) < 2 && !pending {
		return nil, ErrNotEnoughInputs
	}
	if pending {
		return nil, ErrNoInputsProvided
	}
	for i, list := range out {
		if len(list) == 0 {
			return nil, fmt.Errorf("list #%d: %w", i, ErrNoInputsProvided)
		}
	}
	return out, nil
}

// ReadLines returns the non-blank lines of a file.
//
// Path - reads standard input.
func ReadLines(path string) (values []string, err error) {
	var r io.Reader
	if path == "-" {
		r = Stdin
	} else {
		fo, err := os.Open(path)
		if err != nil {
			return nil, &FileError{Path: path, Err: unwrapPathError(err)}
		}
		defer fo.Close() //nolint:errcheck
		r = fo
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		values = append(values, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	return lists.Filter(values, func(line string) bool {
		return strings.TrimSpace(line) != ""
	}), nil
}

// unwrapPathError avoids repeating path in error message.
func unwrapPathError(err error) error {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err
	}
	return err
}
