package perf

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

// ReadVMPeak returns the peak virtual memory size of the process in bytes.
//
// Returns 0 if /proc is not available.
func ReadVMPeak() int {
	fo, err := os.Open("/proc/self/status")
	if err != nil {
		slog.Debug("Failed to read /proc/self/status.", "err", err)
		return 0
	}
	defer fo.Close() //nolint:errcheck

	value, err := parseVMPeak(fo)
	if err != nil {
		slog.Debug("Failed to parse VmPeak.", "err", err)
		return 0
	}
	return value
}

func parseVMPeak(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "VmPeak:") {
			continue
		}

		// VmPeak:    12345 kB
		fields := strings.Fields(line)
		if len(fields) < 2 {
			return 0, fmt.Errorf("bad line: %s", line)
		}
		value, err := strconv.Atoi(fields[1])
		if err != nil {
			return 0, err
		}
		return value * 1024, nil
	}

	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return 0, fmt.Errorf("VmPeak not found")
}

func FormatBytes(value int) string {
	const divisor = 1024.
	const step = 512.
	units := []string{"B", "KiB", "MiB", "GiB", "TiB"}

	unitIndex := 0
	var f float64
	for f = float64(value); f > step && unitIndex < len(units)-1; f /= divisor {
		unitIndex++
	}
	return strings.Replace(fmt.Sprintf("%.1f%s", f, units[unitIndex]), ".0", "", 1)
}
