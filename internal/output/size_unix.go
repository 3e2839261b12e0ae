//go:build !windows

package output

// BufferSize fits the default pipe capacity of Linux.
const BufferSize = 64 * 1024
