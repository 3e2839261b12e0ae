//go:build windows

package output

// BufferSize is limited by the Windows console.
const BufferSize = 16 * 1024
