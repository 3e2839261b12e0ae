// Buffered output of combinations.
package output

import (
	"errors"
	"io"
	"log/slog"
	"syscall"
	"time"

	"github.com/avast/retry-go/v4"
)

// Buffer accumulates bytes and writes them in large chunks.
//
// Unlike bufio.Writer, a failed write does not poison the buffer: unwritten
// bytes are kept and the write is retried on transient errors, like EAGAIN
// on a non-blocking pipe.
type Buffer struct {
	data []byte
	w    io.Writer
}

func NewBuffer(w io.Writer, size int) *Buffer {
	if size <= 0 {
		size = BufferSize
	}
	return &Buffer{
		data: make([]byte, 0, size),
		w:    w,
	}
}

// Write appends p, flushing first if p does not fit.
func (b *Buffer) Write(p []byte) (int, error) {
	if len(b.data)+len(p) > cap(b.data) {
		if err := b.Flush(); err != nil {
			return 0, err
		}
		if len(p) > cap(b.data) {
			// Too large, bypass buffer.
			return len(p), b.writeAll(p)
		}
	}
	b.data = append(b.data, p...)
	return len(p), nil
}

func (b *Buffer) WriteString(s string) (int, error) {
	if len(b.data)+len(s) > cap(b.data) {
		return b.Write([]byte(s))
	}
	b.data = append(b.data, s...)
	return len(s), nil
}

func (b *Buffer) WriteByte(c byte) error {
	if len(b.data) == cap(b.data) {
		if err := b.Flush(); err != nil {
			return err
		}
	}
	b.data = append(b.data, c)
	return nil
}

// Len returns the number of buffered bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Flush writes buffered bytes and clears the buffer.
func (b *Buffer) Flush() error {
	if len(b.data) == 0 {
		return nil
	}
	err := b.writeAll(b.data)
	b.data = b.data[:0]
	return err
}

func (b *Buffer) writeAll(p []byte) error {
	return retry.Do(
		func() error {
			for len(p) > 0 {
				n, err := b.w.Write(p)
				p = p[n:]
				if err != nil {
					return err
				}
				if n == 0 {
					return io.ErrShortWrite
				}
			}
			return nil
		},
		retry.RetryIf(IsErrorTransient),
		retry.OnRetry(func(n uint, err error) {
			slog.Debug("Retrying write.", "attempt", n+1, "err", err)
		}),
		retry.Attempts(10),
		retry.Delay(time.Millisecond),
		retry.MaxDelay(time.Second),
		retry.LastErrorOnly(true),
	)
}

// IsErrorTransient implements retry.RetryIfFunc.
func IsErrorTransient(err error) bool {
	return errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EINTR)
}
