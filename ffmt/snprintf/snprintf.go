// Package snprintf layers convenient string/writer entry points over
// the ffmt engine: Sprintf for an unbounded growable result, Fprintf
// for streaming straight to an io.Writer, and Snprintf for a
// bounded-capacity buffer that reports truncation through an error
// rather than silently dropping bytes.
package snprintf

import (
	"bytes"
	"errors"

	"github.com/ffmt-go/ffmt"
)

// ErrBufferFull is the sentinel wrapped by WriteError when Snprintf's
// destination buffer reaches its capacity before formatting finished.
var ErrBufferFull = errors.New("snprintf: buffer full")

// WriteError reports a formatting operation that did not complete
// cleanly, naming how many bytes the full, untruncated result would
// have needed.
type WriteError struct {
	// Wanted is the number of bytes the format string and arguments
	// would have produced with no capacity limit.
	Wanted int
	err    error
}

func (e *WriteError) Error() string {
	msg := "snprintf: wanted " + itoa(e.Wanted) + " bytes"
	if e.err != nil {
		msg += ": " + e.err.Error()
	}
	return msg
}

// Unwrap exposes the underlying sentinel so callers can use
// errors.Is(err, ErrBufferFull).
func (e *WriteError) Unwrap() error {
	return e.err
}

func wrapTruncation(wanted int) error {
	return &WriteError{Wanted: wanted, err: ErrBufferFull}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

// Sprintf renders format against args into a freshly allocated string,
// with no length limit.
func Sprintf(format string, args ...any) string {
	var b bytes.Buffer
	ffmt.Vfctprintf(func(c byte) { b.WriteByte(c) }, format, args...)
	return b.String()
}

// Fprintf renders format against args, writing bytes to w as they are
// produced. It returns the number of bytes that would have been
// written had there been no limit, and the first write error
// encountered, if any.
func Fprintf(w interface{ Write([]byte) (int, error) }, format string, args ...any) (int, error) {
	var werr error
	n := ffmt.Vfctprintf(func(c byte) {
		if werr != nil {
			return
		}
		_, werr = w.Write([]byte{c})
	}, format, args...)
	return n, werr
}

// Snprintf renders format against args into buf, a caller-supplied
// destination with a fixed capacity. It returns the slice of buf that
// was actually written. If the full result would not fit, Snprintf
// fills buf to capacity and returns a *WriteError reporting how many
// bytes the complete, untruncated result would have needed — mirroring
// the C library's snprintf return-value convention, but as an error
// instead of a raw count.
func Snprintf(buf []byte, format string, args ...any) ([]byte, error) {
	pos := 0
	wanted := ffmt.Vfctprintf(func(c byte) {
		if pos < len(buf) {
			buf[pos] = c
			pos++
		}
	}, format, args...)
	if wanted > len(buf) {
		return buf[:pos], wrapTruncation(wanted)
	}
	return buf[:pos], nil
}
