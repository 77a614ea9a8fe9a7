// Package sinks provides concrete ffmt.SinkFunc producers: writing to
// an io.Writer, discarding output while still counting it, and
// tallying bytes passed through another sink.
package sinks

import "io"

// Writer returns a SinkFunc that buffers bytes and flushes them to w
// in chunks of flushEvery bytes (or fewer, on Close). A flushEvery of
// 0 or less writes one byte at a time.
//
// Writer does not surface write errors inline — callers that need
// them should call Err after driving the format, or prefer
// ffmt/snprintf.Fprintf, which returns the first error encountered.
func Writer(w io.Writer, flushEvery int) *WriterSink {
	if flushEvery <= 0 {
		flushEvery = 1
	}
	return &WriterSink{w: w, buf: make([]byte, 0, flushEvery)}
}

// WriterSink accumulates bytes and flushes them to an underlying
// io.Writer once its internal buffer fills, or when Close is called.
type WriterSink struct {
	w   io.Writer
	buf []byte
	err error
}

// Put implements ffmt.SinkFunc.
func (s *WriterSink) Put(b byte) {
	if s.err != nil {
		return
	}
	s.buf = append(s.buf, b)
	if len(s.buf) == cap(s.buf) {
		s.flush()
	}
}

// Close flushes any buffered bytes and returns the first write error
// encountered, if any.
func (s *WriterSink) Close() error {
	s.flush()
	return s.err
}

// Err reports the first write error encountered so far, without
// flushing.
func (s *WriterSink) Err() error {
	return s.err
}

func (s *WriterSink) flush() {
	if s.err != nil || len(s.buf) == 0 {
		return
	}
	_, err := s.w.Write(s.buf)
	if err != nil {
		s.err = err
	}
	s.buf = s.buf[:0]
}

// Discard returns a SinkFunc that throws every byte away. Combined
// with ffmt.Vfctprintf's own built-in counting, it is equivalent to
// passing a nil SinkFunc directly — it exists for callers that want
// an explicit, named no-op sink value (e.g. to satisfy an API that
// expects a non-nil SinkFunc).
func Discard() func(byte) {
	return func(byte) {}
}

// CountingSink wraps another SinkFunc (which may be nil) and tracks how
// many bytes have passed through it independently of any count
// ffmt.Vfctprintf itself returns.
type CountingSink struct {
	Next  func(byte)
	count uint64
}

// NewCounting wraps next (which may be nil, meaning discard-only) in
// a CountingSink.
func NewCounting(next func(byte)) *CountingSink {
	return &CountingSink{Next: next}
}

// Put implements ffmt.SinkFunc.
func (c *CountingSink) Put(b byte) {
	c.count++
	if c.Next != nil {
		c.Next(b)
	}
}

// Count reports the number of bytes observed so far.
func (c *CountingSink) Count() uint64 {
	return c.count
}
