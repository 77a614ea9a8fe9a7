package sinks

import (
	"bytes"
	"testing"

	"github.com/ffmt-go/ffmt"
)

func TestWriterFlushesInChunks(t *testing.T) {
	var buf bytes.Buffer
	w := Writer(&buf, 4)
	ffmt.Vfctprintf(w.Put, "Hello %s", "Ada")
	if err := w.Close(); err != nil {
		t.Fatalf("Close() = %v, want nil", err)
	}
	if got := buf.String(); got != "Hello Ada" {
		t.Errorf("buf = %q, want %q", got, "Hello Ada")
	}
}

func TestWriterSurfacesError(t *testing.T) {
	w := Writer(failingWriter{}, 1)
	ffmt.Vfctprintf(w.Put, "abc")
	if err := w.Close(); err == nil {
		t.Error("Close() = nil, want error from underlying writer")
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, bytes.ErrTooLarge
}

func TestCountingSinkTracksIndependently(t *testing.T) {
	var out bytes.Buffer
	c := NewCounting(func(b byte) { out.WriteByte(b) })
	n := ffmt.Vfctprintf(c.Put, "%d-%d", 1, 22)
	if int(c.Count()) != n {
		t.Errorf("CountingSink.Count() = %d, want %d", c.Count(), n)
	}
	if out.String() != "1-22" {
		t.Errorf("out = %q, want %q", out.String(), "1-22")
	}
}

func TestCountingSinkWithNilNext(t *testing.T) {
	c := NewCounting(nil)
	ffmt.Vfctprintf(c.Put, "%5d", 1)
	if c.Count() != 5 {
		t.Errorf("Count() = %d, want 5", c.Count())
	}
}
