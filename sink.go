package ffmt

// SinkFunc receives one output byte at a time. A nil SinkFunc means
// "count but discard" — Vfctprintf still reports the length the format
// string would have produced.
type SinkFunc func(b byte)

// Sink adapts a caller-supplied SinkFunc, counting every byte submitted
// to Put whether or not Fn is set.
type Sink struct {
	Fn  SinkFunc
	idx uint64
}

// Put delivers b to Fn, if set, and advances the running count.
func (s *Sink) Put(b byte) {
	if s.Fn != nil {
		s.Fn(b)
	}
	s.idx++
}

// Len reports the number of bytes submitted so far, regardless of
// whether Fn discarded them.
func (s *Sink) Len() uint64 {
	return s.idx
}
