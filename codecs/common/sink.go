package common

// Sink is an output cursor over a destination buffer of fixed size. Writes
// that don't fit are dropped, but the cursor always advances, so once a
// transform is done [Sink.Len] is the full size of its output regardless of
// how big the buffer was. A Sink over a nil buffer only counts.
type Sink struct {
	dst []byte
	pos int
}

// NewSink creates a [Sink] writing into dst. Its capacity is len(dst).
func NewSink(dst []byte) Sink {
	return Sink{dst: dst}
}

// PutByte appends one byte.
func (s *Sink) PutByte(b byte) {
	if s.pos < len(s.dst) {
		s.dst[s.pos] = b
	}
	s.pos++
}

// PutBytes appends a copy of data, truncated to whatever room is left.
func (s *Sink) PutBytes(data []byte) {
	if s.pos < len(s.dst) {
		copy(s.dst[s.pos:], data)
	}
	s.pos += len(data)
}

// PutRepeated appends count copies of b, truncated to whatever room is left.
func (s *Sink) PutRepeated(b byte, count int) {
	if s.pos < len(s.dst) {
		end := s.pos + count
		if end > len(s.dst) {
			end = len(s.dst)
		}
		fill := s.dst[s.pos:end]
		for i := range fill {
			fill[i] = b
		}
	}
	s.pos += count
}

// Len returns the number of bytes written so far, including those dropped.
func (s *Sink) Len() int {
	return s.pos
}

// Truncated returns true if any bytes were dropped.
func (s *Sink) Truncated() bool {
	return s.pos > len(s.dst)
}
