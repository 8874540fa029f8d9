package common

import (
	"fmt"

	"github.com/dargueta/rlezoo"
)

// Source is a read cursor over compressed input. Reading past the end of the
// input is a format violation rather than io.EOF, because it can only happen
// in the middle of a command.
type Source struct {
	src []byte
	pos int
}

func NewSource(src []byte) Source {
	return Source{src: src}
}

// Done returns true once every input byte has been consumed.
func (s *Source) Done() bool {
	return s.pos >= len(s.src)
}

// Offset returns the index of the next byte to be read.
func (s *Source) Offset() int {
	return s.pos
}

// ReadByte returns the next byte of input.
func (s *Source) ReadByte() (byte, error) {
	if s.pos >= len(s.src) {
		return 0, rlezoo.ErrFormatViolation.WithMessage(
			fmt.Sprintf("expected 1 more byte at offset %d, input ended", s.pos))
	}
	b := s.src[s.pos]
	s.pos++
	return b, nil
}

// Next returns the next n bytes of input without copying them.
func (s *Source) Next(n int) ([]byte, error) {
	remaining := len(s.src) - s.pos
	if n > remaining {
		return nil, rlezoo.ErrFormatViolation.WithMessage(
			fmt.Sprintf(
				"expected %d more bytes at offset %d, only %d left",
				n,
				s.pos,
				remaining,
			),
		)
	}
	chunk := s.src[s.pos : s.pos+n]
	s.pos += n
	return chunk, nil
}
