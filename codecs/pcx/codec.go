// Package pcx implements the run-length encoding of ZSoft PCX image data.
//
// Unlike the other variants there's no copy command. A byte whose two high bits
// are set (0xC0-0xFF) is a repeat: the low six bits give the count (0-63) and
// the next byte is the value. Any other byte (0x00-0xBF) is a literal and
// stands for itself. Consequently a single byte with a value of 0xC0 or more
// has to be written as a repeat of one.
package pcx

import (
	"fmt"

	"github.com/dargueta/rlezoo"
	"github.com/dargueta/rlezoo/codecs/common"
)

const (
	// RepeatFlag marks a control byte as a repeat. Every byte below it is a
	// literal.
	RepeatFlag      = 0xC0
	MaxRepeatLength = 0x3F
	MaxLiteral      = RepeatFlag - 1
)

var limits = rlezoo.Limits{
	Copy:    rlezoo.EmptyRange,
	Repeat:  rlezoo.Range{Min: 0, Max: MaxRepeatLength},
	Literal: rlezoo.Range{Min: 0, Max: MaxLiteral},
}

type Codec struct{}

var _ rlezoo.Codec = Codec{}

func New() Codec {
	return Codec{}
}

func (Codec) Name() string {
	return "pcx"
}

func (Codec) Limits() rlezoo.Limits {
	return limits
}

func (Codec) Decode(control byte) rlezoo.Command {
	return Decode(control)
}

func (Codec) Encode(cmd rlezoo.Command) (byte, error) {
	return Encode(cmd)
}

func (Codec) Compress(src, dst []byte) int {
	return Compress(src, dst)
}

func (Codec) Decompress(src, dst []byte) (int, error) {
	return Decompress(src, dst)
}

// Decode returns a repeat for 0xC0-0xFF and a literal for everything else. The
// count of a literal is the byte value itself.
func Decode(control byte) rlezoo.Command {
	if control&RepeatFlag == RepeatFlag {
		return rlezoo.Command{Op: rlezoo.OpRepeat, Count: int(control & MaxRepeatLength)}
	}
	return rlezoo.Command{Op: rlezoo.OpLiteral, Count: int(control)}
}

func Encode(cmd rlezoo.Command) (byte, error) {
	switch cmd.Op {
	case rlezoo.OpRepeat:
		if limits.Repeat.Contains(cmd.Count) {
			return RepeatFlag | byte(cmd.Count), nil
		}
	case rlezoo.OpLiteral:
		if limits.Literal.Contains(cmd.Count) {
			return byte(cmd.Count), nil
		}
	}
	return 0, rlezoo.ErrUnrepresentableCommand.WithMessage(
		fmt.Sprintf("pcx can't encode %s", cmd))
}

func Compress(src, dst []byte) int {
	sink := common.NewSink(dst)
	readPos := 0

	for readPos < len(src) {
		run := common.NextRun(src[readPos:], MaxRepeatLength)

		if run.RunLength > 1 || run.Byte >= RepeatFlag {
			sink.PutByte(RepeatFlag | byte(run.RunLength))
			sink.PutByte(run.Byte)
		} else {
			sink.PutByte(run.Byte)
		}
		readPos += run.RunLength
	}
	return sink.Len()
}

// Decompress expands src into dst. A repeat with a count of zero is legal and
// produces no output.
func Decompress(src, dst []byte) (int, error) {
	source := common.NewSource(src)
	sink := common.NewSink(dst)

	for !source.Done() {
		control, _ := source.ReadByte()

		cmd := Decode(control)
		if cmd.Op == rlezoo.OpLiteral {
			sink.PutByte(control)
			continue
		}

		value, err := source.ReadByte()
		if err != nil {
			return sink.Len(), err
		}
		sink.PutRepeated(value, cmd.Count)
	}
	return sink.Len(), nil
}
