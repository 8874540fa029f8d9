// Package packbits implements Apple's PackBits run-length encoding, as used by
// MacPaint, TIFF, and many others.
//
// A control byte b < 0x80 copies the next b+1 bytes; b > 0x80 repeats the next
// byte 1-int8(b) times (2-128); 0x80 is a no-op. The compressor never emits the
// no-op, but the decompressor skips it.
package packbits

import (
	"fmt"

	"github.com/dargueta/rlezoo"
	"github.com/dargueta/rlezoo/codecs/common"
)

const (
	MaxCopyLength   = 128
	MinRepeatLength = 2
	MaxRepeatLength = 128

	// NoOp is the control byte that decodes to [rlezoo.OpNoOp].
	NoOp = 0x80
)

var limits = rlezoo.Limits{
	Copy:    rlezoo.Range{Min: 1, Max: MaxCopyLength},
	Repeat:  rlezoo.Range{Min: MinRepeatLength, Max: MaxRepeatLength},
	Literal: rlezoo.EmptyRange,
}

type Codec struct{}

var _ rlezoo.Codec = Codec{}

func New() Codec {
	return Codec{}
}

func (Codec) Name() string {
	return "packbits"
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

// Decode never returns an invalid command; every byte has a meaning.
func Decode(control byte) rlezoo.Command {
	if control > NoOp {
		return rlezoo.Command{Op: rlezoo.OpRepeat, Count: 1 - int(int8(control))}
	} else if control < NoOp {
		return rlezoo.Command{Op: rlezoo.OpCopy, Count: int(control) + 1}
	}
	return rlezoo.Command{Op: rlezoo.OpNoOp, Count: 0}
}

// Encode returns the control byte for cmd. A no-op must have a count of 0.
func Encode(cmd rlezoo.Command) (byte, error) {
	switch cmd.Op {
	case rlezoo.OpRepeat:
		if limits.Repeat.Contains(cmd.Count) {
			return byte(257 - cmd.Count), nil
		}
	case rlezoo.OpCopy:
		if limits.Copy.Contains(cmd.Count) {
			return byte(cmd.Count - 1), nil
		}
	case rlezoo.OpNoOp:
		if cmd.Count == 0 {
			return NoOp, nil
		}
	}
	return 0, rlezoo.ErrUnrepresentableCommand.WithMessage(
		fmt.Sprintf("packbits can't encode %s", cmd))
}

func Compress(src, dst []byte) int {
	sink := common.NewSink(dst)
	readPos := 0

	for readPos < len(src) {
		remaining := src[readPos:]

		run := common.NextRun(remaining, MaxRepeatLength)
		if run.RunLength >= MinRepeatLength {
			sink.PutByte(byte(257 - run.RunLength))
			sink.PutByte(run.Byte)
			readPos += run.RunLength
			continue
		}

		copyLength := common.CopyLength(remaining, MaxCopyLength, MinRepeatLength)
		sink.PutByte(byte(copyLength - 1))
		sink.PutBytes(remaining[:copyLength])
		readPos += copyLength
	}
	return sink.Len()
}

func Decompress(src, dst []byte) (int, error) {
	source := common.NewSource(src)
	sink := common.NewSink(dst)

	for !source.Done() {
		control, _ := source.ReadByte()

		cmd := Decode(control)
		switch cmd.Op {
		case rlezoo.OpRepeat:
			value, err := source.ReadByte()
			if err != nil {
				return sink.Len(), err
			}
			sink.PutRepeated(value, cmd.Count)
		case rlezoo.OpCopy:
			data, err := source.Next(cmd.Count)
			if err != nil {
				return sink.Len(), err
			}
			sink.PutBytes(data)
		}
	}
	return sink.Len(), nil
}
