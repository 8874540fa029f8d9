// Package icns implements the run-length encoding Apple uses for the 24-bit
// image channels in .icns icon resources.
//
// A control byte b < 0x80 copies the next b+1 bytes (1-128). A control byte
// b >= 0x80 repeats the next byte b-125 times (3-130). There's no way to encode
// a repeat of one or two bytes, so short runs are folded into copies.
package icns

import (
	"fmt"

	"github.com/dargueta/rlezoo"
	"github.com/dargueta/rlezoo/codecs/common"
)

const (
	MaxCopyLength   = 128
	MinRepeatLength = 3
	MaxRepeatLength = 130

	repeatBias = 125
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
	return "icns"
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

func Decode(control byte) rlezoo.Command {
	if control >= 0x80 {
		return rlezoo.Command{Op: rlezoo.OpRepeat, Count: int(control) - repeatBias}
	}
	return rlezoo.Command{Op: rlezoo.OpCopy, Count: int(control) + 1}
}

func Encode(cmd rlezoo.Command) (byte, error) {
	switch cmd.Op {
	case rlezoo.OpRepeat:
		if limits.Repeat.Contains(cmd.Count) {
			return byte(cmd.Count + repeatBias), nil
		}
	case rlezoo.OpCopy:
		if limits.Copy.Contains(cmd.Count) {
			return byte(cmd.Count - 1), nil
		}
	}
	return 0, rlezoo.ErrUnrepresentableCommand.WithMessage(
		fmt.Sprintf("icns can't encode %s", cmd))
}

func Compress(src, dst []byte) int {
	sink := common.NewSink(dst)
	readPos := 0

	for readPos < len(src) {
		remaining := src[readPos:]

		run := common.NextRun(remaining, MaxRepeatLength)
		if run.RunLength >= MinRepeatLength {
			sink.PutByte(byte(run.RunLength + repeatBias))
			sink.PutByte(run.Byte)
			readPos += run.RunLength
			continue
		}

		// Pairs are cheaper inside a copy than as a repeat we can't encode.
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
		if cmd.Op == rlezoo.OpRepeat {
			value, err := source.ReadByte()
			if err != nil {
				return sink.Len(), err
			}
			sink.PutRepeated(value, cmd.Count)
			continue
		}

		data, err := source.Next(cmd.Count)
		if err != nil {
			return sink.Len(), err
		}
		sink.PutBytes(data)
	}
	return sink.Len(), nil
}
