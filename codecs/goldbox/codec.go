package goldbox

import (
	"fmt"

	"github.com/dargueta/rlezoo"
	"github.com/dargueta/rlezoo/codecs/common"
)

const (
	MaxCopyLength   = 126
	MaxRepeatLength = 127
)

var limits = rlezoo.Limits{
	Copy:    rlezoo.Range{Min: 1, Max: MaxCopyLength},
	Repeat:  rlezoo.Range{Min: 1, Max: MaxRepeatLength},
	Literal: rlezoo.EmptyRange,
}

// Codec implements [rlezoo.Codec] for the Gold Box variant.
type Codec struct{}

var _ rlezoo.Codec = Codec{}

func New() Codec {
	return Codec{}
}

func (Codec) Name() string {
	return "goldbox"
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

// Decode returns the command a control byte introduces. 0x7E, 0x7F, and 0x80
// decode to [rlezoo.InvalidCommand].
func Decode(control byte) rlezoo.Command {
	if control > 0x80 {
		return rlezoo.Command{Op: rlezoo.OpRepeat, Count: 256 - int(control)}
	} else if control < 0x7e {
		return rlezoo.Command{Op: rlezoo.OpCopy, Count: int(control) + 1}
	}
	return rlezoo.InvalidCommand
}

// Encode returns the control byte for cmd.
func Encode(cmd rlezoo.Command) (byte, error) {
	switch cmd.Op {
	case rlezoo.OpRepeat:
		if limits.Repeat.Contains(cmd.Count) {
			return byte(256 - cmd.Count), nil
		}
	case rlezoo.OpCopy:
		if limits.Copy.Contains(cmd.Count) {
			return byte(cmd.Count - 1), nil
		}
	}
	return 0, rlezoo.ErrUnrepresentableCommand.WithMessage(
		fmt.Sprintf("goldbox can't encode %s", cmd))
}

// Compress encodes src into dst and returns the size of the encoded data. See
// [rlezoo.Codec] for how dst is sized.
func Compress(src, dst []byte) int {
	sink := common.NewSink(dst)
	readPos := 0

	for readPos < len(src) {
		remaining := src[readPos:]
		runLength := common.RepeatLength(remaining, MaxRepeatLength)

		// Emit a repeat for any actual run. The final byte of the input is
		// always emitted as a repeat, even if it's a run of one.
		if runLength > 1 || runLength == len(remaining) {
			sink.PutByte(^byte(runLength - 1))
			sink.PutByte(remaining[0])
			readPos += runLength
			continue
		}

		// Gather bytes that differ from their successor. The last byte of the
		// input never goes into a copy, see above.
		copyLength := 0
		for copyLength+1 < len(remaining) &&
			remaining[copyLength] != remaining[copyLength+1] &&
			copyLength < MaxCopyLength {
			copyLength++
		}

		sink.PutByte(byte(copyLength - 1))
		sink.PutBytes(remaining[:copyLength])
		readPos += copyLength
	}
	return sink.Len()
}

// Decompress expands src into dst and returns the size of the expanded data.
// See [rlezoo.Codec] for how dst is sized.
func Decompress(src, dst []byte) (int, error) {
	source := common.NewSource(src)
	sink := common.NewSink(dst)

	for !source.Done() {
		offset := source.Offset()
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
		default:
			return sink.Len(), rlezoo.ErrFormatViolation.WithMessage(
				fmt.Sprintf("reserved control byte 0x%02x at offset %d", control, offset))
		}
	}
	return sink.Len(), nil
}
