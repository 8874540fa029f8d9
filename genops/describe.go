package genops

import (
	"fmt"
	"io"

	"github.com/dargueta/rlezoo"
)

// Describe writes one line per control byte giving the command it decodes to,
// in the form
//
//	0x81 (129/-127) => REP 127
//
// If a byte doesn't re-encode to itself, an ERROR line is written and an error
// wrapping [rlezoo.ErrSelfCheckFailed] is returned.
func Describe(w io.Writer, codec rlezoo.Codec) error {
	p := printer{w: w}
	p.printf("// Automatically generated code table for RLE8 variant '%s'\n", codec.Name())
	p.printf("%s", generatedHeader)

	for i := 0; i < 256; i++ {
		control := byte(i)
		cmd := codec.Decode(control)

		if cmd.Op == rlezoo.OpInvalid {
			p.printf("0x%02x (%d/%d) => %s\n", control, control, int8(control), cmd.Op)
			continue
		}

		p.printf("0x%02x (%d/%d) => %s %d\n", control, control, int8(control), cmd.Op, cmd.Count)
		recoded, err := codec.Encode(cmd)
		if err != nil || recoded != control {
			p.printf(
				"ERROR: reencode mismatch: %s %d => 0x%02x\n", cmd.Op, cmd.Count, recoded)
			if p.err != nil {
				return p.err
			}
			return rlezoo.ErrSelfCheckFailed.WithMessage(
				fmt.Sprintf("%s: 0x%02x => %s doesn't re-encode", codec.Name(), control, cmd))
		}
	}
	return p.err
}
