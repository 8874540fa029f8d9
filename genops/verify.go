package genops

import (
	"fmt"

	bitmap "github.com/boljen/go-bitmap"
	"github.com/dargueta/rlezoo"
	"github.com/hashicorp/go-multierror"
)

// encodableOps are all the operations Verify tries to encode.
var encodableOps = []rlezoo.Op{rlezoo.OpCopy, rlezoo.OpRepeat, rlezoo.OpLiteral, rlezoo.OpNoOp}

// Verify exhaustively checks the control-byte tables of a codec:
//
//   - every control byte that decodes to a valid command re-encodes to itself;
//   - the counts seen while decoding match what the codec claims in Limits();
//   - no two commands encode to the same control byte;
//   - every control byte that decodes to a valid command is produced by some
//     command, and no command encodes to a byte that decodes as invalid.
//
// All problems found are returned together, wrapped in
// [rlezoo.ErrSelfCheckFailed].
func Verify(codec rlezoo.Codec) error {
	var result *multierror.Error

	for i := 0; i < 256; i++ {
		control := byte(i)
		cmd := codec.Decode(control)
		if cmd.Op == rlezoo.OpInvalid {
			continue
		}

		recoded, err := codec.Encode(cmd)
		if err != nil {
			result = multierror.Append(
				result, fmt.Errorf("0x%02x => %s doesn't encode: %w", control, cmd, err))
		} else if recoded != control {
			result = multierror.Append(
				result, fmt.Errorf("0x%02x => %s re-encodes to 0x%02x", control, cmd, recoded))
		}
	}

	stats := CollectStats(codec)
	declared := codec.Limits()
	for _, op := range countedOps {
		observed := stats.Observed.ForOp(op)
		expected := declared.ForOp(op)
		if observed.Valid() != expected.Valid() || (observed.Valid() && observed != expected) {
			result = multierror.Append(
				result,
				fmt.Errorf("%s counts decode as %s but limits say %s", op, observed, expected),
			)
		}
	}

	// Track which control bytes some command encodes to, so we can detect
	// ambiguous encodings and gaps.
	covered := bitmap.New(256)
	var owners [256]rlezoo.Command

	for _, op := range encodableOps {
		for count := 0; count < 256; count++ {
			cmd := rlezoo.Command{Op: op, Count: count}
			control, err := codec.Encode(cmd)
			if err != nil {
				continue
			}

			if covered.Get(int(control)) {
				result = multierror.Append(
					result,
					fmt.Errorf(
						"ambiguous encoding: %s and %s both encode to 0x%02x",
						owners[control],
						cmd,
						control,
					),
				)
				continue
			}
			covered.Set(int(control), true)
			owners[control] = cmd

			if codec.Decode(control).Op == rlezoo.OpInvalid {
				result = multierror.Append(
					result, fmt.Errorf("%s encodes to reserved byte 0x%02x", cmd, control))
			}
		}
	}

	for i := 0; i < 256; i++ {
		cmd := codec.Decode(byte(i))
		if cmd.Op != rlezoo.OpInvalid && !covered.Get(i) {
			result = multierror.Append(
				result, fmt.Errorf("0x%02x decodes to %s but nothing encodes to it", i, cmd))
		}
	}

	if result != nil {
		return rlezoo.ErrSelfCheckFailed.Wrap(
			fmt.Errorf("variant %s: %w", codec.Name(), result.ErrorOrNil()))
	}
	return nil
}
