package genops

import (
	"github.com/dargueta/rlezoo"
)

// TableStats summarizes the decode table of a variant.
type TableStats struct {
	// Usage gives the number of control bytes that decode to each operation,
	// indexed by [rlezoo.Op].
	Usage [rlezoo.OpInvalid + 1]int
	// Observed gives the smallest and largest counts seen for each
	// count-carrying operation. Operations that never occur get
	// [rlezoo.EmptyRange].
	Observed rlezoo.Limits
}

// countedOps are the operations whose count is meaningful.
var countedOps = []rlezoo.Op{rlezoo.OpCopy, rlezoo.OpRepeat, rlezoo.OpLiteral}

// CollectStats decodes every possible control byte and tallies the results.
func CollectStats(decoder rlezoo.Decoder) TableStats {
	var stats TableStats
	ranges := map[rlezoo.Op]*rlezoo.Range{
		rlezoo.OpCopy:    &stats.Observed.Copy,
		rlezoo.OpRepeat:  &stats.Observed.Repeat,
		rlezoo.OpLiteral: &stats.Observed.Literal,
	}
	for _, r := range ranges {
		*r = rlezoo.EmptyRange
	}

	for i := 0; i < 256; i++ {
		cmd := decoder.Decode(byte(i))
		stats.Usage[cmd.Op]++

		r, ok := ranges[cmd.Op]
		if !ok {
			continue
		}
		if !r.Valid() {
			*r = rlezoo.Range{Min: cmd.Count, Max: cmd.Count}
			continue
		}
		if cmd.Count < r.Min {
			r.Min = cmd.Count
		}
		if cmd.Count > r.Max {
			r.Max = cmd.Count
		}
	}
	return stats
}
