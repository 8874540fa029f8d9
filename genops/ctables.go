package genops

import (
	"fmt"
	"io"
	"strings"

	"github.com/dargueta/rlezoo"
)

// encodeTableWidth is the number of counts in each encode table row.
const encodeTableWidth = 256

// GenerateC writes C source for the lookup tables of a variant: a 256-entry
// decode table, one encode table row per count-carrying operation, and an
// rle8_tbl struct tying them together with the operation usage and limits.
func GenerateC(w io.Writer, codec rlezoo.Codec) error {
	p := printer{w: w}
	p.printf("%s", generatedHeader)

	generateDecodeTable(&p, codec)
	generateEncodeTables(&p, codec)
	generateTableStruct(&p, codec)
	return p.err
}

func cOpName(op rlezoo.Op) string {
	return "RLE_OP_" + op.String()
}

func generateDecodeTable(p *printer, codec rlezoo.Codec) {
	name := codec.Name()
	p.printf("\n// Decode table for RLE8 variant '%s'\n", name)
	p.printf("static struct rle8 rle8_tbl_decode_%s[256] = {\n", name)

	for i := 0; i < 256; i++ {
		cmd := codec.Decode(byte(i))
		p.printf(" /* %02X */ { %s, %3d }", i, cOpName(cmd.Op), cmd.Count)
		if i < 255 {
			p.printf(",")
			if (i+1)%4 == 0 {
				p.printf("\n")
			}
		}
	}
	p.printf("\n};\n")
}

func generateEncodeTables(p *printer, codec rlezoo.Codec) {
	name := codec.Name()
	p.printf("\n// Encode tables for RLE8 variant '%s'\n", name)
	p.printf("static int16_t rle8_tbl_encode_%s[][%d] = {\n", name, encodeTableWidth)

	for _, op := range countedOps {
		p.printf("\t// %s 0..%d\n", cOpName(op), encodeTableWidth-1)

		entries := make([]string, encodeTableWidth)
		for count := range entries {
			control, err := codec.Encode(rlezoo.Command{Op: op, Count: count})
			if err != nil {
				entries[count] = "-1"
			} else {
				entries[count] = fmt.Sprintf("0x%02x", control)
			}
		}
		p.printf("\t{ %s },\n", strings.Join(entries, ", "))
	}
	p.printf("};\n")
}

func generateTableStruct(p *printer, codec rlezoo.Codec) {
	name := codec.Name()
	stats := CollectStats(codec)

	var used []string
	for op := rlezoo.OpCopy; op < rlezoo.OpInvalid; op++ {
		if stats.Usage[op] > 0 {
			used = append(used, fmt.Sprintf("%s /* %d */", cOpName(op), stats.Usage[op]))
		}
	}

	p.printf("\nstatic struct rle8_tbl rle8_table_%s = {\n", name)
	p.printf("\t\"%s\",\n", name)
	p.printf("\t%s,\n", strings.Join(used, " | "))
	p.printf("\t%d,\n", encodeTableWidth)
	p.printf("\t{\n")
	for _, op := range countedOps {
		p.printf("\t\t&rle8_tbl_encode_%s[%s][0],\n", name, cOpName(op))
	}
	p.printf("\t},\n")
	p.printf("\trle8_tbl_decode_%s,\n", name)
	p.printf("\t{\n")
	for _, op := range countedOps {
		r := stats.Observed.ForOp(op)
		p.printf("\t\t{ %d, %d },\n", r.Min, r.Max)
	}
	p.printf("\t}\n};\n")
}
