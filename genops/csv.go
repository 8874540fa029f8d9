package genops

import (
	"fmt"
	"io"

	"github.com/dargueta/rlezoo"
	"github.com/gocarina/gocsv"
)

// DecodeRow is one line of the CSV decode table.
type DecodeRow struct {
	Control  string `csv:"control"`
	Unsigned int    `csv:"unsigned"`
	Signed   int    `csv:"signed"`
	Op       string `csv:"op"`
	Count    int    `csv:"count"`
}

// DecodeRows returns the decode table of a variant, one row per control byte.
func DecodeRows(decoder rlezoo.Decoder) []*DecodeRow {
	rows := make([]*DecodeRow, 256)
	for i := range rows {
		control := byte(i)
		cmd := decoder.Decode(control)
		rows[i] = &DecodeRow{
			Control:  fmt.Sprintf("0x%02x", control),
			Unsigned: int(control),
			Signed:   int(int8(control)),
			Op:       cmd.Op.String(),
			Count:    cmd.Count,
		}
	}
	return rows
}

// WriteCSV writes the decode table of a variant as CSV with a header row.
func WriteCSV(w io.Writer, decoder rlezoo.Decoder) error {
	rows := DecodeRows(decoder)
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("failed to write decode table: %w", err)
	}
	return nil
}

// ReadCSV parses a decode table written by [WriteCSV].
func ReadCSV(r io.Reader) ([]*DecodeRow, error) {
	var rows []*DecodeRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("failed to read decode table: %w", err)
	}
	return rows, nil
}
