package genops_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dargueta/rlezoo"
	"github.com/dargueta/rlezoo/codecs"
	"github.com/dargueta/rlezoo/codecs/goldbox"
	"github.com/dargueta/rlezoo/codecs/packbits"
	"github.com/dargueta/rlezoo/codecs/pcx"
	"github.com/dargueta/rlezoo/genops"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenCodec claims the wrong limits and encodes every repeat to the same
// byte.
type brokenCodec struct {
	goldbox.Codec
}

func (brokenCodec) Limits() rlezoo.Limits {
	return rlezoo.Limits{
		Copy:    rlezoo.Range{Min: 1, Max: 127},
		Repeat:  rlezoo.Range{Min: 1, Max: 127},
		Literal: rlezoo.EmptyRange,
	}
}

func (c brokenCodec) Encode(cmd rlezoo.Command) (byte, error) {
	if cmd.Op == rlezoo.OpRepeat && cmd.Count > 0 && cmd.Count < 128 {
		return 0xff, nil
	}
	return c.Codec.Encode(cmd)
}

func TestVerify__AllVariants(t *testing.T) {
	for _, codec := range codecs.All() {
		assert.NoError(t, genops.Verify(codec), codec.Name())
	}
}

func TestVerify__Broken(t *testing.T) {
	err := genops.Verify(brokenCodec{})
	require.Error(t, err)
	assert.ErrorIs(t, err, rlezoo.ErrSelfCheckFailed)

	message := err.Error()
	assert.Contains(t, message, "re-encodes to 0xff")
	assert.Contains(t, message, "ambiguous encoding")
	assert.Contains(t, message, "limits say 1..127")
	assert.Contains(t, message, "nothing encodes to it")
}

func TestCollectStats(t *testing.T) {
	stats := genops.CollectStats(goldbox.New())
	assert.Equal(t, 126, stats.Usage[rlezoo.OpCopy])
	assert.Equal(t, 127, stats.Usage[rlezoo.OpRepeat])
	assert.Equal(t, 3, stats.Usage[rlezoo.OpInvalid])
	assert.Equal(t, rlezoo.Range{Min: 1, Max: 126}, stats.Observed.Copy)
	assert.False(t, stats.Observed.Literal.Valid())

	stats = genops.CollectStats(pcx.New())
	assert.Equal(t, 192, stats.Usage[rlezoo.OpLiteral])
	assert.Equal(t, 64, stats.Usage[rlezoo.OpRepeat])
	assert.Equal(t, rlezoo.Range{Min: 0, Max: 63}, stats.Observed.Repeat)

	stats = genops.CollectStats(packbits.New())
	assert.Equal(t, 1, stats.Usage[rlezoo.OpNoOp])
}

func TestDescribe(t *testing.T) {
	var output bytes.Buffer
	require.NoError(t, genops.Describe(&output, goldbox.New()))

	lines := strings.Split(strings.TrimRight(output.String(), "\n"), "\n")
	require.Len(t, lines, 258, "expected two header lines and 256 entries")
	assert.Equal(t, "0x00 (0/0) => CPY 1", lines[2])
	assert.Equal(t, "0x7e (126/126) => INVALID", lines[2+0x7e])
	assert.Equal(t, "0x81 (129/-127) => REP 127", lines[2+0x81])
	assert.Equal(t, "0xff (255/-1) => REP 1", lines[257])
}

func TestDescribe__Mismatch(t *testing.T) {
	var output bytes.Buffer
	err := genops.Describe(&output, brokenCodec{})
	assert.ErrorIs(t, err, rlezoo.ErrSelfCheckFailed)
	assert.Contains(t, output.String(), "ERROR: reencode mismatch: REP 127 => 0xff")
}

func TestGenerateC(t *testing.T) {
	var output bytes.Buffer
	require.NoError(t, genops.GenerateC(&output, packbits.New()))

	source := output.String()
	assert.Contains(t, source, "static struct rle8 rle8_tbl_decode_packbits[256] = {")
	assert.Contains(t, source, " /* 80 */ { RLE_OP_NOP,   0 }")
	assert.Contains(t, source, " /* FF */ { RLE_OP_REP,   2 }")
	assert.Contains(t, source, "static int16_t rle8_tbl_encode_packbits[][256] = {")
	assert.Contains(t, source, "\t{ -1, 0x00, 0x01, ")
	assert.Contains(t, source, "RLE_OP_CPY /* 128 */ | RLE_OP_REP /* 127 */ | RLE_OP_NOP /* 1 */")
	assert.Contains(t, source, "\t\t{ 2, 128 },\n")
}

func TestCSV__RoundTrip(t *testing.T) {
	var output bytes.Buffer
	require.NoError(t, genops.WriteCSV(&output, pcx.New()))

	header, _, found := strings.Cut(output.String(), "\n")
	require.True(t, found)
	assert.Equal(t, "control,unsigned,signed,op,count", header)

	rows, err := genops.ReadCSV(&output)
	require.NoError(t, err)
	require.Len(t, rows, 256)
	assert.Equal(t, genops.DecodeRows(pcx.New()), rows)
	assert.Equal(t, &genops.DecodeRow{Control: "0xc5", Unsigned: 197, Signed: -59, Op: "REP", Count: 5}, rows[0xc5])
}
