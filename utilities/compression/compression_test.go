package compression_test

import (
	"bufio"
	"bytes"
	"crypto/rand"
	"io"
	"testing"

	"github.com/dargueta/rlezoo"
	"github.com/dargueta/rlezoo/codecs"
	c "github.com/dargueta/rlezoo/utilities/compression"
	"github.com/klauspost/compress/gzip"
	"github.com/noxer/bytewriter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type imageC9nTestRunner struct {
	Name     string
	Function func(t *testing.T, codec rlezoo.Codec, d []byte)
}

type imageC9nTestData struct {
	Name string
	Data []byte
}

// compressImageToBytes is a convenience function wrapping [CompressImage]. It
// functions identically, except it returns the compressed data in a new byte
// slice instead of writing to an [io.Writer].
func compressImageToBytes(codec rlezoo.Codec, input io.Reader) ([]byte, error) {
	buffer := bytes.Buffer{}
	writer := bufio.NewWriter(&buffer)
	_, err := c.CompressImage(codec, input, writer)
	if err != nil {
		return nil, err
	}

	writer.Flush()

	outputSlice := make([]byte, buffer.Len())
	copy(outputSlice, buffer.Bytes())
	return outputSlice, nil
}

func TestRoundTripImageCompression(t *testing.T) {
	testRunners := []imageC9nTestRunner{
		{"to_stream", runRoundTripCompressionTest},
		{"to_bytes", runRoundTripCompressionToBytesTest},
	}

	randomData := make([]byte, 119)
	rand.Read(randomData)

	mixedData := append(bytes.Repeat([]byte{0}, 3000), randomData...)
	mixedData = append(mixedData, bytes.Repeat([]byte{0xe5}, 513)...)

	testData := []imageC9nTestData{
		{"homogenous", bytes.Repeat([]byte{100}, 9174)},
		{"empty", []byte{}},
		{"heterogenous", randomData},
		{"mixed", mixedData},
	}

	for _, codec := range codecs.All() {
		for _, runner := range testRunners {
			t.Run(
				codec.Name()+"/"+runner.Name,
				func(tSub *testing.T) {
					for _, data := range testData {
						tSub.Run(
							data.Name,
							func(tSubSub *testing.T) {
								runner.Function(tSubSub, codec, data.Data)
							},
						)
					}
				},
			)
		}
	}
}

func runRoundTripCompressionTest(t *testing.T, codec rlezoo.Codec, sourceData []byte) {
	sourceDataReader := bytes.NewReader(sourceData)

	compressedBuffer := make([]byte, 10240)
	compressedWriter := bytewriter.New(compressedBuffer)

	compressedSize, err := c.CompressImage(codec, sourceDataReader, compressedWriter)
	require.NoError(t, err, "unexpected error while compressing")
	t.Logf("image size after compression: %d -> %d", len(sourceData), compressedSize)

	decompressedBuffer := make([]byte, len(sourceData))
	decompressedWriter := bytewriter.New(decompressedBuffer)
	compressedReader := bytes.NewReader(compressedBuffer[:compressedSize])

	n, err := c.DecompressImage(codec, compressedReader, decompressedWriter)
	require.NoError(t, err, "unexpected error while decompressing")
	assert.EqualValues(t, len(sourceData), n, "decompressed image has wrong size")
	assert.Equal(t, sourceData, decompressedBuffer, "decompressed data is wrong")
}

func runRoundTripCompressionToBytesTest(t *testing.T, codec rlezoo.Codec, originalData []byte) {
	compressed, err := compressImageToBytes(codec, bytes.NewReader(originalData))
	require.NoError(t, err, "error while compressing")
	t.Logf("image compressed %d -> %d", len(originalData), len(compressed))

	decompressed, err := c.DecompressImageToBytes(codec, bytes.NewReader(compressed))
	require.NoError(t, err, "error while decompressing")

	assert.Equal(
		t, len(originalData), len(decompressed), "decompressed data length is wrong")
	assert.Equal(t, originalData, decompressed, "decompressed data is wrong")
}

func TestCompressStream__PackBits(t *testing.T) {
	codec, err := codecs.Get("packbits")
	require.NoError(t, err)

	output := bytes.Buffer{}
	n, err := c.CompressStream(codec, bytes.NewReader([]byte("ABCCCCD")), &output)
	require.NoError(t, err)
	assert.EqualValues(t, 7, n)
	assert.Equal(t, []byte{0x01, 'A', 'B', 0xfd, 'C', 0x00, 'D'}, output.Bytes())
}

func TestDecompressStream__Malformed(t *testing.T) {
	codec, err := codecs.Get("goldbox")
	require.NoError(t, err)

	output := bytes.Buffer{}
	_, err = c.DecompressStream(codec, bytes.NewReader([]byte{0x7e}), &output)
	assert.ErrorIs(t, err, rlezoo.ErrFormatViolation)
	assert.Zero(t, output.Len(), "nothing should be written on error")
}

func TestDecompressImage__NotGzip(t *testing.T) {
	codec, err := codecs.Get("pcx")
	require.NoError(t, err)

	_, err = c.DecompressImage(codec, bytes.NewReader([]byte("not gzip data")), io.Discard)
	assert.Error(t, err)
}

func TestCompressImageLevel__BadLevel(t *testing.T) {
	codec, err := codecs.Get("icns")
	require.NoError(t, err)

	_, err = c.CompressImageLevel(codec, 42, bytes.NewReader([]byte("abc")), io.Discard)
	assert.ErrorIs(t, err, rlezoo.ErrInvalidArgument)
}

func TestCompressImageLevel__ReturnsGzipSize(t *testing.T) {
	codec, err := codecs.Get("goldbox")
	require.NoError(t, err)

	output := bytes.Buffer{}
	n, err := c.CompressImageLevel(
		codec, gzip.BestSpeed, bytes.NewReader(bytes.Repeat([]byte{0}, 4096)), &output)
	require.NoError(t, err)
	assert.EqualValues(t, output.Len(), n)
}
