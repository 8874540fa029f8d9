package testing

import (
	"io"
	"testing"

	"github.com/dargueta/rlezoo"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/bytesextra"
)

// LoadFixture takes compressed data and returns a stream to access the
// decompressed bytes.
//
//   - Writes to the stream do not affect `compressed`.
//   - While the stream can be written to, its size is fixed to `expectedSize`.
//     Attempting to write past the end of this buffer will trigger an error.
func LoadFixture(
	t *testing.T, codec rlezoo.Codec, compressed []byte, expectedSize int,
) io.ReadWriteSeeker {
	data, err := rlezoo.DecompressToBytes(codec, compressed)
	require.NoError(t, err, "fixture failed to decompress with %s", codec.Name())
	require.Equal(t, expectedSize, len(data), "decompressed fixture is wrong size")
	return bytesextra.NewReadWriteSeeker(data)
}
