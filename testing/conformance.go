// Package testing contains helpers shared by the tests of every RLE variant.
package testing

import (
	"bytes"
	"math/rand"
	"strconv"
	"testing"

	"github.com/dargueta/rlezoo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Transform is the shape of [rlezoo.Codec.Compress] and
// [rlezoo.Codec.Decompress] once the compressor is adapted to return an error.
type Transform func(src, dst []byte) (int, error)

// CompressTransform adapts a codec's Compress method to a [Transform].
func CompressTransform(codec rlezoo.Codec) Transform {
	return func(src, dst []byte) (int, error) {
		return codec.Compress(src, dst), nil
	}
}

// DecompressTransform returns a codec's Decompress method as a [Transform].
func DecompressTransform(codec rlezoo.Codec) Transform {
	return codec.Decompress
}

// guardByte fills the space past the end of the destination so overruns show.
const guardByte = 0xA5

// CheckSizingContract verifies that the transform reports the same length
// whether it's given no buffer, an oversized buffer, a tight buffer, or any
// shorter buffer, and that it never writes past the end of the buffer it's
// given. The full output is returned.
func CheckSizingContract(t *testing.T, transform Transform, input []byte) []byte {
	required, err := transform(input, nil)
	require.NoError(t, err, "length determination failed")

	emptyRequired, err := transform(input, []byte{})
	require.NoError(t, err)
	assert.Equal(t, required, emptyRequired, "empty buffer changed required length")

	oversized := make([]byte, required*2+16)
	n, err := transform(input, oversized)
	require.NoError(t, err)
	require.Equal(t, required, n, "oversized buffer changed required length")
	expected := oversized[:required]

	// Check every capacity for small outputs, a spread of them for big ones.
	step := 1
	if required > 512 {
		step = required / 97
	}

	for capacity := 0; capacity <= required; capacity += step {
		const guardSize = 8
		backing := bytes.Repeat([]byte{guardByte}, capacity+guardSize)

		n, err := transform(input, backing[:capacity])
		require.NoError(t, err)
		require.Equal(t, required, n, "capacity %d changed required length", capacity)
		require.Equal(
			t,
			expected[:capacity],
			backing[:capacity],
			"capacity %d: truncated output isn't a prefix of the full output",
			capacity,
		)
		require.Equal(
			t,
			bytes.Repeat([]byte{guardByte}, guardSize),
			backing[capacity:],
			"capacity %d: wrote past the end of the buffer",
			capacity,
		)
	}
	return expected
}

// CheckRoundTripClosure verifies that every control byte that decodes to a
// valid command re-encodes to itself, and that decoding the encoding of every
// representable command gives back the command.
func CheckRoundTripClosure(t *testing.T, codec rlezoo.Codec) {
	for i := 0; i < 256; i++ {
		control := byte(i)
		cmd := codec.Decode(control)
		if cmd.Op == rlezoo.OpInvalid {
			continue
		}

		recoded, err := codec.Encode(cmd)
		if assert.NoError(t, err, "0x%02x => %s failed to encode", control, cmd) {
			assert.Equal(t, control, recoded, "0x%02x => %s re-encodes wrong", control, cmd)
		}
	}

	for _, op := range []rlezoo.Op{rlezoo.OpCopy, rlezoo.OpRepeat, rlezoo.OpLiteral} {
		for count := 0; count < 256; count++ {
			cmd := rlezoo.Command{Op: op, Count: count}
			control, err := codec.Encode(cmd)
			if err != nil {
				assert.ErrorIs(t, err, rlezoo.ErrUnrepresentableCommand)
				assert.False(
					t,
					codec.Limits().ForOp(op).Contains(count),
					"%s is in range but failed to encode",
					cmd,
				)
				continue
			}
			assert.Equal(t, cmd, codec.Decode(control), "%s => 0x%02x decodes wrong", cmd, control)
		}
	}
}

// CheckInverse compresses data, verifies the sizing contract in both
// directions, and checks that decompression gives back the original data.
func CheckInverse(t *testing.T, codec rlezoo.Codec, data []byte) {
	compressed := CheckSizingContract(t, CompressTransform(codec), data)
	decompressed := CheckSizingContract(t, DecompressTransform(codec), compressed)
	assert.Equal(t, len(data), len(decompressed), "decompressed data has wrong size")
	assert.True(t, bytes.Equal(data, decompressed), "decompressed data doesn't match original")
}

// SampleInputs returns a fixed set of inputs exercising every boundary a
// variant is likely to have: empty input, single bytes, runs around every
// common limit, alternating bytes, and seeded random data.
func SampleInputs() map[string][]byte {
	rng := rand.New(rand.NewSource(0x524c45))

	inputs := map[string][]byte{
		"empty":       {},
		"one byte":    {0x41},
		"one high":    {0xC7},
		"two same":    {9, 9},
		"two differ":  {9, 10},
		"three same":  {9, 9, 9},
		"pairs":       {1, 1, 2, 2, 3, 3, 4, 4},
		"all values":  make([]byte, 256),
		"nulls":       make([]byte, 571),
		"alternating": make([]byte, 300),
		"noisy":       make([]byte, 1852),
		"clumpy":      make([]byte, 2048),
	}

	for _, length := range []int{62, 63, 64, 126, 127, 128, 129, 130, 131, 255, 256, 257} {
		inputs["run "+strconv.Itoa(length)] = bytes.Repeat([]byte{0xCC}, length)
	}

	for i := range inputs["all values"] {
		inputs["all values"][i] = byte(i)
	}
	for i := range inputs["alternating"] {
		inputs["alternating"][i] = byte(i % 2)
	}
	rng.Read(inputs["noisy"])

	clumpy := inputs["clumpy"]
	for i := 0; i < len(clumpy); {
		runLength := 1 + rng.Intn(6)
		if rng.Intn(8) == 0 {
			runLength = 100 + rng.Intn(200)
		}
		value := byte(rng.Intn(256))
		for j := 0; j < runLength && i < len(clumpy); j++ {
			clumpy[i] = value
			i++
		}
	}
	return inputs
}

// CheckCodec runs every generic property check against a codec.
func CheckCodec(t *testing.T, codec rlezoo.Codec) {
	t.Run("round_trip_closure", func(t *testing.T) {
		CheckRoundTripClosure(t, codec)
	})

	for name, data := range SampleInputs() {
		data := data
		t.Run("inverse/"+name, func(t *testing.T) {
			CheckInverse(t, codec, data)
		})
	}
}
