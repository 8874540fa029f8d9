package common_test

import (
	"testing"

	"github.com/dargueta/rlezoo"
	c "github.com/dargueta/rlezoo/codecs/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSink__CountOnly(t *testing.T) {
	sink := c.NewSink(nil)
	sink.PutByte(1)
	sink.PutBytes([]byte{2, 3, 4})
	sink.PutRepeated(5, 10)

	assert.Equal(t, 14, sink.Len())
	assert.True(t, sink.Truncated())
}

func TestSink__Truncates(t *testing.T) {
	// The guard bytes after the window must survive.
	backing := []byte{0, 0, 0, 0, 0, 0xEE, 0xEE}
	sink := c.NewSink(backing[:5])

	sink.PutByte(1)
	sink.PutBytes([]byte{2, 3})
	sink.PutRepeated(9, 4)
	sink.PutBytes([]byte{7, 7})

	assert.Equal(t, 9, sink.Len())
	assert.True(t, sink.Truncated())
	assert.Equal(t, []byte{1, 2, 3, 9, 9, 0xEE, 0xEE}, backing)
}

func TestSink__ExactFit(t *testing.T) {
	output := make([]byte, 4)
	sink := c.NewSink(output)
	sink.PutRepeated(3, 2)
	sink.PutBytes([]byte{1, 2})

	assert.Equal(t, 4, sink.Len())
	assert.False(t, sink.Truncated())
	assert.Equal(t, []byte{3, 3, 1, 2}, output)
}

func TestSource__ReadPastEnd(t *testing.T) {
	source := c.NewSource([]byte{1, 2, 3})

	b, err := source.ReadByte()
	require.NoError(t, err)
	assert.EqualValues(t, 1, b)

	_, err = source.Next(3)
	assert.ErrorIs(t, err, rlezoo.ErrFormatViolation)

	chunk, err := source.Next(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{2, 3}, chunk)
	assert.True(t, source.Done())

	_, err = source.ReadByte()
	assert.ErrorIs(t, err, rlezoo.ErrFormatViolation)
}
