package suite_test

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/dargueta/rlezoo"
	"github.com/dargueta/rlezoo/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse__Basic(t *testing.T) {
	text := `# comment
; another comment

goldbox c "AB" 4 0x29e010a8
  pcx   d-  "\xc2A"   2
packbits c @input.bin 0x2 29E010A8
icns d "\x00A"
---
garbage that isn't parsed
`
	fsys := fstest.MapFS{"input.bin": {Data: []byte{1, 2, 3}}}

	tests, err := suite.Parse(strings.NewReader(text), fsys)
	require.NoError(t, err)
	require.Len(t, tests, 4)

	assert.Equal(
		t,
		suite.Test{
			Line:         4,
			Variant:      "goldbox",
			Action:       "c",
			Input:        []byte("AB"),
			ExpectedSize: 4,
			ExpectedHash: 0x29e010a8,
		},
		tests[0],
	)
	assert.True(t, tests[0].Compress())
	assert.True(t, tests[0].RoundTrip())

	assert.Equal(t, 5, tests[1].Line)
	assert.Equal(t, "pcx", tests[1].Variant)
	assert.Equal(t, []byte{0xc2, 'A'}, tests[1].Input)
	assert.Equal(t, 2, tests[1].ExpectedSize)
	assert.Zero(t, tests[1].ExpectedHash)
	assert.False(t, tests[1].Compress())
	assert.False(t, tests[1].RoundTrip())

	assert.Equal(t, []byte{1, 2, 3}, tests[2].Input)
	assert.Equal(t, 2, tests[2].ExpectedSize)
	assert.EqualValues(t, 0x29e010a8, tests[2].ExpectedHash)

	assert.Equal(t, "icns", tests[3].Variant)
	assert.Zero(t, tests[3].ExpectedSize)
}

func TestParse__BadLines(t *testing.T) {
	testCases := []struct {
		name string
		line string
	}{
		{"too few fields", `goldbox c`},
		{"too many fields", `goldbox c "A" 2 0 extra`},
		{"bad action", `goldbox x "A"`},
		{"unquoted input", `goldbox c A`},
		{"bad escape", `goldbox c "\q"`},
		{"bad size", `goldbox c "A" two`},
		{"negative size", `goldbox c "A" -1`},
		{"bad hash", `goldbox c "A" 2 0xnothex`},
		{"missing file", `goldbox c @nope.bin`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := suite.Parse(strings.NewReader(tc.line), fstest.MapFS{})
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "line 1")
		})
	}
}

func TestParse__FileWithoutFS(t *testing.T) {
	_, err := suite.Parse(strings.NewReader(`pcx c @input.bin`), nil)
	assert.ErrorIs(t, err, rlezoo.ErrInvalidArgument)
}

func TestParseFile__Fixture(t *testing.T) {
	tests, err := suite.ParseFile("testdata/rle-tests.suite")
	require.NoError(t, err)
	require.NotEmpty(t, tests)

	seen := map[string]bool{}
	for _, test := range tests {
		seen[test.Variant] = true
	}
	assert.Len(t, seen, 4)
}
