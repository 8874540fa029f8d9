package suite

import (
	"bytes"
	"fmt"
	"hash/crc32"

	"github.com/dargueta/rlezoo"
	"github.com/dargueta/rlezoo/codecs"
	"github.com/hashicorp/go-multierror"
)

var castagnoli = crc32.MakeTable(crc32.Castagnoli)

// Checksum returns the CRC-32C of data, the hash used in suite files.
func Checksum(data []byte) uint32 {
	return crc32.Checksum(data, castagnoli)
}

// Options controls how a suite is run.
type Options struct {
	// SkipRoundTrip disables feeding outputs back through the inverse
	// transform for every test, not just those marked with `-`.
	SkipRoundTrip bool
}

// Summary gives the outcome of running a suite.
type Summary struct {
	Tests      int
	Failures   int
	RoundTrips int
}

type transformFunc func(src, dst []byte) (int, error)

func compressor(codec rlezoo.Codec) transformFunc {
	return func(src, dst []byte) (int, error) {
		return codec.Compress(src, dst), nil
	}
}

// Run executes every test and returns a summary. If any test fails, the error
// wraps [rlezoo.ErrSuiteFailed] and lists every failure.
func Run(tests []Test, options Options) (Summary, error) {
	summary := Summary{}
	var failures *multierror.Error

	for _, test := range tests {
		summary.Tests++

		roundTrips, err := runTest(test, options)
		summary.RoundTrips += roundTrips
		if err != nil {
			summary.Failures++
			failures = multierror.Append(
				failures, fmt.Errorf("line %d (%s %s): %w", test.Line, test.Variant, test.Action, err))
		}
	}

	if failures != nil {
		return summary, rlezoo.ErrSuiteFailed.Wrap(failures.ErrorOrNil())
	}
	return summary, nil
}

// RunFile parses and runs the suite at the given path.
func RunFile(path string, options Options) (Summary, error) {
	tests, err := ParseFile(path)
	if err != nil {
		return Summary{}, err
	}
	return Run(tests, options)
}

// runTest checks one line of a suite. It returns the number of round trips
// performed, and an error listing every check that failed.
func runTest(test Test, options Options) (int, error) {
	codec, err := codecs.Get(test.Variant)
	if err != nil {
		return 0, err
	}

	forward, inverse := transformFunc(codec.Decompress), compressor(codec)
	if test.Compress() {
		forward, inverse = inverse, forward
	}

	var result *multierror.Error

	// First do a length-determination check on the input.
	expectedSize, err := forward(test.Input, nil)
	if err != nil {
		return 0, err
	}
	if expectedSize != test.ExpectedSize {
		result = multierror.Append(
			result, fmt.Errorf("expected size %d, got %d", test.ExpectedSize, expectedSize))
	}

	// Next transform into an oversized buffer, and verify the length stays the
	// same.
	oversized := make([]byte, expectedSize*4+16)
	n, err := forward(test.Input, oversized)
	if err != nil {
		return 0, err
	}
	if n != expectedSize {
		result = multierror.Append(
			result,
			fmt.Errorf("output length %d differs from determined length %d", n, expectedSize),
		)
	}
	output := oversized[:expectedSize]

	hash := Checksum(output)
	if hash != test.ExpectedHash {
		result = multierror.Append(
			result, fmt.Errorf("expected hash 0x%08x, got 0x%08x", test.ExpectedHash, hash))
	}

	// Now transform into a byte-tight buffer with a guard byte behind it, to
	// check for range errors.
	const guard = 0x5A
	tight := bytes.Repeat([]byte{guard}, expectedSize+1)
	n, err = forward(test.Input, tight[:expectedSize])
	if err != nil {
		return 0, err
	}
	if n != expectedSize {
		result = multierror.Append(
			result,
			fmt.Errorf("tight output length %d differs from determined length %d", n, expectedSize),
		)
	}
	if tight[expectedSize] != guard {
		result = multierror.Append(result, fmt.Errorf("wrote past the end of a tight buffer"))
	}
	if tightHash := Checksum(tight[:expectedSize]); tightHash != hash {
		result = multierror.Append(
			result, fmt.Errorf("hash mismatch: 0x%08x vs tight 0x%08x", hash, tightHash))
	}

	roundTrips := 0
	if test.RoundTrip() && !options.SkipRoundTrip {
		roundTrips++
		if err := checkRoundTrip(inverse, output, test.Input); err != nil {
			result = multierror.Append(result, err)
		}
	}
	return roundTrips, result.ErrorOrNil()
}

func checkRoundTrip(inverse transformFunc, output, original []byte) error {
	restored := make([]byte, len(original))
	n, err := inverse(output, restored)
	if err != nil {
		return fmt.Errorf("round trip failed: %w", err)
	}
	if n != len(original) {
		return fmt.Errorf("round trip gave %d bytes, expected %d", n, len(original))
	}
	if !bytes.Equal(restored, original) {
		return fmt.Errorf("round trip output doesn't match the original input")
	}
	return nil
}
