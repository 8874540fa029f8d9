package common

// ByteRun represents a single run of a particular byte value.
type ByteRun struct {
	// Byte is the byte value for this run.
	Byte byte
	// RunLength gives the number of times the byte occurs in the run (not the
	// number of times it's repeated).
	//
	// A valid run will always have this be 1 or greater. A value less than 1
	// indicates the input was empty.
	RunLength int
}

// InvalidRun is returned by [NextRun] for empty input.
var InvalidRun = ByteRun{Byte: 0, RunLength: 0}

// NextRun returns the run of identical bytes at the start of src, no longer
// than maxLength.
func NextRun(src []byte, maxLength int) ByteRun {
	runLength := RepeatLength(src, maxLength)
	if runLength == 0 {
		return InvalidRun
	}
	return ByteRun{Byte: src[0], RunLength: runLength}
}

// RepeatLength counts the bytes at the start of src that are equal to the first
// one, up to maxLength. The count is inclusive; for any non-empty input there's
// at least one repeated byte.
//
//	A  -> 1
//	AA -> 2
//	AB -> 1
func RepeatLength(src []byte, maxLength int) int {
	if len(src) == 0 || maxLength <= 0 {
		return 0
	}

	count := 1
	for count < len(src) && count < maxLength && src[count] == src[0] {
		count++
	}
	return count
}

// CopyLength counts the bytes at the start of src that should be emitted
// verbatim, up to maxLength. Scanning stops in front of the first run of
// minRepeat or more identical bytes, since that run is cheaper as a repeat.
//
// With minRepeat of 2:
//
//	A   -> 1
//	AA  -> 0
//	AB  -> 2
//	ABB -> 1
func CopyLength(src []byte, maxLength, minRepeat int) int {
	count := 0
	for count < len(src) && count < maxLength {
		if RepeatLength(src[count:], minRepeat) >= minRepeat {
			break
		}
		count++
	}
	return count
}
