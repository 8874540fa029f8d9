package rlezoo

// Decoder is the interface for translating between control bytes and commands.
type Decoder interface {
	// Decode returns the command introduced by a control byte. It never fails;
	// reserved control bytes give [InvalidCommand].
	Decode(control byte) Command
	// Encode returns the control byte for a command, or an error wrapping
	// [ErrUnrepresentableCommand] if the variant can't express it.
	Encode(cmd Command) (byte, error)
}

// Codec is the interface implemented by every RLE variant.
//
// Compress and Decompress share a sizing contract:
//
//   - If dst is nil or empty, nothing is written and the return value is the
//     exact number of bytes the full transform produces.
//   - Otherwise at most len(dst) bytes are written and the return value is
//     still the full required length. Callers detect truncation by comparing
//     it to len(dst).
//
// Codecs hold no state and are safe for concurrent use.
type Codec interface {
	Decoder

	// Name returns the short name of the variant, e.g. "packbits".
	Name() string
	// Limits returns the legal counts for each operation of the variant.
	Limits() Limits
	// Compress run-length encodes src into dst. It never fails.
	Compress(src, dst []byte) int
	// Decompress expands src into dst. If src isn't a valid encoding, an error
	// wrapping [ErrFormatViolation] is returned and the length is undefined.
	Decompress(src, dst []byte) (int, error)
}

// CompressToBytes is a convenience function wrapping [Codec.Compress]. It
// determines the output length first, then returns the compressed data in a
// new byte slice of exactly that length.
func CompressToBytes(codec Codec, src []byte) []byte {
	size := codec.Compress(src, nil)
	output := make([]byte, size)
	codec.Compress(src, output)
	return output
}

// DecompressToBytes is a convenience function wrapping [Codec.Decompress]. It
// functions identically, except it returns the decompressed data in a new byte
// slice instead of writing to a caller-supplied buffer.
func DecompressToBytes(codec Codec, src []byte) ([]byte, error) {
	size, err := codec.Decompress(src, nil)
	if err != nil {
		return nil, err
	}

	output := make([]byte, size)
	_, err = codec.Decompress(src, output)
	if err != nil {
		return nil, err
	}
	return output, nil
}
