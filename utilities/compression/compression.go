package compression

import (
	"bytes"
	"io"

	"github.com/dargueta/rlezoo"
	"github.com/klauspost/compress/gzip"
)

// CompressStream reads all of input, compresses it with codec, and writes the
// result to output. It returns the number of bytes written.
func CompressStream(codec rlezoo.Codec, input io.Reader, output io.Writer) (int64, error) {
	source, err := io.ReadAll(input)
	if err != nil {
		return 0, err
	}

	n, err := output.Write(rlezoo.CompressToBytes(codec, source))
	return int64(n), err
}

// DecompressStream reads all of input, decompresses it with codec, and writes
// the result to output.
//
// The returned int64 gives the number of bytes written to the output. If an
// error occurred, the value is undefined and should not be used.
func DecompressStream(codec rlezoo.Codec, input io.Reader, output io.Writer) (int64, error) {
	source, err := io.ReadAll(input)
	if err != nil {
		return 0, err
	}

	decompressed, err := rlezoo.DecompressToBytes(codec, source)
	if err != nil {
		return 0, err
	}

	n, err := output.Write(decompressed)
	return int64(n), err
}

// CompressImage compresses a disk image using codec, then gzip.
//
// The returned int64 gives the number of bytes written to the output stream. If
// an error occurred, the value is undefined and should not be used.
func CompressImage(codec rlezoo.Codec, input io.Reader, output io.Writer) (int64, error) {
	// The disk images aren't that huge so we won't notice much of a speed
	// difference between the default and highest levels.
	return CompressImageLevel(codec, gzip.BestCompression, input, output)
}

// CompressImageLevel is [CompressImage] with a caller-chosen gzip level, one of
// the constants in [gzip].
func CompressImageLevel(
	codec rlezoo.Codec, level int, input io.Reader, output io.Writer,
) (int64, error) {
	counter := countingWriter{writer: output}
	gzWriter, err := gzip.NewWriterLevel(&counter, level)
	if err != nil {
		return 0, rlezoo.ErrInvalidArgument.Wrap(err)
	}

	_, err = CompressStream(codec, input, gzWriter)
	if err != nil {
		gzWriter.Close()
		return counter.written, err
	}

	// Close explicitly so the gzip footer is included in the byte count.
	err = gzWriter.Close()
	return counter.written, err
}

// DecompressImage takes a gzipped, RLE-encoded disk image and decompresses it
// to the original raw bytes.
//
// The returned int64 gives the number of bytes written to the output (i.e. the
// decompressed size of the image). If an error occurred, the value is undefined
// and should not be used.
func DecompressImage(codec rlezoo.Codec, input io.Reader, output io.Writer) (int64, error) {
	gzReader, err := gzip.NewReader(input)
	if err != nil {
		return 0, err
	}
	defer gzReader.Close()
	return DecompressStream(codec, gzReader, output)
}

// DecompressImageToBytes is a convenience function wrapping [DecompressImage]
// that returns the decompressed image in a new byte slice.
func DecompressImageToBytes(codec rlezoo.Codec, input io.Reader) ([]byte, error) {
	buffer := bytes.Buffer{}
	_, err := DecompressImage(codec, input, &buffer)
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

type countingWriter struct {
	writer  io.Writer
	written int64
}

func (w *countingWriter) Write(data []byte) (int, error) {
	n, err := w.writer.Write(data)
	w.written += int64(n)
	return n, err
}
