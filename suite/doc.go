// Package suite reads and runs RLE fixture files.
//
// A suite is a text file with one test per line:
//
//	# variant  action  input               size  crc32c
//	goldbox    c       "AAAAAAAAAAAAAAAA"  2     0x06ebc713
//	packbits   d       @packed.bin         4096  0x1234abcd
//
// The action starts with `c` to compress the input or `d` to decompress it. If
// it contains a `-`, the output isn't fed back through the inverse transform.
// The input is either a double-quoted string with C-style escapes (see
// [ExpandEscapes]; it can't contain literal whitespace) or `@` followed by the
// path of a file relative to the suite. Size is the expected output length,
// and the hash is the CRC-32C of the expected output. Lines starting with `#`
// or `;` are comments, and a line starting with `---` ends the suite early.
package suite
