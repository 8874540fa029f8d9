// Package goldbox implements the run-length encoding used by SSI's "Gold Box"
// games (Pool of Radiance and its successors).
//
// Each command starts with a control byte b:
//
//	0x00-0x7D  copy the next b+1 bytes verbatim (1-126 bytes)
//	0x7E-0x80  reserved, never produced
//	0x81-0xFF  repeat the next byte -int8(b) times (127 down to 1)
//
// The compressor mirrors the one in the games. Copy runs are capped at 126
// bytes even though the control byte could express 127 (accepting more breaks
// compatibility with Pool of Radiance), and the last byte of the input is
// always emitted as a repeat, even if it occurs only once. Every compressed
// stream therefore ends on a repeat command.
package goldbox
