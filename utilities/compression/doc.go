// Package compression adapts the in-memory codecs to streams, and wraps them
// in gzip for storing large test images.
//
// An RLE pass alone leaves a lot of redundancy in the output when an image is
// mostly empty: a megabyte of null bytes still becomes thousands of identical
// two-byte repeat commands. Running gzip over the result removes nearly all of
// it. An IBM 8" floppy image of 256,256 bytes compresses to around 3 KiB with
// PackBits, and to well under 100 bytes once gzipped.
//
// None of the codecs are incremental, so every function here reads its entire
// input into memory before transforming it.
package compression
