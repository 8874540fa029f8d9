// Package common holds the scanning and output helpers shared by all the RLE
// variants.
//
// Every variant compresses the same way: starting at the read position, look
// for a run of identical bytes; if it's long enough to be worth a repeat
// command, emit one, otherwise gather up a run of bytes that don't repeat and
// emit a copy command. Only the limits and the tie-break rules differ, so the
// run counting lives here. Output goes through a [Sink], which silently drops
// bytes that don't fit in the destination while still counting them. That is
// what lets a single pass either size or fill a buffer.
package common
