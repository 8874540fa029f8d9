// Package genops builds and checks the control-byte tables of an RLE variant.
//
// Everything here is derived by running a codec's Decode and Encode over every
// one of the 256 possible control bytes and every count from 0 to 255. The
// output is meant for humans and for other implementations (C lookup tables,
// CSV); the codecs themselves never use a table.
package genops
