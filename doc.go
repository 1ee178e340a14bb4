// Package bitfield provides typed, bounds-aware access to bit ranges inside
// fixed-width unsigned integers. It is useful for modeling hardware registers
// and wire protocol layouts.
//
// The package has two halves:
//
//   - Runtime primitives (Get, Set, GetBits, SetBits, Shl, Shr, Truncate)
//     that operate on any unsigned integer type. All of them are pure value
//     transformations with no allocation and no failure path.
//
//   - A code generator, cmd/bitfieldgen, that turns annotated integer type
//     declarations into accessor methods calling the primitives. A wrapper
//     type is declared as a defined type over an unsigned integer with
//     @bitfield and @field lines in its doc comment:
//
//	// @bitfield
//	// @field Divisor 0..4
//	// @field Parity  4
//	// @field Mode    4..8 "operating mode, overlaps Parity"
//	type LineControl uint8
//
// Running bitfieldgen over the file produces a getter, a setter, and a
// non-mutating With builder for every field, a String method that dumps the
// raw value and every field, and a Raw accessor for the underlying integer.
// Because the wrapper is a defined integer type, construction from a raw
// value, equality, copying, and the zero default all come for free and always
// operate on the full underlying value, reserved bits included.
//
// Bit ranges may overlap and need not cover every bit of the wrapper. Bits
// are numbered from zero at the least significant bit, independent of the
// byte order of the integer in memory. Conversion to and from byte arrays is
// out of scope; use encoding/binary on the raw value.
package bitfield
