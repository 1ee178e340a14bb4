package bitfield

import "math/bits"

// Value is the set of unsigned integer types usable as the backing store of a
// bitfield wrapper.
type Value interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// Width returns the number of bits in T.
func Width[T Value]() uint {
	return uint(bits.Len64(uint64(^T(0))))
}

// Get reports whether bit n of v is set. Bit 0 is the least significant bit.
//
// There is no range check on n: like a raw unsigned shift in Go, n >= Width[T]()
// reads a zero bit.
func Get[T Value](v T, n uint) bool {
	return v&(T(1)<<n) != 0
}

// Set returns a copy of v with bit n forced to b and all other bits
// unchanged. Bit 0 is the least significant bit.
func Set[T Value](v T, n uint, b bool) T {
	if b {
		return v | T(1)<<n
	}
	return v &^ (T(1) << n)
}

// Shl shifts v left by n bits, saturating: the result is 0 when n >= Width[T]().
func Shl[T Value](v T, n uint) T {
	if n >= Width[T]() {
		return 0
	}
	return v << n
}

// Shr shifts v right by n bits, saturating: the result is 0 when n >= Width[T]().
func Shr[T Value](v T, n uint) T {
	if n >= Width[T]() {
		return 0
	}
	return v >> n
}

// GetBits extracts bits [lsb, msb) of v, exclusive of msb, shifted so that
// bit lsb of v is bit 0 of the result. Bits at and above msb-lsb in the
// result are zero.
//
// The mask is built with saturating shifts, so a range covering the entire
// width of T (msb == Width[T]()) extracts the whole value rather than
// tripping over a full-width shift. The result for msb < lsb is unspecified;
// callers are responsible for ordering the bounds.
//
//	GetBits(0b1100_1110, 3, 7) == 0b1001
//	GetBits(0b1010_0101, 6, 8) == 0b10
func GetBits[T Value](v T, lsb, msb uint) T {
	// e.g. 0b0000_0111 for a 3-bit range
	mask := ^Shl(^T(0), msb-lsb)
	return Shr(v, lsb) & mask
}

// SetBits returns a copy of v with bits [lsb, msb), exclusive of msb,
// replaced by the low msb-lsb bits of field. Bits of field at and above the
// range width are discarded; bits of v outside the range are preserved.
//
// Boundary masks use saturating shifts so that a range covering the entire
// width of T replaces the whole value. The result for msb < lsb is
// unspecified; callers are responsible for ordering the bounds.
//
//	SetBits(0b0000_0000, 6, 8, 0b11) == 0b1100_0000
//	SetBits(0b1111_1111, 1, 5, 0b0000) == 0b1110_0001
func SetBits[T Value](v T, lsb, msb uint, field T) T {
	// e.g. 0b1110_0000 for msb = 5
	msbMask := Shl(^T(0), msb)
	// e.g. 0b0000_0011 for lsb = 2
	lsbMask := ^Shl(^T(0), lsb)
	keep := msbMask | lsbMask
	return v&keep | Shl(field, lsb)&^keep
}

// Truncate narrows v to U by dropping high-order bits, i.e. v modulo 2 to the
// width of U. It is the same as a plain Go conversion between unsigned types,
// spelled out to make intentional narrowing visible.
func Truncate[U, T Value](v T) U {
	return U(v)
}
