package bitfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWidth(t *testing.T) {
	assert.Equal(t, uint(8), Width[uint8]())
	assert.Equal(t, uint(16), Width[uint16]())
	assert.Equal(t, uint(32), Width[uint32]())
	assert.Equal(t, uint(64), Width[uint64]())

	type reg uint16
	assert.Equal(t, uint(16), Width[reg]())
}

func TestGet(t *testing.T) {
	assert.True(t, Get(uint8(0b0000_0100), 2))
	assert.False(t, Get(uint8(0b0000_0100), 3))
	assert.True(t, Get(uint64(1)<<63, 63))
	assert.False(t, Get(uint64(0), 63))
}

func TestSet(t *testing.T) {
	assert.Equal(t, uint8(0b0010_0000), Set(uint8(0), 5, true))
	assert.Equal(t, uint8(0b1111_1110), Set(uint8(0xff), 0, false))

	// Setting a bit to its current value is a no-op.
	assert.Equal(t, uint16(0x8001), Set(uint16(0x8001), 15, true))
	assert.Equal(t, uint16(0x8001), Set(uint16(0x8001), 4, false))
}

func TestSaturatingShifts(t *testing.T) {
	assert.Equal(t, uint8(0b1010), Shl(uint8(0b101), 1))
	assert.Equal(t, uint8(0b10), Shr(uint8(0b101), 1))

	// At or past the type width the result saturates to zero instead of
	// wrapping the shift amount.
	assert.Equal(t, uint8(0), Shl(uint8(0xff), 8))
	assert.Equal(t, uint8(0), Shl(uint8(0xff), 9))
	assert.Equal(t, uint8(0), Shr(uint8(0xff), 8))
	assert.Equal(t, uint64(0), Shl(^uint64(0), 64))
	assert.Equal(t, uint64(0), Shr(^uint64(0), 100))

	assert.Equal(t, uint8(0x80), Shl(uint8(1), 7))
	assert.Equal(t, uint8(1), Shr(uint8(0x80), 7))
}

func TestGetBits(t *testing.T) {
	assert.Equal(t, uint8(0b1001), GetBits(uint8(0b1100_1110), 3, 7))
	assert.Equal(t, uint8(0b10), GetBits(uint8(0b1010_0101), 6, 8))
	assert.Equal(t, uint32(0x3e), GetBits(uint32(0xfa84_9e1b), 26, 32))
}

func TestGetBitsFullWidth(t *testing.T) {
	// A range covering the whole type must return the value unchanged. This
	// is the boundary case that requires saturating mask shifts.
	assert.Equal(t, uint8(0xb6), GetBits(uint8(0xb6), 0, 8))
	assert.Equal(t, uint16(0xbeef), GetBits(uint16(0xbeef), 0, 16))
	assert.Equal(t, uint64(0xdead_beef_cafe_babe), GetBits(uint64(0xdead_beef_cafe_babe), 0, 64))
}

func TestGetBitsEmpty(t *testing.T) {
	assert.Equal(t, uint8(0), GetBits(uint8(0xff), 3, 3))
}

func TestSetBits(t *testing.T) {
	assert.Equal(t, uint8(0b1100_0000), SetBits(uint8(0), 6, 8, 0b11))
	assert.Equal(t, uint8(0b1110_0001), SetBits(uint8(0xff), 1, 5, 0b0000))
	assert.Equal(t, uint8(0b1011_1010), SetBits(uint8(0b1010_0110), 2, 6, 0b1110))
}

func TestSetBitsFullWidth(t *testing.T) {
	assert.Equal(t, uint8(0x5a), SetBits(uint8(0xff), 0, 8, 0x5a))
	assert.Equal(t, uint64(42), SetBits(^uint64(0), 0, 64, 42))
}

func TestSetBitsDiscardsHighBits(t *testing.T) {
	// Bits of the field value above the range width must not leak into
	// neighboring bits.
	assert.Equal(t, uint8(0b0001_1110), SetBits(uint8(0), 1, 5, 0xff))
	assert.Equal(t, uint16(0), SetBits(uint16(0), 8, 8, 0xffff))
}

func TestSingleBitFastPathEquivalence(t *testing.T) {
	for _, v := range []uint8{0x00, 0x01, 0x5a, 0xb6, 0xff} {
		for n := uint(0); n < 8; n++ {
			assert.Equal(t, Get(v, n), GetBits(v, n, n+1) != 0,
				"value %#x bit %d", v, n)
		}
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, uint8(0x1b), Truncate[uint8](uint32(0xfa84_9e1b)))
	assert.Equal(t, uint16(0x9e1b), Truncate[uint16](uint32(0xfa84_9e1b)))
	assert.Equal(t, uint32(0xfa84_9e1b), Truncate[uint32](uint32(0xfa84_9e1b)))
	assert.Equal(t, uint8(0xff), Truncate[uint8](uint64(0xffff_ffff_ffff_ffff)))
}
