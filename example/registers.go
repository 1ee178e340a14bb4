// Package example demonstrates bitfieldgen on a set of serial-port style
// registers, including overlapping fields, reserved bits, nested bitfields,
// and a field set shared between two port registers.
package example

//go:generate go run github.com/cimbul/tartan-bitfield/cmd/bitfieldgen .

// LineControl is an 8-bit register with an intentionally overlapping layout:
// Mode shares bit 4 with Parity.
//
// @bitfield
// @field Divisor 0..4
// @field Parity  4
// @field Mode    4..8 "operating mode, shares bit 4 with Parity"
type LineControl uint8

// SubFields is a bag of flags nested inside the top bits of Control.
//
// @bitfield
// @field Zero  0
// @field One   1
// @field Two   2
// @field Three 3
// @field Four  4
// @field Five  5
type SubFields uint8

// Control is a 32-bit register mixing multi-bit fields, a single-bit flag,
// an unexported field, reserved bits (4..6 and 18..25 are uncovered), and a
// nested bitfield interface type.
//
// @bitfield
// @field Baud    0..4
// @field divisor 6..=17
// @field Clock   16..20 "clock select, overlaps divisor"
// @field Enabled 25
// @field Sub     26..32 uint8 as:SubFields
type Control uint32

// LineStatus reports line conditions on a serial channel.
//
// @bitfield
// @field Overrun 0
// @field Busy    15
type LineStatus uint16

// Serial is a 16-bit register whose entire width is interpreted as a nested
// LineStatus bitfield. Accessing Line is equivalent to accessing the whole
// underlying value.
//
// @bitfield
// @field Line 0..16 as:LineStatus
type Serial uint16

// LinkStatus carries the fields common to both port status registers. Its
// field set is shared into PortAStatus and PortBStatus below.
//
// @bitfield
// @field Up    0
// @field Speed 1..4
type LinkStatus uint32

// PortAStatus is the status register of port A.
//
// @bitfield include=LinkStatus
// @field TxReady 8
type PortAStatus uint32

// PortBStatus is the status register of port B.
//
// @bitfield include=LinkStatus
// @field RxReady 9
type PortBStatus uint32
