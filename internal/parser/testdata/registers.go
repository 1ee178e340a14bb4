package testdata

// LineControl configures the serial line.
//
// @bitfield
// @field Divisor 0..4
// @field Parity  4
// @field Mode    4..8 "operating mode, overlaps Parity"
type LineControl uint16

// @bitfield include=LineControl
// @field TxReady 8
type PortStatus uint16

// Plain types without annotations are ignored.
type Unrelated uint32

type NotAnInteger struct {
	Value uint32
}
