package codegen

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cimbul/tartan-bitfield/internal/analyzer"
	"github.com/cimbul/tartan-bitfield/internal/parser"
)

func analyze(t *testing.T, src string) []*analyzer.Spec {
	t.Helper()
	wrappers, err := parser.ParseSource("test.go", src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	specs, err := analyzer.Analyze(wrappers)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	return specs
}

func TestGenerateSingleBoolField(t *testing.T) {
	specs := analyze(t, `package p

// @bitfield
// @field Ready 0
type Status uint8
`)

	got, err := NewGenerator("p", "", specs).File()
	if err != nil {
		t.Fatalf("File: %v", err)
	}

	want := `// Code generated by bitfieldgen. DO NOT EDIT.

package p

import (
	"fmt"

	"github.com/cimbul/tartan-bitfield"
)

// Raw returns the underlying value of v.
func (v Status) Raw() uint8 {
	return uint8(v)
}

// Ready reports whether bit 0 of v is set.
func (v Status) Ready() bool {
	return bitfield.Get(uint8(v), 0)
}

// WithReady returns a copy of v with bit 0 set to x.
func (v Status) WithReady(x bool) Status {
	return Status(bitfield.Set(uint8(v), 0, x))
}

// SetReady sets bit 0 of v to x.
func (v *Status) SetReady(x bool) {
	*v = v.WithReady(x)
}

// String renders v with its raw value followed by every declared field
// in declaration order.
func (v Status) String() string {
	return fmt.Sprintf("Status{value: %#x, Ready: %t}",
		uint8(v), v.Ready())
}
`

	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("generated code mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateRangedAccessors(t *testing.T) {
	specs := analyze(t, `package p

// @bitfield
// @field A 0..4
// @field b 6..=17
// @field E 26..32 uint8 as:SubFields
type Example uint32
`)

	out, err := NewGenerator("p", "", specs).File()
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	got := string(out)

	for _, want := range []string{
		// Getter extracts, narrows to storage, converts to the interface type.
		"func (v Example) A() uint8 {\n\treturn uint8(bitfield.GetBits(uint32(v), 0, 4))\n}",
		// Inclusive ranges were normalized to exclusive by the parser.
		"func (v Example) b() uint16 {\n\treturn uint16(bitfield.GetBits(uint32(v), 6, 18))\n}",
		// Unexported fields get unexported builder/setter names.
		"func (v Example) withB(x uint16) Example {",
		"func (v *Example) setB(x uint16) {",
		// Interface-typed field converts both ways.
		"func (v Example) E() SubFields {\n\treturn SubFields(uint8(bitfield.GetBits(uint32(v), 26, 32)))\n}",
		"return Example(bitfield.SetBits(uint32(v), 26, 32, uint32(uint8(x))))",
		// Setters delegate to the with-builders.
		"func (v *Example) SetA(x uint8) {\n\t*v = v.WithA(x)\n}",
		// String dumps the raw value first, then fields in declaration order.
		`"Example{value: %#x, A: %#x, b: %#x, E: %v}"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("generated code missing %q\n\ngot:\n%s", want, got)
		}
	}
}

func TestGenerateConversionPair(t *testing.T) {
	specs := analyze(t, `package p

// @bitfield
// @field Speed 0..3 as:Speed from:speedFromBits into:speedToBits
type Link uint8
`)

	out, err := NewGenerator("p", "", specs).File()
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	got := string(out)

	for _, want := range []string{
		// Storage already matches the underlying type, so no narrowing or
		// widening conversions are emitted around the user pair.
		"return speedFromBits(bitfield.GetBits(uint8(v), 0, 3))",
		"return Link(bitfield.SetBits(uint8(v), 0, 3, speedToBits(x)))",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("generated code missing %q\n\ngot:\n%s", want, got)
		}
	}
}

func TestGenerateSharedInterface(t *testing.T) {
	specs := analyze(t, `package p

// @bitfield
// @field Enabled 0
// @field Speed 1..4
type LinkStatus uint32

// @bitfield include=LinkStatus
// @field TxReady 8
type PortA uint32

// @bitfield include=LinkStatus
// @field RxReady 9
type PortB uint32
`)

	out, err := NewGenerator("p", "", specs).File()
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	got := string(out)

	for _, want := range []string{
		"type LinkStatusFields interface {",
		"\tfmt.Stringer\n\tRaw() uint32\n\tEnabled() bool\n\tSpeed() uint8\n}",
		"_ LinkStatusFields = LinkStatus(0)",
		"_ LinkStatusFields = PortA(0)",
		"_ LinkStatusFields = PortB(0)",
		// Hosts re-emit the shared accessors on themselves, shared fields
		// first.
		"func (v PortA) Enabled() bool {",
		`"PortA{value: %#x, Enabled: %t, Speed: %#x, TxReady: %t}"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("generated code missing %q\n\ngot:\n%s", want, got)
		}
	}
}

func TestGenerateCustomHeader(t *testing.T) {
	specs := analyze(t, `package p

// @bitfield
// @field X 0
type R uint8
`)

	out, err := NewGenerator("p", "// Code generated by make gen. DO NOT EDIT.", specs).File()
	if err != nil {
		t.Fatalf("File: %v", err)
	}
	if !strings.HasPrefix(string(out), "// Code generated by make gen. DO NOT EDIT.\n") {
		t.Errorf("custom header not applied:\n%s", out)
	}
}
