package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// FieldSpec represents one parsed @field line.
//
// Bit numbers count from zero at the least significant bit. Msb is always
// exclusive after parsing; the inclusive ..= form is normalized with +1.
type FieldSpec struct {
	Name string
	Bool bool // single-bit boolean field, declared as a bare bit position
	Lsb  int
	Msb  int // exclusive

	Storage string // uint8/uint16/uint32/uint64; empty means infer from width
	Iface   string // exposed type; empty means same as storage
	From    string // storage→interface conversion function (optional)
	Into    string // interface→storage conversion function (optional)
	Doc     string // doc comment attached to the getter (optional)
}

// Width returns the number of bits the field covers.
func (f *FieldSpec) Width() int {
	return f.Msb - f.Lsb
}

var (
	identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
	// Qualified identifiers (pkg.Type) are allowed for interface types and
	// conversion functions, but not for field names.
	qualIdentRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*(\.[A-Za-z_][A-Za-z0-9_]*)?$`)
	rangeRe     = regexp.MustCompile(`^(\d+)\.\.(=?)(\d+)$`)
	docRe       = regexp.MustCompile(`"([^"]*)"\s*$`)
)

// ParseField parses a single @field annotation line
//
// Semantics:
//   - "@field Name N"               : single-bit boolean field at bit N
//   - "@field Name N..M"            : bits [N, M), exclusive of M
//   - "@field Name N..=M"           : bits [N, M], inclusive of M
//
// After the range, in order:
//   - optional storage type (uint8/uint16/uint32/uint64); inferred from the
//     field width when omitted
//   - optional "as:Type" interface type, converted to/from the storage type
//     with plain Go conversions unless "from:Func" and "into:Func" name a
//     user-supplied conversion pair
//   - optional quoted doc string, emitted on the generated getter
//
// Visibility is Go-native: an exported field name yields exported accessors.
//
// Examples:
//
//	"@field Parity 4"                          → bool field at bit 4
//	"@field Divisor 0..4"                      → bits [0, 4) as uint8
//	"@field b 6..=17 uint16"                   → bits [6, 18) as uint16
//	"@field Sub 26..32 uint8 as:SubFields"     → bits [26, 32) exposed as SubFields
//	"@field Mode 4..8 \"operating mode\""      → doc comment on the getter
func ParseField(line string) (*FieldSpec, error) {
	line = strings.TrimSpace(line)
	rest, ok := strings.CutPrefix(line, "@field")
	if !ok {
		return nil, fmt.Errorf("not a @field line: %s", line)
	}

	// Peel off the trailing quoted doc string before tokenizing so it may
	// contain spaces.
	doc := ""
	if m := docRe.FindStringSubmatch(rest); m != nil {
		doc = m[1]
		rest = rest[:len(rest)-len(m[0])]
	}

	tokens := strings.Fields(rest)
	if len(tokens) < 2 {
		return nil, fmt.Errorf("@field requires a name and a bit position or range")
	}

	name := tokens[0]
	if !identRe.MatchString(name) {
		return nil, fmt.Errorf("invalid field name: %s", name)
	}

	f := &FieldSpec{Name: name, Doc: doc}
	if err := parseRange(f, tokens[1]); err != nil {
		return nil, fmt.Errorf("field %s: %w", name, err)
	}

	if err := parseOptions(f, tokens[2:]); err != nil {
		return nil, fmt.Errorf("field %s: %w", name, err)
	}

	return f, nil
}

func parseRange(f *FieldSpec, token string) error {
	// Bare bit position: single-bit boolean field
	if n, err := strconv.Atoi(token); err == nil {
		if n < 0 {
			return fmt.Errorf("negative bit position: %d", n)
		}
		f.Bool = true
		f.Lsb = n
		f.Msb = n + 1
		return nil
	}

	m := rangeRe.FindStringSubmatch(token)
	if m == nil {
		return fmt.Errorf("invalid bit range: %s (expected N, N..M, or N..=M)", token)
	}

	lsb, err := strconv.Atoi(m[1])
	if err != nil {
		return fmt.Errorf("invalid range start: %s", m[1])
	}
	msb, err := strconv.Atoi(m[3])
	if err != nil {
		return fmt.Errorf("invalid range end: %s", m[3])
	}
	if m[2] == "=" {
		// Inclusive upper bound: normalize to exclusive
		msb++
	}

	if msb <= lsb {
		return fmt.Errorf("inverted or empty bit range: %s", token)
	}

	f.Lsb = lsb
	f.Msb = msb
	return nil
}

func parseOptions(f *FieldSpec, tokens []string) error {
	for i, token := range tokens {
		switch {
		case strings.HasPrefix(token, "as:"):
			typ := strings.TrimPrefix(token, "as:")
			if !qualIdentRe.MatchString(typ) {
				return fmt.Errorf("invalid interface type: %s", typ)
			}
			f.Iface = typ

		case strings.HasPrefix(token, "from:"):
			fn := strings.TrimPrefix(token, "from:")
			if !qualIdentRe.MatchString(fn) {
				return fmt.Errorf("invalid conversion function: %s", fn)
			}
			f.From = fn

		case strings.HasPrefix(token, "into:"):
			fn := strings.TrimPrefix(token, "into:")
			if !qualIdentRe.MatchString(fn) {
				return fmt.Errorf("invalid conversion function: %s", fn)
			}
			f.Into = fn

		default:
			// The only bare token allowed is the storage type, directly
			// after the range.
			if i != 0 {
				return fmt.Errorf("unknown parameter: %s", token)
			}
			switch token {
			case "uint8", "uint16", "uint32", "uint64":
				f.Storage = token
			default:
				return fmt.Errorf("invalid storage type: %s (expected uint8/uint16/uint32/uint64)", token)
			}
		}
	}

	if f.Bool && (f.Storage != "" || f.Iface != "") {
		return fmt.Errorf("single-bit fields are boolean and take no storage or interface type")
	}
	if (f.From == "") != (f.Into == "") {
		return fmt.Errorf("from: and into: must be given together")
	}
	if f.From != "" && f.Iface == "" {
		return fmt.Errorf("from:/into: require an as: interface type")
	}

	return nil
}
