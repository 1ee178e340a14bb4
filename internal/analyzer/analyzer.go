package analyzer

import (
	"fmt"

	"github.com/cimbul/tartan-bitfield/internal/parser"
)

// Spec is a generation-ready wrapper type: fields validated, storage types
// resolved, and shared field sets pulled in.
type Spec struct {
	Name       string
	Underlying string
	Width      int // bit width of the underlying type

	// Fields in declaration order. Fields from an included set come first,
	// so the shared accessors dump in a consistent order on every host.
	Fields []*Field

	// Hosts lists the wrapper types that include this one's field set, in
	// declaration order. Non-empty Hosts means a capability interface is
	// generated for this spec.
	Hosts []string
}

// Field is a resolved field specification. Storage and Iface are always
// populated for ranged fields; boolean fields use neither.
type Field struct {
	Name string
	Bool bool
	Lsb  int
	Msb  int // exclusive

	Storage string
	Iface   string
	From    string
	Into    string
	Doc     string
}

// Analyze validates parsed wrapper declarations and resolves them into specs.
// All wrappers of one generation run must be analyzed together so that
// include= references can be resolved across files of the same package.
//
// Overlapping field ranges and uncovered (reserved) bits are legal and pass
// without diagnostics.
func Analyze(wrappers []*parser.Wrapper) ([]*Spec, error) {
	var errs []string

	specs := make([]*Spec, 0, len(wrappers))
	byName := make(map[string]*Spec, len(wrappers))

	// Phase 1: validate each wrapper's own fields
	for _, w := range wrappers {
		spec, err := buildSpec(w)
		if err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", w.Name, err))
			continue
		}
		if _, dup := byName[spec.Name]; dup {
			errs = append(errs, fmt.Sprintf("%s: duplicate wrapper type", spec.Name))
			continue
		}
		specs = append(specs, spec)
		byName[spec.Name] = spec
	}

	// Phase 2: resolve shared field sets
	includes := make(map[string]string, len(wrappers))
	for _, w := range wrappers {
		includes[w.Name] = w.Anno.Include
	}
	for _, w := range wrappers {
		if w.Anno.Include == "" {
			continue
		}
		host := byName[w.Name]
		if host == nil {
			continue // already failed phase 1
		}
		// Chained includes would make the result depend on declaration
		// order, so a shared set must not itself include another.
		if inc := includes[w.Anno.Include]; inc != "" {
			errs = append(errs, fmt.Sprintf("%s: included type %s itself includes %s; chained includes are not supported",
				w.Name, w.Anno.Include, inc))
			continue
		}
		if err := resolveInclude(host, w.Anno.Include, byName); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", w.Name, err))
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("schema has %d error(s): %v", len(errs), errs)
	}
	return specs, nil
}

func buildSpec(w *parser.Wrapper) (*Spec, error) {
	width, err := underlyingWidth(w.Underlying)
	if err != nil {
		return nil, err
	}

	spec := &Spec{
		Name:       w.Name,
		Underlying: w.Underlying,
		Width:      width,
	}

	seen := make(map[string]bool, len(w.Fields))
	for _, f := range w.Fields {
		if seen[f.Name] {
			return nil, fmt.Errorf("duplicate field %s", f.Name)
		}
		seen[f.Name] = true

		resolved, err := resolveField(f, width)
		if err != nil {
			return nil, err
		}
		spec.Fields = append(spec.Fields, resolved)
	}

	return spec, nil
}

func resolveField(f *parser.FieldSpec, width int) (*Field, error) {
	if f.Msb > width {
		return nil, fmt.Errorf("field %s: bits [%d, %d) exceed the %d-bit underlying type",
			f.Name, f.Lsb, f.Msb, width)
	}

	resolved := &Field{
		Name: f.Name,
		Bool: f.Bool,
		Lsb:  f.Lsb,
		Msb:  f.Msb,
		From: f.From,
		Into: f.Into,
		Doc:  f.Doc,
	}
	if f.Bool {
		return resolved, nil
	}

	storage := f.Storage
	if storage == "" {
		storage = inferStorage(f.Width())
	} else if storageWidth(storage) < f.Width() {
		return nil, fmt.Errorf("field %s: storage type %s is narrower than the %d-bit field",
			f.Name, storage, f.Width())
	}
	resolved.Storage = storage

	resolved.Iface = f.Iface
	if resolved.Iface == "" {
		resolved.Iface = storage
	}

	return resolved, nil
}

func resolveInclude(host *Spec, include string, byName map[string]*Spec) error {
	shared, ok := byName[include]
	if !ok {
		return fmt.Errorf("included type %s not found in this generation run", include)
	}
	if shared == host {
		return fmt.Errorf("type cannot include itself")
	}
	if shared.Underlying != host.Underlying {
		return fmt.Errorf("included type %s wraps %s, host wraps %s; shared field sets require the same underlying type",
			include, shared.Underlying, host.Underlying)
	}

	names := make(map[string]bool, len(host.Fields))
	for _, f := range host.Fields {
		names[f.Name] = true
	}
	for _, f := range shared.Fields {
		if names[f.Name] {
			return fmt.Errorf("field %s from included type %s clashes with a local field", f.Name, include)
		}
	}

	// Merge into a fresh slice. Appending to shared.Fields directly could
	// reuse its backing array across hosts, letting one host's append
	// overwrite another's fields.
	merged := make([]*Field, 0, len(shared.Fields)+len(host.Fields))
	merged = append(merged, shared.Fields...)
	merged = append(merged, host.Fields...)
	host.Fields = merged
	shared.Hosts = append(shared.Hosts, host.Name)
	return nil
}

// underlyingWidth returns the bit width of a wrapper's underlying type. The
// generator accepts only fixed-width types; the runtime primitives also
// support uint and uintptr for direct use.
func underlyingWidth(goType string) (int, error) {
	switch goType {
	case "uint8":
		return 8, nil
	case "uint16":
		return 16, nil
	case "uint32":
		return 32, nil
	case "uint64":
		return 64, nil
	}
	return 0, fmt.Errorf("unsupported underlying type %s (expected uint8/uint16/uint32/uint64)", goType)
}

// inferStorage picks the smallest standard unsigned type that holds a field
// of the given bit width.
func inferStorage(width int) string {
	switch {
	case width <= 8:
		return "uint8"
	case width <= 16:
		return "uint16"
	case width <= 32:
		return "uint32"
	default:
		return "uint64"
	}
}

func storageWidth(storage string) int {
	w, _ := underlyingWidth(storage)
	return w
}
