package codegen

import (
	"fmt"
	"go/format"
	"strings"

	"github.com/cimbul/tartan-bitfield/internal/analyzer"
)

// DefaultHeader is the first line of every generated file.
const DefaultHeader = "// Code generated by bitfieldgen. DO NOT EDIT."

// runtimePath is the import path of the runtime primitives package.
const runtimePath = "github.com/cimbul/tartan-bitfield"

// Generator emits accessor code for analyzed wrapper specs
type Generator struct {
	pkg    string
	header string
	specs  []*analyzer.Spec
}

// NewGenerator creates a generator for one output file. The specs must all
// belong to the package named pkg.
func NewGenerator(pkg, header string, specs []*analyzer.Spec) *Generator {
	if header == "" {
		header = DefaultHeader
	}
	return &Generator{
		pkg:    pkg,
		header: header,
		specs:  specs,
	}
}

// File renders the complete generated file, formatted with gofmt.
func (g *Generator) File() ([]byte, error) {
	var out strings.Builder

	out.WriteString(g.header)
	out.WriteString("\n\npackage ")
	out.WriteString(g.pkg)
	out.WriteString("\n\n")
	out.WriteString(g.imports())

	for _, spec := range g.specs {
		out.WriteString(g.generateWrapper(spec))
	}

	src, err := format.Source([]byte(out.String()))
	if err != nil {
		return nil, fmt.Errorf("generated code does not compile: %w", err)
	}
	return src, nil
}

func (g *Generator) imports() string {
	// fmt is always used by the String methods; the runtime package only
	// when at least one field accessor is emitted.
	needRuntime := false
	for _, spec := range g.specs {
		if len(spec.Fields) > 0 {
			needRuntime = true
			break
		}
	}

	if !needRuntime {
		return "import \"fmt\"\n\n"
	}
	return fmt.Sprintf("import (\n\t\"fmt\"\n\n\t\"%s\"\n)\n\n", runtimePath)
}

// generateWrapper emits the full accessor surface for one wrapper type:
// Raw, then getter/with/set per field in declaration order, then String,
// then the shared-set interface if other types include this one.
func (g *Generator) generateWrapper(spec *analyzer.Spec) string {
	var code strings.Builder

	code.WriteString(g.generateRaw(spec))
	for _, f := range spec.Fields {
		if f.Bool {
			code.WriteString(g.generateBoolAccessors(spec, f))
		} else {
			code.WriteString(g.generateRangedAccessors(spec, f))
		}
	}
	code.WriteString(g.generateString(spec))

	if len(spec.Hosts) > 0 {
		code.WriteString(g.generateInterface(spec))
	}

	return code.String()
}

func (g *Generator) generateRaw(spec *analyzer.Spec) string {
	var code strings.Builder

	code.WriteString("// Raw returns the underlying value of v.\n")
	code.WriteString(fmt.Sprintf("func (v %s) Raw() %s {\n", spec.Name, spec.Underlying))
	code.WriteString(fmt.Sprintf("\treturn %s(v)\n", spec.Underlying))
	code.WriteString("}\n\n")

	return code.String()
}

// generateBoolAccessors emits the single-bit fast path: no storage type, no
// interface conversion, straight to the bit primitives.
func (g *Generator) generateBoolAccessors(spec *analyzer.Spec, f *analyzer.Field) string {
	var code strings.Builder
	u := spec.Underlying

	code.WriteString(fmt.Sprintf("// %s\n", boolGetterDoc(f)))
	code.WriteString(fmt.Sprintf("func (v %s) %s() bool {\n", spec.Name, f.Name))
	code.WriteString(fmt.Sprintf("\treturn bitfield.Get(%s(v), %d)\n", u, f.Lsb))
	code.WriteString("}\n\n")

	code.WriteString(fmt.Sprintf("// %s returns a copy of v with bit %d set to x.\n", withName(f.Name), f.Lsb))
	code.WriteString(fmt.Sprintf("func (v %s) %s(x bool) %s {\n", spec.Name, withName(f.Name), spec.Name))
	code.WriteString(fmt.Sprintf("\treturn %s(bitfield.Set(%s(v), %d, x))\n", spec.Name, u, f.Lsb))
	code.WriteString("}\n\n")

	code.WriteString(fmt.Sprintf("// %s sets bit %d of v to x.\n", setName(f.Name), f.Lsb))
	code.WriteString(fmt.Sprintf("func (v *%s) %s(x bool) {\n", spec.Name, setName(f.Name)))
	code.WriteString(fmt.Sprintf("\t*v = v.%s(x)\n", withName(f.Name)))
	code.WriteString("}\n\n")

	return code.String()
}

func (g *Generator) generateRangedAccessors(spec *analyzer.Spec, f *analyzer.Field) string {
	var code strings.Builder
	u := spec.Underlying

	// Getter: extract, narrow to storage, convert to the interface type.
	// The narrowing conversion is skipped when the storage type already is
	// the underlying type.
	extract := fmt.Sprintf("bitfield.GetBits(%s(v), %d, %d)", u, f.Lsb, f.Msb)
	narrowed := extract
	if f.Storage != u {
		narrowed = fmt.Sprintf("%s(%s)", f.Storage, extract)
	}
	result := narrowed
	switch {
	case f.From != "":
		result = fmt.Sprintf("%s(%s)", f.From, narrowed)
	case f.Iface != f.Storage:
		result = fmt.Sprintf("%s(%s)", f.Iface, narrowed)
	}

	code.WriteString(fmt.Sprintf("// %s\n", rangedGetterDoc(f)))
	code.WriteString(fmt.Sprintf("func (v %s) %s() %s {\n", spec.Name, f.Name, f.Iface))
	code.WriteString(fmt.Sprintf("\treturn %s\n", result))
	code.WriteString("}\n\n")

	// With-builder: convert to storage, widen, splice.
	storage := "x"
	switch {
	case f.Into != "":
		storage = fmt.Sprintf("%s(x)", f.Into)
	case f.Iface != f.Storage:
		storage = fmt.Sprintf("%s(x)", f.Storage)
	}
	widened := storage
	if f.Storage != u {
		widened = fmt.Sprintf("%s(%s)", u, storage)
	}

	code.WriteString(fmt.Sprintf("// %s returns a copy of v with bits [%d, %d) set to x.\n",
		withName(f.Name), f.Lsb, f.Msb))
	code.WriteString(fmt.Sprintf("func (v %s) %s(x %s) %s {\n", spec.Name, withName(f.Name), f.Iface, spec.Name))
	code.WriteString(fmt.Sprintf("\treturn %s(bitfield.SetBits(%s(v), %d, %d, %s))\n",
		spec.Name, u, f.Lsb, f.Msb, widened))
	code.WriteString("}\n\n")

	// Setter, defined in terms of the with-builder so the two cannot
	// diverge.
	code.WriteString(fmt.Sprintf("// %s sets bits [%d, %d) of v to x.\n", setName(f.Name), f.Lsb, f.Msb))
	code.WriteString(fmt.Sprintf("func (v *%s) %s(x %s) {\n", spec.Name, setName(f.Name), f.Iface))
	code.WriteString(fmt.Sprintf("\t*v = v.%s(x)\n", withName(f.Name)))
	code.WriteString("}\n\n")

	return code.String()
}

func (g *Generator) generateString(spec *analyzer.Spec) string {
	var code strings.Builder

	verbs := make([]string, 0, len(spec.Fields)+1)
	args := make([]string, 0, len(spec.Fields)+1)
	verbs = append(verbs, "value: %#x")
	args = append(args, fmt.Sprintf("%s(v)", spec.Underlying))
	for _, f := range spec.Fields {
		verbs = append(verbs, fmt.Sprintf("%s: %s", f.Name, fieldVerb(f)))
		args = append(args, fmt.Sprintf("v.%s()", f.Name))
	}

	code.WriteString("// String renders v with its raw value followed by every declared field\n")
	code.WriteString("// in declaration order.\n")
	code.WriteString(fmt.Sprintf("func (v %s) String() string {\n", spec.Name))
	code.WriteString(fmt.Sprintf("\treturn fmt.Sprintf(%q,\n\t\t%s)\n",
		fmt.Sprintf("%s{%s}", spec.Name, strings.Join(verbs, ", ")),
		strings.Join(args, ", ")))
	code.WriteString("}\n\n")

	return code.String()
}

// generateInterface emits the capability interface for a shared field set,
// satisfied by the declaring type and every type that includes it.
func (g *Generator) generateInterface(spec *analyzer.Spec) string {
	var code strings.Builder

	code.WriteString(fmt.Sprintf("// %sFields is satisfied by every wrapper type that shares the %s\n", spec.Name, spec.Name))
	code.WriteString("// field set.\n")
	code.WriteString(fmt.Sprintf("type %sFields interface {\n", spec.Name))
	code.WriteString("\tfmt.Stringer\n")
	code.WriteString(fmt.Sprintf("\tRaw() %s\n", spec.Underlying))
	for _, f := range spec.Fields {
		code.WriteString(fmt.Sprintf("\t%s() %s\n", f.Name, fieldType(f)))
	}
	code.WriteString("}\n\n")

	code.WriteString("var (\n")
	code.WriteString(fmt.Sprintf("\t_ %sFields = %s(0)\n", spec.Name, spec.Name))
	for _, host := range spec.Hosts {
		code.WriteString(fmt.Sprintf("\t_ %sFields = %s(0)\n", spec.Name, host))
	}
	code.WriteString(")\n\n")

	return code.String()
}

func boolGetterDoc(f *analyzer.Field) string {
	doc := fmt.Sprintf("%s reports whether bit %d of v is set", f.Name, f.Lsb)
	if f.Doc != "" {
		doc += ": " + f.Doc
	}
	return doc + "."
}

func rangedGetterDoc(f *analyzer.Field) string {
	doc := fmt.Sprintf("%s returns bits [%d, %d) of v", f.Name, f.Lsb, f.Msb)
	if f.Doc != "" {
		doc += ": " + f.Doc
	}
	return doc + "."
}

func fieldVerb(f *analyzer.Field) string {
	switch {
	case f.Bool:
		return "%t"
	case f.Iface != f.Storage:
		return "%v"
	default:
		return "%#x"
	}
}

func fieldType(f *analyzer.Field) string {
	if f.Bool {
		return "bool"
	}
	return f.Iface
}

// withName and setName build the builder/setter method names. Accessor
// visibility follows the field name: an unexported field yields unexported
// withX/setX methods, mirroring getter visibility.
func withName(name string) string {
	return prefixed("with", "With", name)
}

func setName(name string) string {
	return prefixed("set", "Set", name)
}

func prefixed(lower, upper, name string) string {
	if name[0] >= 'a' && name[0] <= 'z' {
		return lower + strings.ToUpper(name[:1]) + name[1:]
	}
	return upper + name
}
