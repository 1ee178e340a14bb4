package parser

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
)

// Wrapper represents a parsed bitfield wrapper declaration: a defined type
// over an unsigned integer carrying a @bitfield annotation.
type Wrapper struct {
	Name       string
	Underlying string // the declared underlying type, e.g. "uint32"
	Anno       *TypeAnnotation
	Fields     []*FieldSpec
}

// ParseFile parses a Go source file and extracts types with @bitfield
// annotations.
func ParseFile(filename string) ([]*Wrapper, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, nil, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	return extractWrappers(file)
}

// ParseSource is ParseFile over in-memory source, used by tests and by the
// generator when input does not come from disk.
func ParseSource(filename, src string) ([]*Wrapper, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	return extractWrappers(file)
}

// PackageName returns the package clause of a Go source file.
func PackageName(filename string) (string, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, filename, nil, parser.PackageClauseOnly)
	if err != nil {
		return "", fmt.Errorf("parse error: %w", err)
	}
	return file.Name.Name, nil
}

func extractWrappers(file *ast.File) ([]*Wrapper, error) {
	var wrappers []*Wrapper

	for _, decl := range file.Decls {
		genDecl, ok := decl.(*ast.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec := spec.(*ast.TypeSpec)

			doc := typeSpec.Doc
			if doc == nil {
				doc = genDecl.Doc
			}

			lines := commentLines(doc)
			anno, found, err := FindAnnotation(lines)
			if err != nil {
				return nil, fmt.Errorf("type %s: %w", typeSpec.Name.Name, err)
			}
			if !found {
				continue // Not a bitfield, skip this type
			}

			ident, ok := typeSpec.Type.(*ast.Ident)
			if !ok {
				return nil, fmt.Errorf("type %s: @bitfield requires a defined unsigned integer type", typeSpec.Name.Name)
			}

			fields, err := extractFields(lines)
			if err != nil {
				return nil, fmt.Errorf("type %s: %w", typeSpec.Name.Name, err)
			}

			wrappers = append(wrappers, &Wrapper{
				Name:       typeSpec.Name.Name,
				Underlying: ident.Name,
				Anno:       anno,
				Fields:     fields,
			})
		}
	}

	return wrappers, nil
}

func commentLines(doc *ast.CommentGroup) []string {
	if doc == nil {
		return nil
	}

	var lines []string
	for _, comment := range doc.List {
		lines = append(lines, CleanComment(comment.Text))
	}
	return lines
}

func extractFields(lines []string) ([]*FieldSpec, error) {
	var fields []*FieldSpec

	for _, line := range lines {
		if !hasFieldPrefix(line) {
			continue
		}
		f, err := ParseField(line)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}

	return fields, nil
}

func hasFieldPrefix(line string) bool {
	return len(line) >= 6 && line[:6] == "@field"
}
