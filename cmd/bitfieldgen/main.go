// Command bitfieldgen generates bit range accessors for Go types annotated
// with @bitfield and @field doc comments. It is meant to be run through
// go:generate:
//
//	//go:generate go run github.com/cimbul/tartan-bitfield/cmd/bitfieldgen registers.go
//
// For every input file containing annotated types it writes a sibling file
// (registers.go → registers_bitfield.go by default) with getters, setters,
// with-builders, String methods, and shared field set interfaces.
//
// Malformed schemas fail the run with a non-zero exit before any file is
// written.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cenkalti/log"

	"github.com/cimbul/tartan-bitfield/internal/analyzer"
	"github.com/cimbul/tartan-bitfield/internal/codegen"
	"github.com/cimbul/tartan-bitfield/internal/parser"
)

const defaultConfig = ".bitfieldgen.yml"

var (
	config = flag.String("c", defaultConfig, "config file")
	suffix = flag.String("suffix", "", "output file suffix (overrides config)")
	debug  = flag.Bool("d", false, "enable debug log")
)

var logger = log.NewLogger("bitfieldgen")

func main() {
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: bitfieldgen [flags] <file.go | dir>...")
		os.Exit(1)
	}

	if *debug {
		logger.SetLevel(log.DEBUG)
	}

	c, err := LoadConfig(*config)
	if err != nil {
		logger.Fatal(err)
	}
	if *suffix != "" {
		c.Suffix = *suffix
	}
	if err := c.Validate(); err != nil {
		logger.Fatal(err)
	}

	for _, arg := range args {
		if err := run(arg, c); err != nil {
			logger.Fatal(err)
		}
	}
}

// run generates accessors for one file or directory argument. All files of a
// directory are analyzed together so include= can reference wrappers across
// files of the same package, but output is written per input file.
func run(arg string, c *Config) error {
	files, err := inputFiles(arg, c.Suffix)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("%s: no Go source files", arg)
	}

	wrappersByFile := make(map[string][]*parser.Wrapper, len(files))
	var all []*parser.Wrapper
	for _, file := range files {
		wrappers, err := parser.ParseFile(file)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}
		if len(wrappers) == 0 {
			logger.Debugf("%s: no @bitfield types", file)
			continue
		}
		wrappersByFile[file] = wrappers
		all = append(all, wrappers...)
	}
	if len(all) == 0 {
		return fmt.Errorf("%s: no @bitfield types found", arg)
	}

	specs, err := analyzer.Analyze(all)
	if err != nil {
		return err
	}
	byName := make(map[string]*analyzer.Spec, len(specs))
	for _, spec := range specs {
		byName[spec.Name] = spec
	}

	for _, file := range files {
		wrappers := wrappersByFile[file]
		if len(wrappers) == 0 {
			continue
		}

		pkg, err := parser.PackageName(file)
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}

		fileSpecs := make([]*analyzer.Spec, 0, len(wrappers))
		for _, w := range wrappers {
			fileSpecs = append(fileSpecs, byName[w.Name])
		}

		src, err := codegen.NewGenerator(pkg, c.Header, fileSpecs).File()
		if err != nil {
			return fmt.Errorf("%s: %w", file, err)
		}

		out := outputName(file, c.Suffix)
		if err := os.WriteFile(out, src, 0o644); err != nil {
			return err
		}
		logger.Infof("wrote %s (%d types)", out, len(fileSpecs))
	}

	return nil
}

// inputFiles expands a file or directory argument into Go source files,
// skipping tests and previously generated output.
func inputFiles(arg, suffix string) ([]string, error) {
	info, err := os.Stat(arg)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{arg}, nil
	}

	entries, err := os.ReadDir(arg)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".go") {
			continue
		}
		if strings.HasSuffix(name, "_test.go") || strings.HasSuffix(name, suffix+".go") {
			continue
		}
		files = append(files, filepath.Join(arg, name))
	}
	return files, nil
}

func outputName(file, suffix string) string {
	base := strings.TrimSuffix(file, ".go")
	return base + suffix + ".go"
}
