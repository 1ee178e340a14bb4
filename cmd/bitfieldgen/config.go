package main

import (
	"errors"
	"os"

	"gopkg.in/yaml.v2"
)

// Config holds generator settings that rarely change per invocation, so they
// can live in a checked-in file instead of flags.
type Config struct {
	// Suffix is appended to the input file's base name to form the output
	// file name, e.g. registers.go → registers_bitfield.go.
	Suffix string `yaml:"suffix"`
	// Header replaces the first line of generated files when set.
	Header string `yaml:"header"`
}

var DefaultConfig = Config{
	Suffix: "_bitfield",
}

// LoadConfig reads a YAML config file. A missing file is not an error; the
// defaults are returned.
func LoadConfig(filename string) (*Config, error) {
	c := DefaultConfig
	b, err := os.ReadFile(filename)
	if os.IsNotExist(err) {
		return &c, nil
	}
	if err != nil {
		return nil, err
	}
	if err = yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate rejects settings under which generation would clobber its input:
// with an empty suffix every output name equals the input name.
func (c *Config) Validate() error {
	if c.Suffix == "" {
		return errors.New("suffix must not be empty")
	}
	return nil
}
