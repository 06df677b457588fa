// Package config loads the optional project manifest the CLI accepts
// instead of source files listed directly on the command line: an ordered
// source list, an output path, and a target name.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// Manifest describes one compilation unit: the ordered list of source
// files to parse into a single shared symbol table, the JS file to write,
// and an optional named target. Target is parsed and kept on the Manifest
// only: the CLI does not read it, and it changes nothing in the generator.
type Manifest struct {
	Sources []string `yaml:"sources"`
	Output  string   `yaml:"output"`
	Target  string   `yaml:"target"`
}

// Load reads and parses a manifest from path.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	if len(m.Sources) == 0 {
		return nil, fmt.Errorf("manifest %s lists no sources", path)
	}
	if m.Output == "" {
		return nil, fmt.Errorf("manifest %s has no output", path)
	}
	return &m, nil
}
