package gcode

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var builtinAsset []byte

// assetFile mirrors tables.yaml.
type assetFile struct {
	Tables []assetTable `yaml:"tables"`
}

type assetTable struct {
	ID     int                 `yaml:"id"`
	Name   string              `yaml:"name"`
	Codons map[string][]string `yaml:"codons"`
}

// Parse decodes a table asset and builds a Registry from it.
func Parse(r io.Reader) (*Registry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f assetFile
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAsset, err)
	}
	if len(f.Tables) == 0 {
		return nil, fmt.Errorf("%w: no tables", ErrInvalidAsset)
	}
	tables := make([]*Table, 0, len(f.Tables))
	for _, at := range f.Tables {
		codons := make(map[byte][]string, len(at.Codons))
		for sym, list := range at.Codons {
			if len(sym) != 1 {
				return nil, fmt.Errorf("%w: table %d: symbol %q must be one character", ErrInvalidAsset, at.ID, sym)
			}
			codons[sym[0]] = list
		}
		t, err := NewTable(at.ID, at.Name, codons)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return NewRegistry(tables...)
}

// LoadFile reads a table asset from path.
func LoadFile(path string) (*Registry, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()
	reg, err := Parse(fh)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

var (
	builtinOnce sync.Once
	builtin     *Registry
)

// Builtin returns the registry decoded from the embedded asset. The asset is
// part of the binary, so a decode failure is a build defect and panics.
func Builtin() *Registry {
	builtinOnce.Do(func() {
		reg, err := Parse(bytes.NewReader(builtinAsset))
		if err != nil {
			panic(fmt.Sprintf("gcode: embedded tables.yaml: %v", err))
		}
		builtin = reg
	})
	return builtin
}
