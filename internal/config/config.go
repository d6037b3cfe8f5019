// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the optional YAML run configuration. Pointer fields distinguish
// "unset" from zero values so flags can be layered on top.
type File struct {
	Table       *int   `yaml:"table"`
	TablesFile  string `yaml:"tables_file"`
	Output      string `yaml:"output"`
	Threads     *int   `yaml:"threads"`
	Sort        *bool  `yaml:"sort"`
	Archive     string `yaml:"archive"`
	MetricsFile string `yaml:"metrics_file"`
	LogLevel    string `yaml:"log_level"`
	LogFile     string `yaml:"log_file"`
	FileStem    string `yaml:"file_stem"`
}

// Load reads and strictly decodes a config file. Unknown keys are errors.
func Load(path string) (File, error) {
	var f File
	fh, err := os.Open(path)
	if err != nil {
		return f, fmt.Errorf("config: %w", err)
	}
	defer func() { _ = fh.Close() }()

	dec := yaml.NewDecoder(fh)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return File{}, nil
		}
		return f, fmt.Errorf("config %s: %w", path, err)
	}
	if f.Table != nil && *f.Table <= 0 {
		return f, fmt.Errorf("config %s: table must be > 0", path)
	}
	if f.Threads != nil && *f.Threads < 0 {
		return f, fmt.Errorf("config %s: threads must be >= 0", path)
	}
	return f, nil
}
