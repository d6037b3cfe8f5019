// internal/clibase/common.go
package clibase

import (
	"errors"
	"flag"
	"fmt"
	"strings"
)

// Output formats understood by the writers registry.
var Formats = []string{"text", "fasta", "json", "jsonl"}

// Common holds the CLI fields of pr2codon.
type Common struct {
	// Input
	AAFile     string
	NTFile     string
	Table      int
	TablesFile string

	// Performance
	Threads int

	// Output
	Output      string
	Sort        bool
	FileStem    string
	Archive     string
	MetricsFile string

	// Misc
	Config   string
	LogLevel string
	LogFile  string
	Quiet    bool
	Version  bool
	Examples bool
}

// Register wires all flags onto fs. Short aliases share the destination of
// their long form.
func Register(fs *flag.FlagSet, c *Common) {
	// Inputs
	fs.StringVar(&c.AAFile, "aa", "", "amino-acid FASTA (.gz ok, '-' = STDIN)")
	fs.StringVar(&c.NTFile, "nt", "", "nucleotide FASTA (.gz ok, '-' = STDIN)")
	fs.IntVar(&c.Table, "table", 1, "NCBI genetic code table id [1]")
	fs.StringVar(&c.TablesFile, "tables", "", "YAML genetic code asset replacing the built-in tables")

	// Performance
	fs.IntVar(&c.Threads, "threads", 1, "worker threads (0=all CPUs) [1]")
	fs.IntVar(&c.Threads, "t", 1, "alias of --threads")

	// Output
	fs.StringVar(&c.Output, "output", "text", "output: "+strings.Join(Formats, " | ")+" [text]")
	fs.StringVar(&c.Output, "o", "text", "alias of --output")
	fs.BoolVar(&c.Sort, "sort", false, "process records sorted by identity [false]")
	fs.StringVar(&c.FileStem, "file-stem", "", "name reported in diagnostics (default: --aa base name)")
	fs.StringVar(&c.Archive, "archive", "", "append the run to this SQLite archive")
	fs.StringVar(&c.MetricsFile, "metrics-file", "", "write Prometheus textfile metrics here")

	// Misc
	fs.StringVar(&c.Config, "config", "", "YAML config file; explicit flags win")
	fs.StringVar(&c.LogLevel, "log-level", "info", "log level: debug | info | warn | error [info]")
	fs.StringVar(&c.LogFile, "log-file", "", "also append logs to this file")
	fs.BoolVar(&c.Quiet, "quiet", false, "only log errors [false]")
	fs.BoolVar(&c.Quiet, "q", false, "alias of --quiet")
	fs.BoolVar(&c.Version, "v", false, "print version and exit [false]")
	fs.BoolVar(&c.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&c.Examples, "examples", false, "print usage examples and exit [false]")
}

// Validate applies CLI invariants after flags and config are merged.
func Validate(c *Common) error {
	switch {
	case c.AAFile == "" && c.NTFile == "":
		return errors.New("provide --aa and --nt")
	case c.AAFile == "":
		return errors.New("--aa is required")
	case c.NTFile == "":
		return errors.New("--nt is required")
	case c.AAFile == "-" && c.NTFile == "-":
		return errors.New("--aa and --nt cannot both read STDIN")
	}
	if c.Table <= 0 {
		return errors.New("--table must be > 0")
	}
	if c.Threads < 0 {
		return errors.New("--threads must be ≥ 0")
	}
	ok := false
	for _, f := range Formats {
		if c.Output == f {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("invalid --output %q", c.Output)
	}
	return nil
}
