// internal/cli/options.go
package cli

import (
	"flag"

	"pr2codon/internal/clibase"
	"pr2codon/internal/cliutil"
	"pr2codon/internal/config"
)

// Options holds all CLI flags after config merging.
type Options struct {
	clibase.Common
}

// NewFlagSet returns a ContinueOnError FlagSet with the pr2codon usage text.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name)
	return fs
}

// ParseArgs registers and parses all flags, accepts the inputs as positionals
// (PEP then NUC), layers the optional --config file under the flags and
// validates the result.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	clibase.Register(fs, &opt.Common)
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	if opt.Examples {
		return opt, clibase.ErrPrintedAndExitOK
	}
	var err error
	if opt.AAFile, opt.NTFile, err = cliutil.InputPair(opt.AAFile, opt.NTFile, posArgs); err != nil {
		return opt, err
	}
	if opt.Config != "" {
		f, err := config.Load(opt.Config)
		if err != nil {
			return opt, err
		}
		applyConfig(fs, &opt.Common, f)
	}
	if err := clibase.Validate(&opt.Common); err != nil {
		return opt, err
	}
	return opt, nil
}

// applyConfig copies config values into c for every flag the user did not set.
func applyConfig(fs *flag.FlagSet, c *clibase.Common, f config.File) {
	set := map[string]bool{}
	fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	unset := func(names ...string) bool {
		for _, n := range names {
			if set[n] {
				return false
			}
		}
		return true
	}

	if f.Table != nil && unset("table") {
		c.Table = *f.Table
	}
	if f.TablesFile != "" && unset("tables") {
		c.TablesFile = f.TablesFile
	}
	if f.Output != "" && unset("output", "o") {
		c.Output = f.Output
	}
	if f.Threads != nil && unset("threads", "t") {
		c.Threads = *f.Threads
	}
	if f.Sort != nil && unset("sort") {
		c.Sort = *f.Sort
	}
	if f.Archive != "" && unset("archive") {
		c.Archive = f.Archive
	}
	if f.MetricsFile != "" && unset("metrics-file") {
		c.MetricsFile = f.MetricsFile
	}
	if f.LogLevel != "" && unset("log-level") {
		c.LogLevel = f.LogLevel
	}
	if f.LogFile != "" && unset("log-file") {
		c.LogFile = f.LogFile
	}
	if f.FileStem != "" && unset("file-stem") {
		c.FileStem = f.FileStem
	}
}
