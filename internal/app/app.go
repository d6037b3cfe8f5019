// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"pr2codon/internal/appcore"
	"pr2codon/internal/cli"
	"pr2codon/internal/clibase"
	"pr2codon/internal/cmdutil"
	"pr2codon/internal/pretty"
	"pr2codon/internal/version"
	"pr2codon/internal/writers"
)

const name = "pr2codon"

// RunContext parses argv, sets up logging and runs one reconciliation batch.
// It returns the process exit code.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	flushed := func(code int) int {
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return appcore.ExitOK
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return appcore.ExitIO
		}
		return code
	}

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}
	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flushed(appcore.ExitOK)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			clibase.PrintExamples(outw, name)
			return flushed(appcore.ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return appcore.ExitUsage
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flushed(appcore.ExitOK)
	}

	if opts.Quiet && opts.LogLevel == "debug" {
		cmdutil.Warnf(stderr, false, "--quiet has no effect with --log-level debug")
	}
	logger, closer, err := cmdutil.NewLogger(stderr, cmdutil.LogOptions{
		Level: opts.LogLevel, File: opts.LogFile, Quiet: opts.Quiet,
	})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitUsage
	}
	defer func() { _ = closer.Close() }()

	popt := pretty.DefaultOptions()
	if opts.Quiet {
		popt.Color = false
	}
	return appcore.Run(parent, stdout, stderr, logger, appcore.Options{
		AAFile:      opts.AAFile,
		NTFile:      opts.NTFile,
		Table:       opts.Table,
		TablesFile:  opts.TablesFile,
		Threads:     opts.Threads,
		Output:      opts.Output,
		Sort:        opts.Sort,
		FileStem:    opts.FileStem,
		Archive:     opts.Archive,
		MetricsFile: opts.MetricsFile,
		Pretty:      popt,
	})
}

// Run is RunContext with a background context.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
