// internal/clibase/examples.go
package clibase

import (
	"errors"
	"fmt"
	"io"
)

// ErrPrintedAndExitOK is returned by ParseArgs when the caller requested examples.
// Apps should catch this and exit 0 after printing examples.
var ErrPrintedAndExitOK = errors.New("examples requested")

// PrintExamples prints a short quickstart followed by a pointer to --help.
func PrintExamples(out io.Writer, name string) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s quickstart\n\n", name)
	_, _ = fmt.Fprintf(out, "  # standard code, identity/codon lines\n  %s --aa genes.faa --nt genes.fna\n\n", name)
	_, _ = fmt.Fprintf(out, "  # vertebrate mitochondrial code, JSON lines, 8 workers\n  %s --aa mt.faa.gz --nt mt.fna.gz --table 2 --output jsonl --threads 8\n\n", name)
	_, _ = fmt.Fprintf(out, "  # keep a run history and export metrics\n  %s --aa a.faa --nt a.fna --archive runs.db --metrics-file pr2codon.prom\n", name)
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}
