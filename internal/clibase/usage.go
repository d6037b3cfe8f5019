// internal/clibase/usage.go
package clibase

import (
	"flag"
	"fmt"

	"pr2codon/internal/version"
)

// UsageCommon installs the Usage() handler on fs.
func UsageCommon(fs *flag.FlagSet, name string) {
	fs.Usage = func() {
		out := fs.Output()
		def := func(flagName string) string {
			if f := fs.Lookup(flagName); f != nil {
				return f.DefValue
			}
			return ""
		}

		fmt.Fprintf(out, "%s – recover source codons for aligned protein sequences\n\n", name)
		fmt.Fprintf(out, "Version: %s\n\n", version.Version)
		fmt.Fprintf(out, "Usage:\n  %s --aa PEP.faa --nt NUC.fna [options]\n  %s [options] PEP.faa NUC.fna\n", name, name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "      --aa file               Amino-acid FASTA, '-' for STDIN [*]")
		fmt.Fprintln(out, "      --nt file               Nucleotide FASTA, '-' for STDIN [*]")
		fmt.Fprintf(out, "      --table int             NCBI genetic code table id [%s]\n", def("table"))
		fmt.Fprintln(out, "      --tables file           YAML genetic code asset (replaces built-in tables)")

		fmt.Fprintln(out, "\nPerformance:")
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         text | fasta | json | jsonl [%s]\n", def("output"))
		fmt.Fprintf(out, "      --sort                  Process records sorted by identity [%s]\n", def("sort"))
		fmt.Fprintln(out, "      --file-stem string      Name reported in diagnostics")
		fmt.Fprintln(out, "      --archive file          Append this run to a SQLite archive")
		fmt.Fprintln(out, "      --metrics-file file     Write Prometheus textfile metrics")

		fmt.Fprintln(out, "\nMisc:")
		fmt.Fprintln(out, "      --config file           YAML config (explicit flags win)")
		fmt.Fprintf(out, "      --log-level string      debug | info | warn | error [%s]\n", def("log-level"))
		fmt.Fprintln(out, "      --log-file file         Also append logs to file")
		fmt.Fprintln(out, "  -q, --quiet                 Only log errors")
		fmt.Fprintln(out, "      --examples              Print usage examples")
		fmt.Fprintln(out, "  -v, --version               Print version and exit")
		fmt.Fprintln(out, "  -h, --help                  Show this help")

		fmt.Fprintln(out, "\nExit codes: 0 ok, 2 usage/config, 3 I/O, 4 record error, 130 interrupted")
	}
}
