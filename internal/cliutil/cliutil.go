// internal/cliutil/cliutil.go
package cliutil

import (
	"errors"
	"flag"
	"fmt"
	"strings"
)

// BoolFlags returns names of flags that don't require a value.
func BoolFlags(fs *flag.FlagSet) map[string]bool {
	m := map[string]bool{}
	fs.VisitAll(func(f *flag.Flag) {
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			m[f.Name] = true
		}
	})
	return m
}

// SplitFlagsAndPositionals separates flag-like args from positionals so flags
// may follow the input files. '-' is a positional (STDIN) and '--' ends flags.
func SplitFlagsAndPositionals(fs *flag.FlagSet, argv []string) (flagArgs, posArgs []string) {
	boolFlags := BoolFlags(fs)
	for i := 0; i < len(argv); i++ {
		arg := argv[i]
		if arg == "--" {
			posArgs = append(posArgs, argv[i+1:]...)
			break
		}
		if arg == "-" {
			posArgs = append(posArgs, arg)
			continue
		}
		if strings.HasPrefix(arg, "-") {
			flagArgs = append(flagArgs, arg)
			if strings.Contains(arg, "=") {
				continue
			}
			name := strings.TrimLeft(arg, "-")
			if !boolFlags[name] && i+1 < len(argv) {
				flagArgs = append(flagArgs, argv[i+1])
				i++
			}
			continue
		}
		posArgs = append(posArgs, arg)
	}
	return
}

// InputPair resolves the amino-acid and nucleotide paths from --aa/--nt and
// up to two positionals (amino-acid first). A side given both ways is an error.
func InputPair(aa, nt string, pos []string) (string, string, error) {
	if len(pos) > 2 {
		return aa, nt, fmt.Errorf("expected at most 2 input files, got %d", len(pos))
	}
	for _, p := range pos {
		switch {
		case aa == "":
			aa = p
		case nt == "":
			nt = p
		default:
			return aa, nt, errors.New("positional inputs conflict with --aa/--nt")
		}
	}
	return aa, nt, nil
}
