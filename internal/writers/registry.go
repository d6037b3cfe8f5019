// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"pr2codon/core/batch"
)

// Payload is everything a writer may render for one run.
type Payload struct {
	FileStem string
	Table    int
	Result   batch.Result
}

// WriterFunc renders p to w.
type WriterFunc func(w io.Writer, p Payload) error

// Writers maps format → handler. Formats register in init() blocks.
var Writers = map[string]WriterFunc{}

// Register installs fn for format (last wins).
func Register(format string, fn WriterFunc) { Writers[format] = fn }

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, p Payload) error {
	fn, ok := Writers[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, p)
}

// Formats lists registered format names, sorted.
func Formats() []string {
	out := make([]string, 0, len(Writers))
	for f := range Writers {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
