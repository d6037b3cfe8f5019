// Package pretty renders human-readable mismatch diagnostics for terminals.
package pretty

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"pr2codon/core/reconcile"
)

// Options control the rendering.
type Options struct {
	// Color enables ANSI styling regardless of terminal detection.
	Color bool
	// Indent prefixes every line.
	Indent string
}

// DefaultOptions follows fatih/color's terminal detection.
func DefaultOptions() Options {
	return Options{Color: !color.NoColor, Indent: "  "}
}

type palette struct {
	label, focus, aa, nt *color.Color
}

func newPalette(on bool) palette {
	p := palette{
		label: color.New(color.Bold),
		focus: color.New(color.FgRed, color.Bold, color.Underline),
		aa:    color.New(color.FgYellow),
		nt:    color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.label, p.focus, p.aa, p.nt} {
		if on {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Mismatch writes a block showing where me failed: the offending residue is
// highlighted inside the amino-acid window, followed by the nucleotide window.
func Mismatch(w io.Writer, me *reconcile.MismatchError, opt Options) error {
	p := newPalette(opt.Color)
	ind := opt.Indent

	// The window starts AminoAcidWindow residues before the position, clamped at 0.
	off := me.Position
	if off > reconcile.AminoAcidWindow {
		off = reconcile.AminoAcidWindow
	}
	aa := me.AminoAcidContext
	var aaLine string
	if off < len(aa) {
		aaLine = p.aa.Sprint(aa[:off]) + p.focus.Sprint(aa[off:off+1]) + p.aa.Sprint(aa[off+1:])
	} else {
		aaLine = p.aa.Sprint(aa)
	}

	_, err := fmt.Fprintf(w, "%s%s aa site %d, %q cannot come from %q\n%s%s %s\n%s%s %s\n",
		ind, p.label.Sprint("mismatch:"), me.Position, me.Symbol, me.Observed,
		ind, p.label.Sprint("amino acid:       "), aaLine,
		ind, p.label.Sprint("source nucleotide:"), p.nt.Sprint(me.NucleotideContext))
	return err
}
