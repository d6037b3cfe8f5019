package reconcile

import (
	"errors"
	"fmt"
)

var (
	ErrMismatch      = errors.New("codon mismatch")
	ErrUnknownSymbol = errors.New("symbol missing from genetic code table")
)

// Context window half-widths used in mismatch diagnostics.
const (
	AminoAcidWindow  = 10
	NucleotideWindow = 30
)

// MismatchError reports a position whose observed triplet cannot encode the
// amino acid, even after IUPAC rescue.
type MismatchError struct {
	Header            string
	Position          int // 0-based index into the amino-acid string
	Symbol            byte
	Observed          string
	AminoAcidContext  string
	NucleotideContext string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("MISMATCH ERROR: the amino acid %q failed to match with its source nucleotide triplet %q at aa site %d.\nAmino Acid: `%s`\nSource Nucleotide: `%s`",
		e.Symbol, e.Observed, e.Position, e.AminoAcidContext, e.NucleotideContext)
}

func (e *MismatchError) Is(target error) bool { return target == ErrMismatch }

// UnknownSymbolError means the table lacks an entry for a symbol. This is a
// configuration defect rather than bad record data.
type UnknownSymbolError struct {
	Table    int
	Symbol   byte
	Position int
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("genetic code table %d does not have the pep %q (aa site %d); perhaps the wrong table id was chosen",
		e.Table, e.Symbol, e.Position)
}

func (e *UnknownSymbolError) Is(target error) bool { return target == ErrUnknownSymbol }

func newMismatch(header, aa, nt string, pos int, observed string) *MismatchError {
	aaLo, aaHi := window(pos, AminoAcidWindow, len(aa))
	ci := proportionalIndex(pos, len(aa), len(nt))
	ntLo, ntHi := window(ci, NucleotideWindow, len(nt))
	return &MismatchError{
		Header:            header,
		Position:          pos,
		Symbol:            aa[pos],
		Observed:          observed,
		AminoAcidContext:  aa[aaLo:aaHi],
		NucleotideContext: nt[ntLo:ntHi],
	}
}

// proportionalIndex maps an amino-acid position onto the nucleotide string:
// round(pos / aaLen * ntLen), clamped to [0, ntLen].
func proportionalIndex(pos, aaLen, ntLen int) int {
	if aaLen == 0 {
		return 0
	}
	ci := (2*pos*ntLen + aaLen) / (2 * aaLen) // round half up, integers only
	if ci > ntLen {
		ci = ntLen
	}
	return ci
}

// window returns [center-half, center+half) clamped to [0, n].
func window(center, half, n int) (lo, hi int) {
	lo, hi = center-half, center+half
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	if lo > hi {
		lo = hi
	}
	return lo, hi
}
