package reconcile

import (
	"fmt"
	"strings"

	"pr2codon/core/gcode"
	"pr2codon/core/iupac"
	"pr2codon/core/record"
)

// Stats counts how each amino-acid position was emitted.
type Stats struct {
	Exact        int // observed triplet is a table codon
	Rescued      int // resolved through IUPAC expansion
	Bypassed     int // X symbol or N-containing triplet, kept verbatim
	Gaps         int
	Placeholders int
}

// Add accumulates o into s.
func (s *Stats) Add(o Stats) {
	s.Exact += o.Exact
	s.Rescued += o.Rescued
	s.Bypassed += o.Bypassed
	s.Gaps += o.Gaps
	s.Placeholders += o.Placeholders
}

// Result is a reconstructed codon string.
type Result struct {
	Codons string
	Stats  Stats
}

// Run looks tableID up in p and reconciles n against it.
func Run(p gcode.Provider, tableID int, n record.Normalized) (Result, error) {
	t, err := p.Lookup(tableID)
	if err != nil {
		return Result{}, err
	}
	return Reconcile(t, n)
}

// Reconcile walks n.AminoAcidSeq position by position:
//
//	'-'        emits "---", consumes nothing
//	digit d    emits d dots, consumes nothing
//	otherwise  consumes the next nucleotide triplet and emits it (X symbol,
//	           N in the triplet, or exact table match), its IUPAC rescue, or
//	           fails with *MismatchError
//
// The nucleotide cursor only advances on consumed triplets. Nucleotides left
// over after the walk are ignored.
func Reconcile(t *gcode.Table, n record.Normalized) (Result, error) {
	aa, nt := n.AminoAcidSeq, n.NucleotideSeq

	var (
		b      strings.Builder
		st     Stats
		cursor int
	)
	b.Grow(len(aa) * 3)

	for i := 0; i < len(aa); i++ {
		c := aa[i]
		switch {
		case c == record.Gap:
			b.WriteString("---")
			st.Gaps++
			continue
		case c >= '0' && c <= '9':
			b.WriteString(strings.Repeat(".", int(c-'0')))
			st.Placeholders++
			continue
		}

		candidates, ok := t.Codons(c)
		if !ok {
			return Result{}, &UnknownSymbolError{Table: t.ID, Symbol: c, Position: i}
		}
		if cursor+3 > len(nt) {
			return Result{}, &record.ValidationError{
				Kind:   record.LengthMismatch,
				Detail: fmt.Sprintf("(AA -> %s) ran out of nucleotides at aa site %d (NT length %d)", n.AminoAcidHeader, i, len(nt)),
			}
		}
		observed := nt[cursor : cursor+3]
		cursor += 3

		if c == record.Unknown || strings.IndexByte(observed, 'N') >= 0 {
			b.WriteString(observed)
			st.Bypassed++
			continue
		}
		if contains(candidates, observed) {
			b.WriteString(observed)
			st.Exact++
			continue
		}
		if codon, ok := iupac.Resolve(observed, candidates); ok {
			b.WriteString(codon)
			st.Rescued++
			continue
		}
		return Result{}, newMismatch(n.AminoAcidHeader, aa, nt, i, observed)
	}
	return Result{Codons: b.String(), Stats: st}, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
