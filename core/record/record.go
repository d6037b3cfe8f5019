// Package record holds the paired amino-acid / nucleotide input of one
// reconciliation, its normalization, and the structural checks that must pass
// before codons are reconstructed.
package record

import (
	"strings"
	"unicode"
)

// PeptideAlphabet is what survives normalization; everything else becomes X.
const PeptideAlphabet = "ALWQYECDFGHIMKPRSVNT*-BJZX"

const (
	Gap     = '-'
	Unknown = 'X'
)

// Sequence is one caller-supplied entry.
type Sequence struct {
	Identity         string
	AminoAcidHeader  string
	AminoAcidSeq     string
	NucleotideHeader string
	NucleotideSeq    string
}

// Normalized is a Sequence after Normalize. AminoAcidSeq keeps its gaps;
// NucleotideSeq has alignment padding removed.
type Normalized struct {
	Identity         string
	AminoAcidHeader  string
	AminoAcidSeq     string
	NucleotideHeader string
	NucleotideSeq    string
}

var peptide [256]bool

func init() {
	for i := 0; i < len(PeptideAlphabet); i++ {
		peptide[PeptideAlphabet[i]] = true
	}
}

// Normalize cleans both sides of s. It never fails.
func Normalize(s Sequence) Normalized {
	return Normalized{
		Identity:         s.Identity,
		AminoAcidHeader:  s.AminoAcidHeader,
		AminoAcidSeq:     NormalizeProtein(s.AminoAcidSeq),
		NucleotideHeader: s.NucleotideHeader,
		NucleotideSeq:    StripPadding(s.NucleotideSeq),
	}
}

// NormalizeProtein trims surrounding whitespace, upper-cases, and maps every
// character outside PeptideAlphabet to X, one output byte per input character.
func NormalizeProtein(aa string) string {
	aa = strings.TrimSpace(aa)
	var b strings.Builder
	b.Grow(len(aa))
	for _, r := range aa {
		r = unicode.ToUpper(r)
		if r < 256 && peptide[r] {
			b.WriteByte(byte(r))
			continue
		}
		b.WriteByte(Unknown)
	}
	return b.String()
}

// StripPadding drops '-' and '.' from a nucleotide string. Case is untouched.
func StripPadding(nt string) string {
	if !strings.ContainsAny(nt, "-.") {
		return nt
	}
	var b strings.Builder
	b.Grow(len(nt))
	for i := 0; i < len(nt); i++ {
		if c := nt[i]; c != '-' && c != '.' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Residues counts the amino-acid characters that consume a codon slot in the
// length check: everything except gaps.
func Residues(aa string) int {
	return len(aa) - strings.Count(aa, string(Gap))
}
