// Package pr2codon is the library surface: IUPAC expansion, single-record
// reconciliation, and fail-fast batch reconciliation over a map of records.
package pr2codon

import (
	"context"
	"sort"

	"pr2codon/core/batch"
	"pr2codon/core/gcode"
	"pr2codon/core/iupac"
	"pr2codon/core/reconcile"
	"pr2codon/core/record"
)

// Side is one half of a pair: a FASTA-style header and its sequence.
type Side struct {
	Header string
	Seq    string
}

// Pair is the amino-acid side and the nucleotide side of one identity.
type Pair struct {
	AminoAcid  Side
	Nucleotide Side
}

// ExpandIUPAC returns every concrete triplet the given triplet may represent.
func ExpandIUPAC(triplet string) []string { return iupac.Expand(triplet) }

// ReconcileOne normalizes, validates and reconciles one pair under tableID
// using the built-in tables.
func ReconcileOne(tableID int, aaHeader, aa, ntHeader, nt string) (string, error) {
	return ReconcileOneWith(gcode.Builtin(), tableID, aaHeader, aa, ntHeader, nt)
}

// ReconcileOneWith is ReconcileOne with an explicit table provider.
func ReconcileOneWith(p gcode.Provider, tableID int, aaHeader, aa, ntHeader, nt string) (string, error) {
	tbl, err := p.Lookup(tableID)
	if err != nil {
		return "", err
	}
	n := record.Normalize(record.Sequence{
		Identity:         aaHeader,
		AminoAcidHeader:  aaHeader,
		AminoAcidSeq:     aa,
		NucleotideHeader: ntHeader,
		NucleotideSeq:    nt,
	})
	if err := record.Validate(n); err != nil {
		return "", err
	}
	res, err := reconcile.Reconcile(tbl, n)
	if err != nil {
		return "", err
	}
	return res.Codons, nil
}

// SortedRecords turns a map input into records ordered by identity.
func SortedRecords(m map[string]Pair) []record.Sequence {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	out := make([]record.Sequence, 0, len(ids))
	for _, id := range ids {
		p := m[id]
		out = append(out, record.Sequence{
			Identity:         id,
			AminoAcidHeader:  p.AminoAcid.Header,
			AminoAcidSeq:     p.AminoAcid.Seq,
			NucleotideHeader: p.Nucleotide.Header,
			NucleotideSeq:    p.Nucleotide.Seq,
		})
	}
	return out
}

// ReconcileBatch reconciles every pair in identity order and returns the
// alternating identity/codon lines of all records before the first error,
// together with that error.
func ReconcileBatch(tableID int, pairs map[string]Pair) (string, error) {
	res := batch.Run(context.Background(), gcode.Builtin(), tableID, SortedRecords(pairs), batch.Options{})
	return res.Text(), res.Err
}
