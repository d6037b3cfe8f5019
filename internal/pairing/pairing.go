// Package pairing joins amino-acid and nucleotide FASTA records by ID into
// reconciliation inputs.
package pairing

import (
	"fmt"
	"strings"

	"pr2codon/core/batch"
	"pr2codon/core/record"
	"pr2codon/internal/fasta"
)

// maxListed caps how many unmatched IDs an error message names.
const maxListed = 5

// DuplicateIDError reports an ID occurring twice in one input.
type DuplicateIDError struct {
	Side string // "amino-acid" or "nucleotide"
	ID   string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate %s record ID %q", e.Side, e.ID)
}

// UnpairedError reports IDs present in only one input.
type UnpairedError struct {
	OnlyAA []string
	OnlyNT []string
}

func (e *UnpairedError) Error() string {
	var parts []string
	if len(e.OnlyAA) > 0 {
		parts = append(parts, fmt.Sprintf("%d amino-acid record(s) without nucleotide partner: %s", len(e.OnlyAA), listIDs(e.OnlyAA)))
	}
	if len(e.OnlyNT) > 0 {
		parts = append(parts, fmt.Sprintf("%d nucleotide record(s) without amino-acid partner: %s", len(e.OnlyNT), listIDs(e.OnlyNT)))
	}
	return strings.Join(parts, "; ")
}

func listIDs(ids []string) string {
	if len(ids) <= maxListed {
		return strings.Join(ids, ", ")
	}
	return strings.Join(ids[:maxListed], ", ") + fmt.Sprintf(", … (+%d more)", len(ids)-maxListed)
}

// Pair matches aa and nt records by ID. The result follows the order of aa,
// or identity order when sorted is true.
func Pair(aa, nt []fasta.Record, sorted bool) ([]record.Sequence, error) {
	ntByID := make(map[string]fasta.Record, len(nt))
	for _, r := range nt {
		if _, dup := ntByID[r.ID]; dup {
			return nil, &DuplicateIDError{Side: "nucleotide", ID: r.ID}
		}
		ntByID[r.ID] = r
	}

	seen := make(map[string]struct{}, len(aa))
	out := make([]record.Sequence, 0, len(aa))
	var unpaired UnpairedError
	for _, a := range aa {
		if _, dup := seen[a.ID]; dup {
			return nil, &DuplicateIDError{Side: "amino-acid", ID: a.ID}
		}
		seen[a.ID] = struct{}{}
		n, ok := ntByID[a.ID]
		if !ok {
			unpaired.OnlyAA = append(unpaired.OnlyAA, a.ID)
			continue
		}
		out = append(out, record.Sequence{
			Identity:         a.ID,
			AminoAcidHeader:  a.Header,
			AminoAcidSeq:     a.Seq,
			NucleotideHeader: n.Header,
			NucleotideSeq:    n.Seq,
		})
	}
	for _, n := range nt {
		if _, ok := seen[n.ID]; !ok {
			unpaired.OnlyNT = append(unpaired.OnlyNT, n.ID)
		}
	}
	if len(unpaired.OnlyAA) > 0 || len(unpaired.OnlyNT) > 0 {
		return nil, &unpaired
	}
	if sorted {
		batch.SortByIdentity(out)
	}
	return out, nil
}
