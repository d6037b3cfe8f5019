// Package batch drives reconciliation over an ordered list of records with
// fail-fast semantics: the first validation or reconciliation error ends the
// batch, and only the records before it are emitted.
package batch

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"pr2codon/core/gcode"
	"pr2codon/core/reconcile"
	"pr2codon/core/record"
)

// Entry is one successfully reconciled record.
type Entry struct {
	Identity string
	Codons   string
	Stats    reconcile.Stats
}

// RecordError ties a terminal error to the record that raised it.
type RecordError struct {
	Index    int
	Identity string
	Header   string
	Err      error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record %d (%s): %v", e.Index, e.Identity, e.Err)
}

func (e *RecordError) Unwrap() error { return e.Err }

// Result holds the entries emitted before the first error, in input order,
// plus that error (nil when every record succeeded).
type Result struct {
	Entries []Entry
	Err     error
}

// Stats sums the per-record stats of all entries.
func (r Result) Stats() reconcile.Stats {
	var st reconcile.Stats
	for _, e := range r.Entries {
		st.Add(e.Stats)
	}
	return st
}

// WriteText serializes entries as alternating identity and codon lines, each
// newline-terminated.
func (r Result) WriteText(w io.Writer) error {
	for _, e := range r.Entries {
		if _, err := io.WriteString(w, e.Identity+"\n"+e.Codons+"\n"); err != nil {
			return err
		}
	}
	return nil
}

// Text is WriteText into a string.
func (r Result) Text() string {
	var b strings.Builder
	_ = r.WriteText(&b)
	return b.String()
}

// Observer receives per-record outcomes in input order. Failed is called at
// most once per Run.
type Observer interface {
	Reconciled(e Entry)
	Failed(err *RecordError)
}

// Options tunes Run.
type Options struct {
	// Workers > 1 reconciles records concurrently. Output and the reported
	// error are identical to a sequential run.
	Workers  int
	Observer Observer
}

// Run reconciles recs in order against table tableID from p. An unknown
// table fails the whole batch before any record is touched.
func Run(ctx context.Context, p gcode.Provider, tableID int, recs []record.Sequence, opt Options) Result {
	tbl, err := p.Lookup(tableID)
	if err != nil {
		return Result{Err: err}
	}
	var res Result
	if opt.Workers > 1 && len(recs) > 1 {
		res = runParallel(ctx, tbl, recs, opt.Workers)
	} else {
		res = runSerial(ctx, tbl, recs)
	}
	if opt.Observer != nil {
		for _, e := range res.Entries {
			opt.Observer.Reconciled(e)
		}
		if re, ok := res.Err.(*RecordError); ok {
			opt.Observer.Failed(re)
		}
	}
	return res
}

func runSerial(ctx context.Context, tbl *gcode.Table, recs []record.Sequence) Result {
	out := Result{Entries: make([]Entry, 0, len(recs))}
	for i, s := range recs {
		if err := ctx.Err(); err != nil {
			out.Err = err
			return out
		}
		e, err := one(tbl, i, s)
		if err != nil {
			out.Err = err
			return out
		}
		out.Entries = append(out.Entries, e)
	}
	return out
}

// one normalizes, validates and reconciles a single record.
func one(tbl *gcode.Table, idx int, s record.Sequence) (Entry, error) {
	n := record.Normalize(s)
	if err := record.Validate(n); err != nil {
		return Entry{}, &RecordError{Index: idx, Identity: s.Identity, Header: s.AminoAcidHeader, Err: err}
	}
	r, err := reconcile.Reconcile(tbl, n)
	if err != nil {
		return Entry{}, &RecordError{Index: idx, Identity: s.Identity, Header: s.AminoAcidHeader, Err: err}
	}
	return Entry{Identity: s.Identity, Codons: r.Codons, Stats: r.Stats}, nil
}

// SortByIdentity orders recs by Identity in place (stable), giving unordered
// inputs a reproducible fail-fast point.
func SortByIdentity(recs []record.Sequence) {
	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Identity < recs[j].Identity })
}
