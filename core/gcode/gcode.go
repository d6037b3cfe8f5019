// Package gcode holds genetic-code tables: for each NCBI translation table id,
// the ordered list of codons that encode every amino-acid symbol.
//
// The codon assignments are reference data shipped as tables.yaml. Every table
// a Registry hands out is complete over Alphabet: symbols the asset omits are
// present with an empty codon list, so lookups on a valid symbol never fail.
package gcode

import (
	"errors"
	"fmt"
	"sort"
)

// Alphabet is every amino-acid symbol a table must answer for: the 20
// standard residues, stop, unknown, and the B/J/Z ambiguity letters.
const Alphabet = "ACDEFGHIKLMNPQRSTVWY*XBJZ"

// StandardID is the id of the standard code; every registry must carry it.
const StandardID = 1

var (
	// ErrUnknownTable is returned by Lookup when the id has no registered table.
	ErrUnknownTable = errors.New("unknown genetic code table")
	// ErrInvalidAsset reports a malformed table asset.
	ErrInvalidAsset = errors.New("invalid genetic code asset")
)

// Provider is the read-only capability the reconciler depends on.
type Provider interface {
	Lookup(id int) (*Table, error)
}

// Table is one genetic-code variant.
type Table struct {
	ID     int
	Name   string
	codons map[byte][]string
}

// NewTable builds a table from symbol → codons. Symbols from Alphabet that are
// missing get an empty list. Codons must be three upper-case A/C/G/T bytes;
// symbols outside Alphabet are rejected.
func NewTable(id int, name string, codons map[byte][]string) (*Table, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: table id %d must be positive", ErrInvalidAsset, id)
	}
	t := &Table{ID: id, Name: name, codons: make(map[byte][]string, len(Alphabet))}
	for sym, list := range codons {
		if !inAlphabet(sym) {
			return nil, fmt.Errorf("%w: table %d: symbol %q outside alphabet", ErrInvalidAsset, id, sym)
		}
		for _, c := range list {
			if !isCodon(c) {
				return nil, fmt.Errorf("%w: table %d: symbol %q: bad codon %q", ErrInvalidAsset, id, sym, c)
			}
		}
		t.codons[sym] = append([]string(nil), list...)
	}
	for i := 0; i < len(Alphabet); i++ {
		if _, ok := t.codons[Alphabet[i]]; !ok {
			t.codons[Alphabet[i]] = []string{}
		}
	}
	return t, nil
}

// Codons returns the ordered codon list for sym. ok is false when sym is not
// a key of the table. The returned slice is shared; do not modify it.
func (t *Table) Codons(sym byte) (list []string, ok bool) {
	list, ok = t.codons[sym]
	return list, ok
}

// Symbols returns the table keys in Alphabet order.
func (t *Table) Symbols() []byte {
	out := make([]byte, 0, len(t.codons))
	for i := 0; i < len(Alphabet); i++ {
		if _, ok := t.codons[Alphabet[i]]; ok {
			out = append(out, Alphabet[i])
		}
	}
	return out
}

// Registry is an immutable id → Table index.
type Registry struct {
	tables map[int]*Table
}

// NewRegistry indexes tables by id. Duplicate ids and a missing standard
// table are rejected.
func NewRegistry(tables ...*Table) (*Registry, error) {
	r := &Registry{tables: make(map[int]*Table, len(tables))}
	for _, t := range tables {
		if _, dup := r.tables[t.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate table id %d", ErrInvalidAsset, t.ID)
		}
		r.tables[t.ID] = t
	}
	if _, ok := r.tables[StandardID]; !ok {
		return nil, fmt.Errorf("%w: standard table (id %d) missing", ErrInvalidAsset, StandardID)
	}
	return r, nil
}

// Lookup returns the table for id or an error wrapping ErrUnknownTable.
func (r *Registry) Lookup(id int) (*Table, error) {
	t, ok := r.tables[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d (known: %v)", ErrUnknownTable, id, r.IDs())
	}
	return t, nil
}

// CodonsFor is Lookup followed by Table.Codons. A symbol missing from the
// table yields ok=false with a nil error.
func (r *Registry) CodonsFor(id int, sym byte) ([]string, bool, error) {
	t, err := r.Lookup(id)
	if err != nil {
		return nil, false, err
	}
	list, ok := t.Codons(sym)
	return list, ok, nil
}

// IDs lists registered table ids in ascending order.
func (r *Registry) IDs() []int {
	ids := make([]int, 0, len(r.tables))
	for id := range r.tables {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

func inAlphabet(sym byte) bool {
	for i := 0; i < len(Alphabet); i++ {
		if Alphabet[i] == sym {
			return true
		}
	}
	return false
}

func isCodon(c string) bool {
	if len(c) != 3 {
		return false
	}
	for i := 0; i < 3; i++ {
		switch c[i] {
		case 'A', 'C', 'G', 'T':
		default:
			return false
		}
	}
	return true
}
