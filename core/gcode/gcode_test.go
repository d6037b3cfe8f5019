package gcode

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestBuiltin_IDs(t *testing.T) {
	want := []int{1, 2, 3, 4, 5, 6, 9, 10, 11, 12, 13, 14, 15, 16, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33}
	if got := Builtin().IDs(); !reflect.DeepEqual(got, want) {
		t.Fatalf("builtin ids = %v, want %v", got, want)
	}
}

// Every table answers for every alphabet symbol, possibly with an empty list.
func TestBuiltin_Complete(t *testing.T) {
	reg := Builtin()
	for _, id := range reg.IDs() {
		tbl, err := reg.Lookup(id)
		if err != nil {
			t.Fatalf("lookup %d: %v", id, err)
		}
		if got := string(tbl.Symbols()); got != Alphabet {
			t.Fatalf("table %d symbols = %q, want %q", id, got, Alphabet)
		}
		// The 20 residues plus stop cover all 64 codons exactly once.
		seen := map[string]byte{}
		for _, sym := range []byte("ACDEFGHIKLMNPQRSTVWY*") {
			list, _ := tbl.Codons(sym)
			for _, c := range list {
				if prev, dup := seen[c]; dup {
					t.Fatalf("table %d: codon %s assigned to %c and %c", id, c, prev, sym)
				}
				seen[c] = sym
			}
		}
		if len(seen) != 64 {
			t.Fatalf("table %d covers %d codons, want 64", id, len(seen))
		}
	}
}

func TestBuiltin_StandardOrder(t *testing.T) {
	list, ok, err := Builtin().CodonsFor(StandardID, 'L')
	if err != nil || !ok {
		t.Fatalf("CodonsFor(1, L): ok=%v err=%v", ok, err)
	}
	want := []string{"TTA", "TTG", "CTT", "CTC", "CTA", "CTG"}
	if !reflect.DeepEqual(list, want) {
		t.Fatalf("standard L = %v, want %v", list, want)
	}
	if x, _ := Builtin().tables[1].Codons('X'); len(x) != 0 {
		t.Fatalf("X must have no codons, got %v", x)
	}
}

// Tables whose asset entry omits a symbol still answer with an empty list.
func TestBuiltin_FilledSymbols(t *testing.T) {
	for _, id := range []int{27, 28, 31} {
		list, ok, err := Builtin().CodonsFor(id, '*')
		if err != nil || !ok || len(list) != 0 {
			t.Fatalf("table %d '*': list=%v ok=%v err=%v", id, list, ok, err)
		}
	}
	if _, ok, _ := Builtin().CodonsFor(2, 'X'); !ok {
		t.Fatalf("table 2 must carry X")
	}
}

func TestLookup_Unknown(t *testing.T) {
	_, err := Builtin().Lookup(7)
	if !errors.Is(err, ErrUnknownTable) {
		t.Fatalf("want ErrUnknownTable, got %v", err)
	}
	if _, _, err := Builtin().CodonsFor(99, 'A'); !errors.Is(err, ErrUnknownTable) {
		t.Fatalf("CodonsFor: want ErrUnknownTable, got %v", err)
	}
}

func TestCodonsFor_SymbolOutsideTable(t *testing.T) {
	_, ok, err := Builtin().CodonsFor(1, 'O')
	if err != nil || ok {
		t.Fatalf("symbol O: ok=%v err=%v, want false,nil", ok, err)
	}
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"bad codon":     "tables:\n  - id: 1\n    codons:\n      \"A\": [GCX]\n",
		"long symbol":   "tables:\n  - id: 1\n    codons:\n      \"AL\": [GCT]\n",
		"bad symbol":    "tables:\n  - id: 1\n    codons:\n      \"O\": [GCT]\n",
		"no standard":   "tables:\n  - id: 2\n    codons:\n      \"A\": [GCT]\n",
		"duplicate id":  "tables:\n  - id: 1\n  - id: 1\n",
		"unknown field": "tables:\n  - id: 1\n    colour: red\n",
		"empty":         "tables: []\n",
		"zero id":       "tables:\n  - id: 0\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(src)); !errors.Is(err, ErrInvalidAsset) {
				t.Fatalf("want ErrInvalidAsset, got %v", err)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "custom.yaml")
	src := "tables:\n  - id: 1\n    name: tiny\n    codons:\n      \"M\": [ATG]\n      \"*\": [TAA]\n"
	if err := os.WriteFile(fn, []byte(src), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	reg, err := LoadFile(fn)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	tbl, _ := reg.Lookup(1)
	if tbl.Name != "tiny" {
		t.Fatalf("name = %q", tbl.Name)
	}
	if l, ok := tbl.Codons('M'); !ok || len(l) != 1 || l[0] != "ATG" {
		t.Fatalf("M = %v ok=%v", l, ok)
	}
	if l, ok := tbl.Codons('W'); !ok || len(l) != 0 {
		t.Fatalf("omitted W must be present and empty: %v ok=%v", l, ok)
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
