package reconcile

import (
	"errors"
	"strings"
	"testing"

	"pr2codon/core/gcode"
	"pr2codon/core/record"
)

func norm(aa, nt string) record.Normalized {
	return record.Normalized{Identity: "s", AminoAcidHeader: "s", AminoAcidSeq: aa, NucleotideHeader: "s", NucleotideSeq: nt}
}

func standard(t *testing.T) *gcode.Table {
	t.Helper()
	tbl, err := gcode.Builtin().Lookup(gcode.StandardID)
	if err != nil {
		t.Fatalf("standard table: %v", err)
	}
	return tbl
}

// Every (symbol, codon) pair in every table reconciles to itself.
func TestRoundTripCanonicalCodons(t *testing.T) {
	reg := gcode.Builtin()
	for _, id := range reg.IDs() {
		tbl, _ := reg.Lookup(id)
		for _, sym := range tbl.Symbols() {
			list, _ := tbl.Codons(sym)
			for _, codon := range list {
				res, err := Reconcile(tbl, norm(string(sym), codon))
				if err != nil {
					t.Fatalf("table %d %c/%s: %v", id, sym, codon, err)
				}
				if res.Codons != codon {
					t.Fatalf("table %d %c/%s: got %s", id, sym, codon, res.Codons)
				}
			}
		}
	}
}

func TestGapAndPlaceholderPassThrough(t *testing.T) {
	res, err := Reconcile(standard(t), norm("A-B2C", "GCTAATTGT"))
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if want := "GCT---AAT..TGT"; res.Codons != want {
		t.Fatalf("got %q, want %q", res.Codons, want)
	}
	if res.Stats.Gaps != 1 || res.Stats.Placeholders != 1 || res.Stats.Exact != 3 {
		t.Fatalf("unexpected stats: %+v", res.Stats)
	}
}

// A validated record counts the digit as a residue, but the walk does not
// consume a triplet for it: the following symbol takes the next triplet and
// the trailing triplet is left unused.
func TestDigitPlaceholderAfterValidation(t *testing.T) {
	n := norm("A2C", "GCTTGTAAA")
	if err := record.Validate(n); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	res, err := Reconcile(standard(t), n)
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if res.Codons != "GCT..TGT" {
		t.Fatalf("got %q", res.Codons)
	}
}

func TestBypass_XAndN(t *testing.T) {
	cases := []struct{ aa, nt, want string }{
		{"X", "QQQ", "QQQ"},
		{"X", "TAA", "TAA"},
		{"M", "ANG", "ANG"},
		{"W", "NNN", "NNN"},
		{"L", "CTN", "CTN"},
	}
	for _, c := range cases {
		res, err := Reconcile(standard(t), norm(c.aa, c.nt))
		if err != nil {
			t.Fatalf("%s/%s: %v", c.aa, c.nt, err)
		}
		if res.Codons != c.want || res.Stats.Bypassed != 1 {
			t.Fatalf("%s/%s: got %q stats %+v", c.aa, c.nt, res.Codons, res.Stats)
		}
	}
}

func TestIUPACRescue(t *testing.T) {
	res, err := Reconcile(standard(t), norm("L", "CYG"))
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if res.Codons != "CTG" || res.Stats.Rescued != 1 {
		t.Fatalf("got %q stats %+v, want CTG rescued", res.Codons, res.Stats)
	}
	// Table order picks the first representable candidate.
	res, err = Reconcile(standard(t), norm("S", "WSY"))
	if err != nil {
		t.Fatalf("Reconcile: %v", err)
	}
	if res.Codons != "TCT" {
		t.Fatalf("WSY as S: got %q, want TCT", res.Codons)
	}
}

func TestMismatch(t *testing.T) {
	_, err := Reconcile(standard(t), norm("MKL", "ATGAAAGGG"))
	var me *MismatchError
	if !errors.As(err, &me) {
		t.Fatalf("want *MismatchError, got %v", err)
	}
	if !errors.Is(err, ErrMismatch) {
		t.Fatalf("errors.Is(ErrMismatch) = false")
	}
	if me.Position != 2 || me.Symbol != 'L' || me.Observed != "GGG" {
		t.Fatalf("unexpected mismatch: %+v", me)
	}
	if me.AminoAcidContext != "MKL" || me.NucleotideContext != "ATGAAAGGG" {
		t.Fatalf("unexpected context: %+v", me)
	}
	if !strings.Contains(err.Error(), "aa site 2") {
		t.Fatalf("message lacks position: %v", err)
	}
}

func TestMismatch_ContextWindows(t *testing.T) {
	aa := strings.Repeat("M", 25) + "W" + strings.Repeat("M", 14)
	nt := strings.Repeat("ATG", 25) + "TGA" + strings.Repeat("ATG", 14)
	_, err := Reconcile(standard(t), norm(aa, nt))
	var me *MismatchError
	if !errors.As(err, &me) {
		t.Fatalf("want *MismatchError, got %v", err)
	}
	if me.Position != 25 {
		t.Fatalf("position = %d", me.Position)
	}
	if me.AminoAcidContext != aa[15:35] {
		t.Fatalf("aa context = %q", me.AminoAcidContext)
	}
	// round(25/40*120) = 75
	if me.NucleotideContext != nt[45:105] {
		t.Fatalf("nt context = %q", me.NucleotideContext)
	}
}

func TestMismatch_ContextClampedAtEdges(t *testing.T) {
	_, err := Reconcile(standard(t), norm("W", "TGA"))
	var me *MismatchError
	if !errors.As(err, &me) {
		t.Fatalf("want *MismatchError, got %v", err)
	}
	if me.AminoAcidContext != "W" || me.NucleotideContext != "TGA" {
		t.Fatalf("unexpected context: %+v", me)
	}
}

func TestUnknownSymbol(t *testing.T) {
	_, err := Reconcile(standard(t), norm("MO", "ATGAAA"))
	var ue *UnknownSymbolError
	if !errors.As(err, &ue) || !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("want UnknownSymbolError, got %v", err)
	}
	if ue.Table != 1 || ue.Symbol != 'O' || ue.Position != 1 {
		t.Fatalf("unexpected: %+v", ue)
	}
}

func TestNucleotidesExhausted(t *testing.T) {
	_, err := Reconcile(standard(t), norm("MK", "ATGAA"))
	if !errors.Is(err, record.ErrLengthMismatch) {
		t.Fatalf("want ErrLengthMismatch, got %v", err)
	}
}

// Table 27 reassigns stops; '*' has no codons, so a stop triplet mismatches.
func TestEmptyCandidateSet(t *testing.T) {
	tbl, err := gcode.Builtin().Lookup(27)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if _, err := Reconcile(tbl, norm("*", "TGA")); !errors.Is(err, ErrMismatch) {
		t.Fatalf("want mismatch, got %v", err)
	}
	if res, err := Reconcile(tbl, norm("Q", "TAA")); err != nil || res.Codons != "TAA" {
		t.Fatalf("TAA as Q under table 27: %q %v", res.Codons, err)
	}
}

func TestRun_UnknownTable(t *testing.T) {
	if _, err := Run(gcode.Builtin(), 8, norm("M", "ATG")); !errors.Is(err, gcode.ErrUnknownTable) {
		t.Fatalf("want ErrUnknownTable, got %v", err)
	}
	res, err := Run(gcode.Builtin(), 2, norm("W", "TGA"))
	if err != nil || res.Codons != "TGA" {
		t.Fatalf("TGA as W under table 2: %q %v", res.Codons, err)
	}
}

func TestProportionalIndex(t *testing.T) {
	cases := []struct{ pos, aa, nt, want int }{
		{0, 10, 30, 0},
		{5, 10, 30, 15},
		{1, 3, 10, 3}, // 3.33 → 3
		{2, 3, 10, 7}, // 6.67 → 7
		{1, 2, 3, 2},  // 1.5 rounds up
		{4, 0, 9, 0},
	}
	for _, c := range cases {
		if got := proportionalIndex(c.pos, c.aa, c.nt); got != c.want {
			t.Errorf("proportionalIndex(%d,%d,%d) = %d, want %d", c.pos, c.aa, c.nt, got, c.want)
		}
	}
}
