package pr2codon

import (
	"errors"
	"testing"

	"pr2codon/core/gcode"
	"pr2codon/core/reconcile"
	"pr2codon/core/record"
)

func TestExpandIUPAC(t *testing.T) {
	got := ExpandIUPAC("AYG")
	if len(got) != 2 || got[0] != "ACG" || got[1] != "ATG" {
		t.Fatalf("ExpandIUPAC(AYG) = %v", got)
	}
}

func TestReconcileOne(t *testing.T) {
	got, err := ReconcileOne(1, "h", " m-l?\n", "h", "ATG---CYG..AAA")
	if err != nil {
		t.Fatalf("ReconcileOne: %v", err)
	}
	if got != "ATG---CTGAAA" {
		t.Fatalf("got %q", got)
	}
}

func TestReconcileOne_NormalizedPlaceholdersBecomeX(t *testing.T) {
	// Digits never survive normalization; they are reconciled as X.
	got, err := ReconcileOne(1, "h", "M2", "h", "ATGCCC")
	if err != nil || got != "ATGCCC" {
		t.Fatalf("got %q err %v", got, err)
	}
}

func TestReconcileOne_Errors(t *testing.T) {
	if _, err := ReconcileOne(1, "a", "M", "b", "ATG"); !errors.Is(err, record.ErrHeaderMismatch) {
		t.Fatalf("want header mismatch, got %v", err)
	}
	if _, err := ReconcileOne(1, "a", "MK", "a", "ATG"); !errors.Is(err, record.ErrLengthMismatch) {
		t.Fatalf("want length mismatch, got %v", err)
	}
	if _, err := ReconcileOne(1, "a", "W", "a", "TGA"); !errors.Is(err, reconcile.ErrMismatch) {
		t.Fatalf("want mismatch, got %v", err)
	}
	if _, err := ReconcileOne(19, "a", "W", "a", "TGG"); !errors.Is(err, gcode.ErrUnknownTable) {
		t.Fatalf("want unknown table, got %v", err)
	}
}

func TestReconcileBatch_OrderedAndFailFast(t *testing.T) {
	pairs := map[string]Pair{
		"c": {AminoAcid: Side{"c", "M"}, Nucleotide: Side{"c", "ATG"}},
		"a": {AminoAcid: Side{"a", "K"}, Nucleotide: Side{"a", "AAR"}},
		"b": {AminoAcid: Side{"b", "M"}, Nucleotide: Side{"x", "ATG"}},
	}
	out, err := ReconcileBatch(1, pairs)
	if !errors.Is(err, record.ErrHeaderMismatch) {
		t.Fatalf("want header mismatch from b, got %v", err)
	}
	if out != "a\nAAA\n" {
		t.Fatalf("out = %q", out)
	}

	delete(pairs, "b")
	out, err = ReconcileBatch(1, pairs)
	if err != nil || out != "a\nAAA\nc\nATG\n" {
		t.Fatalf("out = %q err = %v", out, err)
	}
}
