package writers

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"strings"
	"syscall"
	"testing"

	"pr2codon/core/batch"
	"pr2codon/core/reconcile"
	"pr2codon/pkg/api"
)

func payload(withErr bool) Payload {
	res := batch.Result{Entries: []batch.Entry{
		{Identity: "g1", Codons: "ATGAAA", Stats: reconcile.Stats{Exact: 2}},
		{Identity: "g2", Codons: "TGG---", Stats: reconcile.Stats{Exact: 1, Gaps: 1}},
	}}
	if withErr {
		res.Err = &batch.RecordError{Index: 2, Identity: "g3", Header: "g3", Err: &reconcile.MismatchError{Position: 0, Symbol: 'W', Observed: "AAA"}}
	}
	return Payload{FileStem: "stem", Table: 1, Result: res}
}

func TestUnknownFormatError(t *testing.T) {
	err := Write("nope-format", io.Discard, payload(false))
	if err == nil || !strings.Contains(err.Error(), "unknown output format") {
		t.Fatalf("want unknown format error, got %v", err)
	}
}

func TestFormatsRegistered(t *testing.T) {
	got := strings.Join(Formats(), ",")
	if got != "fasta,json,jsonl,text" {
		t.Fatalf("registered formats: %s", got)
	}
}

func TestText(t *testing.T) {
	var b bytes.Buffer
	if err := Write("text", &b, payload(true)); err != nil {
		t.Fatalf("text: %v", err)
	}
	if want := "g1\nATGAAA\ng2\nTGG---\n"; b.String() != want {
		t.Fatalf("got %q want %q", b.String(), want)
	}
}

func TestJSON(t *testing.T) {
	var b bytes.Buffer
	if err := Write("json", &b, payload(true)); err != nil {
		t.Fatalf("json: %v", err)
	}
	var doc api.BatchV1
	if err := json.Unmarshal(b.Bytes(), &doc); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(doc.Records) != 2 || doc.Error == nil || doc.Error.Kind != "MismatchError" || doc.FileStem != "stem" {
		t.Fatalf("unexpected doc %+v", doc)
	}
}

func TestJSONL_ErrorLineLast(t *testing.T) {
	var b bytes.Buffer
	if err := Write("jsonl", &b, payload(true)); err != nil {
		t.Fatalf("jsonl: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("want 3 lines, got %d: %q", len(lines), b.String())
	}
	var e api.ErrorV1
	if err := json.Unmarshal([]byte(lines[2]), &e); err != nil || e.Kind != "MismatchError" || e.Identity != "g3" {
		t.Fatalf("bad error line %q (%v)", lines[2], err)
	}

	b.Reset()
	if err := Write("jsonl", &b, payload(false)); err != nil {
		t.Fatalf("jsonl: %v", err)
	}
	if n := strings.Count(b.String(), "\n"); n != 2 {
		t.Fatalf("want 2 lines without error, got %d", n)
	}
}

func TestIsBrokenPipe(t *testing.T) {
	if !IsBrokenPipe(syscall.EPIPE) || !IsBrokenPipe(io.ErrClosedPipe) {
		t.Fatalf("expected broken pipe detection")
	}
	if IsBrokenPipe(nil) || IsBrokenPipe(errors.New("x")) {
		t.Fatalf("false positive")
	}
}
