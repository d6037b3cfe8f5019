// internal/output/api.go
package output

import (
	"context"
	"errors"

	"pr2codon/core/batch"
	"pr2codon/core/gcode"
	"pr2codon/core/reconcile"
	"pr2codon/core/record"
	"pr2codon/pkg/api"
)

// ToAPIRecord converts a batch entry to the stable v1 wire type.
func ToAPIRecord(e batch.Entry) api.RecordV1 {
	return api.RecordV1{
		Identity:     e.Identity,
		Codons:       e.Codons,
		Exact:        e.Stats.Exact,
		Rescued:      e.Stats.Rescued,
		Bypassed:     e.Stats.Bypassed,
		Gaps:         e.Stats.Gaps,
		Placeholders: e.Stats.Placeholders,
	}
}

// ErrorKind classifies err into one of the Kind* names.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, record.ErrHeaderMismatch):
		return KindHeaderMismatch
	case errors.Is(err, record.ErrLengthMismatch):
		return KindLengthMismatch
	case errors.Is(err, reconcile.ErrUnknownSymbol):
		return KindUnknownSymbol
	case errors.Is(err, reconcile.ErrMismatch):
		return KindMismatch
	case errors.Is(err, gcode.ErrUnknownTable):
		return KindUnknownTable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	}
	return KindOther
}

// ToAPIError converts a batch terminal error; nil maps to nil. The message is
// the underlying diagnostic without the record prefix.
func ToAPIError(err error) *api.ErrorV1 {
	if err == nil {
		return nil
	}
	out := &api.ErrorV1{Kind: ErrorKind(err), Message: err.Error()}

	var re *batch.RecordError
	if errors.As(err, &re) {
		idx := re.Index
		out.Index = &idx
		out.Identity = re.Identity
		out.Header = re.Header
		out.Message = re.Err.Error()
	}
	var me *reconcile.MismatchError
	if errors.As(err, &me) {
		pos := me.Position
		out.Position = &pos
		out.AAWindow = me.AminoAcidContext
		out.NTWindow = me.NucleotideContext
	}
	var ue *reconcile.UnknownSymbolError
	if errors.As(err, &ue) {
		pos := ue.Position
		out.Position = &pos
	}
	return out
}

// ToAPIBatch assembles the single-document JSON view of a run.
func ToAPIBatch(fileStem string, table int, res batch.Result) api.BatchV1 {
	recs := make([]api.RecordV1, 0, len(res.Entries))
	for _, e := range res.Entries {
		recs = append(recs, ToAPIRecord(e))
	}
	return api.BatchV1{
		FileStem: fileStem,
		Table:    table,
		Records:  recs,
		Error:    ToAPIError(res.Err),
	}
}
