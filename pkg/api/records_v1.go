// pkg/api/records_v1.go
package api

// RecordV1 is the stable JSON/JSONL schema for one reconciled record.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
type RecordV1 struct {
	Identity     string `json:"identity"`
	Codons       string `json:"codons"`
	Exact        int    `json:"exact"`
	Rescued      int    `json:"rescued"`
	Bypassed     int    `json:"bypassed"`
	Gaps         int    `json:"gaps,omitempty"`
	Placeholders int    `json:"placeholders,omitempty"`
}

// ErrorV1 describes the terminal error that stopped a batch.
type ErrorV1 struct {
	Kind     string `json:"kind"` // HeaderMismatch | LengthMismatch | UnknownSymbolInTable | MismatchError | UnknownTable | Canceled | Error
	Message  string `json:"message"`
	Identity string `json:"identity,omitempty"`
	Header   string `json:"header,omitempty"`
	Index    *int   `json:"index,omitempty"`
	Position *int   `json:"position,omitempty"`
	AAWindow string `json:"aa_context,omitempty"`
	NTWindow string `json:"nt_context,omitempty"`
}

// BatchV1 is the single-document JSON output.
type BatchV1 struct {
	FileStem string     `json:"file_stem,omitempty"`
	Table    int        `json:"table"`
	Records  []RecordV1 `json:"records"`
	Error    *ErrorV1   `json:"error,omitempty"`
}
