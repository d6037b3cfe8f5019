// internal/output/constants.go
package output

// Output format names.
const (
	FormatText  = "text"
	FormatFASTA = "fasta"
	FormatJSON  = "json"
	FormatJSONL = "jsonl"
)

// Error kinds reported in api.ErrorV1.Kind.
const (
	KindHeaderMismatch = "HeaderMismatch"
	KindLengthMismatch = "LengthMismatch"
	KindUnknownSymbol  = "UnknownSymbolInTable"
	KindMismatch       = "MismatchError"
	KindUnknownTable   = "UnknownTable"
	KindCanceled       = "Canceled"
	KindOther          = "Error"
)
