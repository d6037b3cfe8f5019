// Package writers turns batch results into serialized outputs.
//
// Design:
//   • Writers own all presentation knowledge (text/FASTA/JSON/JSONL).
//   • core/batch stays domain-only; it never formats beyond WriteText.
//   • JSON/JSONL go through pkg/api (v1) for a stable wire format.
package writers
