// internal/writers/formats.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"

	"pr2codon/internal/jsonutil"
	"pr2codon/internal/output"
)

func init() {
	Register(output.FormatText, writeText)
	Register(output.FormatFASTA, writeFASTA)
	Register(output.FormatJSON, writeJSON)
	Register(output.FormatJSONL, writeJSONL)
}

// writeText emits identity and codon lines for every successful record.
func writeText(w io.Writer, p Payload) error {
	bw := bufio.NewWriter(w)
	if err := p.Result.WriteText(bw); err != nil {
		return err
	}
	return bw.Flush()
}

func writeFASTA(w io.Writer, p Payload) error {
	return output.WriteFASTA(w, p.Result.Entries)
}

func writeJSON(w io.Writer, p Payload) error {
	return jsonutil.EncodePretty(w, output.ToAPIBatch(p.FileStem, p.Table, p.Result))
}

// writeJSONL emits one RecordV1 per line, then one ErrorV1 line if the batch
// stopped early.
func writeJSONL(w io.Writer, p Payload) error {
	bw := bufio.NewWriterSize(w, 64<<10)
	enc := json.NewEncoder(bw)
	for _, e := range p.Result.Entries {
		if err := enc.Encode(output.ToAPIRecord(e)); err != nil {
			return err
		}
	}
	if ae := output.ToAPIError(p.Result.Err); ae != nil {
		if err := enc.Encode(ae); err != nil {
			return err
		}
	}
	return bw.Flush()
}
