// internal/output/fasta.go
package output

import (
	"bufio"
	"io"

	"pr2codon/core/batch"
)

// WriteFASTA writes each entry as ">identity" followed by its codon string on
// one line. Gap and placeholder characters are kept.
func WriteFASTA(w io.Writer, entries []batch.Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := bw.WriteString(">" + e.Identity + "\n" + e.Codons + "\n"); err != nil {
			return err
		}
	}
	return bw.Flush()
}
