// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
)

// Record is one FASTA entry. ID is the first whitespace-delimited token of
// the header; Header is the full header line without '>'. Sequence bytes are
// kept as written (no case folding), minus whitespace.
type Record struct {
	ID     string
	Header string
	Seq    string
}

// ReadCtx scans FASTA from r and calls emit once per record. Cancellation via
// ctx is checked between lines. Sequence data before the first header is an error.
func ReadCtx(ctx context.Context, r io.Reader, emit func(Record) error) error {
	sc := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // allow very long single-line sequences (64 MiB)
	buf := make([]byte, 64*1024)
	sc.Buffer(buf, maxLine)

	var (
		header string
		have   bool
		seq    bytes.Buffer
		ln     int
	)
	flush := func() error {
		if !have {
			return nil
		}
		return emit(Record{ID: parseHeaderID(header), Header: header, Seq: seq.String()})
	}

	for sc.Scan() {
		ln++
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		line := bytes.TrimSpace(sc.Bytes())
		if len(line) == 0 || line[0] == ';' {
			continue
		}
		if line[0] == '>' {
			if err := flush(); err != nil {
				return err
			}
			header = string(bytes.TrimSpace(line[1:]))
			have = true
			seq.Reset()
			continue
		}
		if !have {
			return fmt.Errorf("fasta line %d: sequence data before first header", ln)
		}
		for _, c := range line {
			if c != ' ' && c != '\t' {
				seq.WriteByte(c)
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("fasta scan: %w", err)
	}
	return flush()
}

// ReadPathCtx opens path (plain, gzip, or "-" for stdin) and reads it with ReadCtx.
func ReadPathCtx(ctx context.Context, path string, emit func(Record) error) error {
	rc, err := openReader(path)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()
	if err := ReadCtx(ctx, rc, emit); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

// ReadAll collects every record of path in file order.
func ReadAll(ctx context.Context, path string) ([]Record, error) {
	var out []Record
	err := ReadPathCtx(ctx, path, func(r Record) error {
		out = append(out, r)
		return nil
	})
	return out, err
}

func parseHeaderID(hdr string) string {
	for i := 0; i < len(hdr); i++ {
		if hdr[i] == ' ' || hdr[i] == '\t' {
			return hdr[:i]
		}
	}
	return hdr
}
