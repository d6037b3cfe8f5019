// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"pr2codon/core/batch"
	"pr2codon/core/gcode"
	"pr2codon/core/reconcile"
	"pr2codon/internal/archive"
	"pr2codon/internal/fasta"
	"pr2codon/internal/metrics"
	"pr2codon/internal/pairing"
	"pr2codon/internal/pretty"
	"pr2codon/internal/writers"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitUsage    = 2
	ExitIO       = 3
	ExitRecord   = 4
	ExitCanceled = 130
)

// Options is the resolved run configuration.
type Options struct {
	AAFile     string
	NTFile     string
	Table      int
	TablesFile string

	Threads int

	Output      string
	Sort        bool
	FileStem    string
	Archive     string
	MetricsFile string

	Pretty pretty.Options
}

// Run loads both FASTA inputs, reconciles the paired records and writes the
// result to stdout. Records before a terminal error are still written.
func Run(parent context.Context, stdout, stderr io.Writer, logger *log.Logger, o Options) int {
	ctx, cancel := context.WithCancel(parent)
	defer cancel()
	started := time.Now()

	provider, err := loadTables(o.TablesFile)
	if err != nil {
		logger.Error("cannot load genetic code tables", "err", err)
		return ExitUsage
	}
	if _, err := provider.Lookup(o.Table); err != nil {
		logger.Error("bad --table", "err", err)
		return ExitUsage
	}

	stem := o.FileStem
	if stem == "" {
		stem = FileStem(o.AAFile)
	}

	aa, err := fasta.ReadAll(ctx, o.AAFile)
	if err != nil {
		return ioFailure(logger, "read amino-acid input", err)
	}
	nt, err := fasta.ReadAll(ctx, o.NTFile)
	if err != nil {
		return ioFailure(logger, "read nucleotide input", err)
	}
	recs, err := pairing.Pair(aa, nt, o.Sort)
	if err != nil {
		logger.Error("cannot pair inputs", "file", stem, "err", err)
		return ExitIO
	}
	logger.Debug("inputs paired", "file", stem, "records", len(recs), "table", o.Table)

	thr := o.Threads
	if thr <= 0 {
		thr = runtime.NumCPU()
	}
	var rec *metrics.Recorder
	bopt := batch.Options{Workers: thr}
	if o.MetricsFile != "" {
		rec = metrics.New()
		bopt.Observer = rec
	}

	res := batch.Run(ctx, provider, o.Table, recs, bopt)
	if rec != nil {
		rec.ObserveDuration(started)
		var re *batch.RecordError
		if res.Err != nil && !errors.As(res.Err, &re) {
			rec.FailedBatch(res.Err)
		}
	}

	code := ExitOK
	outw := bufio.NewWriter(stdout)
	payload := writers.Payload{FileStem: stem, Table: o.Table, Result: res}
	if werr := writers.Write(o.Output, outw, payload); writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		logger.Error("write output", "err", werr)
		return ExitIO
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		logger.Error("write output", "err", e)
		return ExitIO
	}

	if res.Err != nil {
		if errors.Is(res.Err, context.Canceled) || errors.Is(res.Err, context.DeadlineExceeded) {
			return ExitCanceled
		}
		reportBatchError(stderr, logger, stem, res.Err, o.Pretty)
		code = ExitRecord
	} else {
		st := res.Stats()
		logger.Info("reconciled", "file", stem, "records", len(res.Entries),
			"exact", st.Exact, "rescued", st.Rescued, "bypassed", st.Bypassed,
			"elapsed", time.Since(started).Round(time.Millisecond))
	}

	if o.Archive != "" {
		if err := saveArchive(ctx, o, stem, started, res); err != nil {
			logger.Error("archive run", "path", o.Archive, "err", err)
			if code == ExitOK {
				code = ExitIO
			}
		}
	}
	if rec != nil {
		if err := rec.WriteTextfile(o.MetricsFile); err != nil {
			logger.Error("write metrics", "path", o.MetricsFile, "err", err)
			if code == ExitOK {
				code = ExitIO
			}
		}
	}
	return code
}

func loadTables(path string) (*gcode.Registry, error) {
	if path == "" {
		return gcode.Builtin(), nil
	}
	return gcode.LoadFile(path)
}

func ioFailure(logger *log.Logger, what string, err error) int {
	if errors.Is(err, context.Canceled) {
		return ExitCanceled
	}
	logger.Error(what, "err", err)
	return ExitIO
}

// reportBatchError logs the terminal error once and, for mismatches, renders
// the context block on stderr.
func reportBatchError(stderr io.Writer, logger *log.Logger, stem string, err error, popt pretty.Options) {
	header := ""
	msg := err.Error()
	var re *batch.RecordError
	if errors.As(err, &re) {
		header = re.Header
		msg = re.Err.Error()
	}
	logger.Error(fmt.Sprintf("ERROR CAUGHT IN FILE %s AND HEADER %s", stem, header), "err", msg)

	var me *reconcile.MismatchError
	if errors.As(err, &me) {
		_ = pretty.Mismatch(stderr, me, popt)
	}
}

func saveArchive(ctx context.Context, o Options, stem string, started time.Time, res batch.Result) error {
	a, err := archive.Open(o.Archive)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()
	_, err = a.Save(ctx, archive.Run{
		Started: started, FileStem: stem, Table: o.Table,
		AAFile: o.AAFile, NTFile: o.NTFile, Result: res,
	})
	return err
}

// FileStem derives a display name from an input path: the base name without
// a trailing .gz and one further extension. "-" becomes "stdin".
func FileStem(path string) string {
	if path == "-" || path == "" {
		return "stdin"
	}
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, ".gz")
	if ext := filepath.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}
