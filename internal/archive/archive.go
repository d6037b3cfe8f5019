// Package archive keeps a local SQLite history of reconciliation runs: one row
// per run and one row per reconciled record.
package archive

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // pure go sqlite driver

	"pr2codon/core/batch"
	"pr2codon/core/reconcile"
	"pr2codon/internal/output"
)

var schema = []string{`
CREATE TABLE IF NOT EXISTS runs (
	id            TEXT PRIMARY KEY,
	started_at    TEXT NOT NULL,
	file_stem     TEXT NOT NULL,
	table_id      INTEGER NOT NULL,
	aa_file       TEXT NOT NULL,
	nt_file       TEXT NOT NULL,
	records       INTEGER NOT NULL,
	error_kind    TEXT NOT NULL DEFAULT '',
	error_message TEXT NOT NULL DEFAULT '',
	error_record  TEXT NOT NULL DEFAULT ''
)`, `
CREATE TABLE IF NOT EXISTS records (
	run_id       TEXT NOT NULL REFERENCES runs(id),
	seq          INTEGER NOT NULL,
	identity     TEXT NOT NULL,
	codons       TEXT NOT NULL,
	exact        INTEGER NOT NULL,
	rescued      INTEGER NOT NULL,
	bypassed     INTEGER NOT NULL,
	gaps         INTEGER NOT NULL,
	placeholders INTEGER NOT NULL,
	PRIMARY KEY (run_id, seq)
)`}

// Archive is an open run history database.
type Archive struct {
	db *sql.DB
}

// Run describes one batch to archive.
type Run struct {
	Started  time.Time
	FileStem string
	Table    int
	AAFile   string
	NTFile   string
	Result   batch.Result
}

// Summary is one row of the runs table.
type Summary struct {
	ID           string
	Started      time.Time
	FileStem     string
	Table        int
	Records      int
	ErrorKind    string
	ErrorMessage string
	ErrorRecord  string
}

// Open opens (creating if needed) the archive at path.
func Open(path string) (*Archive, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return nil, fmt.Errorf("create dirs: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("create archive tables: %w", err)
		}
	}
	return &Archive{db: db}, nil
}

// Close releases the database.
func (a *Archive) Close() error { return a.db.Close() }

// Save stores r in one transaction and returns the new run id.
func (a *Archive) Save(ctx context.Context, r Run) (id string, retErr error) {
	id = uuid.NewString()
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if retErr != nil {
			_ = tx.Rollback()
		}
	}()

	var kind, msg, rec string
	if ae := output.ToAPIError(r.Result.Err); ae != nil {
		kind, msg, rec = ae.Kind, ae.Message, ae.Identity
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, file_stem, table_id, aa_file, nt_file, records, error_kind, error_message, error_record)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, r.Started.UTC().Format(time.RFC3339Nano), r.FileStem, r.Table, r.AAFile, r.NTFile,
		len(r.Result.Entries), kind, msg, rec,
	); err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO records (run_id, seq, identity, codons, exact, rescued, bypassed, gaps, placeholders)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return "", fmt.Errorf("prepare records: %w", err)
	}
	defer func() { _ = stmt.Close() }()
	for i, e := range r.Result.Entries {
		st := e.Stats
		if _, err := stmt.ExecContext(ctx, id, i, e.Identity, e.Codons,
			st.Exact, st.Rescued, st.Bypassed, st.Gaps, st.Placeholders); err != nil {
			return "", fmt.Errorf("insert record %s: %w", e.Identity, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// Runs lists archived runs, oldest first.
func (a *Archive) Runs(ctx context.Context) ([]Summary, error) {
	rows, err := a.db.QueryContext(ctx,
		`SELECT id, started_at, file_stem, table_id, records, error_kind, error_message, error_record
		 FROM runs ORDER BY started_at, rowid`)
	if err != nil {
		return nil, fmt.Errorf("select runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Summary
	for rows.Next() {
		var s Summary
		var started string
		if err := rows.Scan(&s.ID, &started, &s.FileStem, &s.Table, &s.Records,
			&s.ErrorKind, &s.ErrorMessage, &s.ErrorRecord); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		if s.Started, err = time.Parse(time.RFC3339Nano, started); err != nil {
			return nil, fmt.Errorf("run %s: bad timestamp: %w", s.ID, err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Entries returns the reconciled records of run id in batch order.
func (a *Archive) Entries(ctx context.Context, id string) ([]batch.Entry, error) {
	rows, err := a.db.QueryContext(ctx,
		`SELECT identity, codons, exact, rescued, bypassed, gaps, placeholders
		 FROM records WHERE run_id = ? ORDER BY seq`, id)
	if err != nil {
		return nil, fmt.Errorf("select records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []batch.Entry
	for rows.Next() {
		var e batch.Entry
		var st reconcile.Stats
		if err := rows.Scan(&e.Identity, &e.Codons, &st.Exact, &st.Rescued, &st.Bypassed, &st.Gaps, &st.Placeholders); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		e.Stats = st
		out = append(out, e)
	}
	return out, rows.Err()
}
