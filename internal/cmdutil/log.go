// internal/cmdutil/log.go
package cmdutil

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// LogOptions selects the logger destination and verbosity.
type LogOptions struct {
	Level string // debug | info | warn | error ("" = info)
	File  string // optional path; logs are appended there as well as to stderr
	Quiet bool   // raise the level to error unless Level is debug
}

// ParseLevel maps a level name to a charm log level. "warning" is accepted
// as an alias of "warn".
func ParseLevel(s string) (log.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return log.InfoLevel, nil
	case "debug":
		return log.DebugLevel, nil
	case "warn", "warning":
		return log.WarnLevel, nil
	case "error":
		return log.ErrorLevel, nil
	}
	return log.InfoLevel, fmt.Errorf("unknown log level %q (want debug|info|warn|error)", s)
}

// NewLogger builds the CLI logger writing to stderr, teed to o.File when set.
// The returned closer releases the log file and is never nil.
func NewLogger(stderr io.Writer, o LogOptions) (*log.Logger, io.Closer, error) {
	lvl, err := ParseLevel(o.Level)
	if err != nil {
		return nil, nil, err
	}
	if o.Quiet && lvl != log.DebugLevel {
		lvl = log.ErrorLevel
	}

	out := stderr
	var closer io.Closer = nopCloser{}
	if o.File != "" {
		f, err := os.OpenFile(o.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = io.MultiWriter(stderr, f)
		closer = f
	}

	logger := log.NewWithOptions(out, log.Options{
		Prefix:          "pr2codon",
		Level:           lvl,
		ReportTimestamp: o.File != "",
	})
	return logger, closer, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Warnf writes a plain WARN line, bypassing the structured logger. Used before
// a logger exists (flag and config parsing).
func Warnf(dst io.Writer, quiet bool, format string, a ...any) {
	if quiet {
		return
	}
	_, _ = fmt.Fprintf(dst, "WARN: "+format+"\n", a...)
}
