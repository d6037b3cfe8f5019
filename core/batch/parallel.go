package batch

import (
	"context"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"pr2codon/core/gcode"
	"pr2codon/core/record"
)

// runParallel hands out record indices in ascending order to a fixed set of
// workers. firstFail holds the lowest failing index seen so far; indices above
// it are never started, and every index below it is always finished, so the
// cut point matches a serial run.
func runParallel(ctx context.Context, tbl *gcode.Table, recs []record.Sequence, workers int) Result {
	n := len(recs)
	if workers > n {
		workers = n
	}

	var (
		next      atomic.Int64
		firstFail atomic.Int64
		entries   = make([]Entry, n)
		errs      = make([]error, n)
		done      = make([]bool, n)
	)
	firstFail.Store(int64(n))

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				i := next.Add(1) - 1
				if i >= int64(n) || i > firstFail.Load() {
					return nil
				}
				if err := gctx.Err(); err != nil {
					return err
				}
				e, err := one(tbl, int(i), recs[i])
				entries[i], errs[i], done[i] = e, err, true
				if err == nil {
					continue
				}
				for {
					cur := firstFail.Load()
					if i >= cur || firstFail.CompareAndSwap(cur, i) {
						break
					}
				}
			}
		})
	}
	waitErr := g.Wait()

	out := Result{Entries: make([]Entry, 0, n)}
	for i := 0; i < n; i++ {
		switch {
		case !done[i]:
			out.Err = waitErr
			if out.Err == nil {
				out.Err = context.Canceled
			}
			return out
		case errs[i] != nil:
			out.Err = errs[i]
			return out
		}
		out.Entries = append(out.Entries, entries[i])
	}
	return out
}
