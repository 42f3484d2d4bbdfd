package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ProcessParallel is Process with bounded worker concurrency. Output is
// identical to Process for the same input: rows keep input order and the
// skip accounting does not change. Useful for large batches where the
// per-row hashing dominates.
func (p *Processor) ProcessParallel(ctx context.Context, contents string) (ProcessedData, error) {
	log := p.log.With("batch_id", uuid.NewString())
	start := p.clock.Now()

	lines := splitLines(contents)
	if len(lines) > p.cfg.MaxRows {
		if p.met != nil {
			p.met.BatchesRejected.Inc()
		}
		log.Warnw("batch rejected", "lines", len(lines), "limit", p.cfg.MaxRows)
		return ProcessedData{}, fmt.Errorf("csv file exceeds the row limit of %d", p.cfg.MaxRows)
	}

	type outcome struct {
		row     ProcessedRow
		emitted bool
		skipped bool
	}
	outcomes := make([]outcome, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers())
	for i, line := range lines {
		i, line := i, line
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%v", r)
				}
			}()

			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			value, ok := candidate(line)
			if !ok {
				return nil
			}
			if row, ok := p.processValue(value); ok {
				outcomes[i] = outcome{row: row, emitted: true}
			} else {
				outcomes[i] = outcome{skipped: true}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return ProcessedData{}, err
		}
		return ProcessedData{}, fmt.Errorf("%s%s", wrapPrefix, err)
	}

	data := ProcessedData{Headers: append([]string(nil), Headers...)}
	for _, o := range outcomes {
		if o.emitted {
			data.Rows = append(data.Rows, o.row)
		} else if o.skipped {
			data.SkippedRows++
		}
	}

	p.observe(log, data, p.clock.Since(start).Seconds())
	return data, nil
}

func (p *Processor) workers() int {
	if p.cfg.Workers > 0 {
		return p.cfg.Workers
	}
	return runtime.GOMAXPROCS(0)
}
