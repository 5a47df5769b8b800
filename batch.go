package ripsgo

import (
	"context"
	"runtime"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/ripsgo/distmat"
)

// BatchRun computes barcodes for independent distance matrices concurrently.
// Results are index-aligned with the input. The first error cancels the
// remaining work and is returned.
//
// WithConcurrency bounds the number of parallel computations; a configured
// resource controller additionally gates each run on a slot and a memory
// reservation sized from the matrix.
func BatchRun(ctx context.Context, matrices []distmat.Matrix, optFns ...Option) ([]*Barcode, error) {
	o := applyOptions(optFns)
	if err := o.validate(); err != nil {
		return nil, err
	}
	if len(matrices) == 0 {
		return nil, ErrEmptyBatch
	}

	limit := o.concurrency
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	results := make([]*Barcode, len(matrices))

	var failed atomic.Int64
	start := time.Now()

	for i, m := range matrices {
		i, m := i, m
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			if c := o.controller; c != nil {
				if err := c.AcquireRun(ctx); err != nil {
					return err
				}
				defer c.ReleaseRun()

				bytes := estimateRunBytes(m)
				if err := c.AcquireMemory(bytes); err != nil {
					failed.Add(1)
					return err
				}
				defer c.ReleaseMemory(bytes)
			}

			barcode, err := run(m, o)
			if err != nil {
				failed.Add(1)
				return err
			}

			results[i] = barcode
			return nil
		})
	}

	err := g.Wait()
	duration := time.Since(start)

	o.metricsCollector.RecordBatch(len(matrices), int(failed.Load()), duration)
	o.logger.LogBatch(ctx, len(matrices), int(failed.Load()), duration)

	if err != nil {
		return nil, err
	}

	return results, nil
}

// estimateRunBytes gives a rough working-set size for reserving memory: the
// edge simplices plus reduction columns, at a fixed per-entry cost.
func estimateRunBytes(m distmat.Matrix) int64 {
	const bytesPerEdge = 48

	if ec, ok := m.(interface{ NumEdges() int }); ok {
		return int64(ec.NumEdges()) * bytesPerEdge
	}

	n := int64(m.Size())
	return n * (n - 1) / 2 * bytesPerEdge
}
