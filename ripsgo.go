package ripsgo

import (
	"context"
	"time"

	"github.com/hupe1980/ripsgo/distmat"
	"github.com/hupe1980/ripsgo/internal/reduction"
)

// Dense computes the barcode of a dense distance matrix, given as the
// lower-triangular part in row-major order (row i contributes the distances
// to points 0..i-1). A single point is the empty slice.
//
// If no threshold option is set, the enclosing radius of the point set is
// used, which produces the same barcode as an unbounded filtration.
func Dense(distances []float32, optFns ...Option) (*Barcode, error) {
	o := applyOptions(optFns)
	if err := o.validate(); err != nil {
		return nil, err
	}

	m, err := distmat.NewDense(distances)
	if err != nil {
		return nil, err
	}

	return run(m, o)
}

// DenseUpper is Dense for upper-triangular row-major input (row i
// contributes the distances to points i+1..n-1).
func DenseUpper(distances []float32, optFns ...Option) (*Barcode, error) {
	o := applyOptions(optFns)
	if err := o.validate(); err != nil {
		return nil, err
	}

	m, err := distmat.NewDenseUpper(distances)
	if err != nil {
		return nil, err
	}

	return run(m, o)
}

// Sparse computes the barcode of a sparse distance matrix given as
// coordinate triples (rows[k], cols[k], weights[k]) over n points. Entries
// above the threshold are dropped, duplicates keep the smallest weight, and
// a self-loop (i, i, w) sets the birth time of point i.
//
// Sparse input requires a finite threshold; only stored edges exist, so
// there is no enclosing-radius fallback.
func Sparse(rows, cols []int, weights []float32, n int, optFns ...Option) (*Barcode, error) {
	o := applyOptions(optFns)
	if err := o.validate(); err != nil {
		return nil, err
	}
	if o.thresholdUnset() {
		return nil, ErrThresholdRequired
	}

	m, err := distmat.NewSparse(rows, cols, weights, n, o.threshold)
	if err != nil {
		return nil, err
	}

	return run(m, o)
}

// Run computes the barcode of an arbitrary distance matrix.
//
// If no threshold option is set and the matrix reports an enclosing radius
// (as distmat.Dense does), that radius is used.
func Run(m distmat.Matrix, optFns ...Option) (*Barcode, error) {
	o := applyOptions(optFns)
	if err := o.validate(); err != nil {
		return nil, err
	}

	return run(m, o)
}

func run(m distmat.Matrix, o *options) (*Barcode, error) {
	ctx := context.Background()

	threshold := o.threshold
	if o.thresholdUnset() {
		if er, ok := m.(interface{ EnclosingRadius() float32 }); ok {
			threshold = er.EnclosingRadius()
		}
	}

	start := time.Now()

	res, err := reduction.Run(m, reduction.Config{
		Modulus:   o.modulus,
		MaxDim:    o.maxDim,
		Threshold: threshold,
		Ratio:     o.ratio,
	})

	duration := time.Since(start)

	if err != nil {
		err = translateError(err)
		o.metricsCollector.RecordRun(m.Size(), o.maxDim, 0, duration, err)
		o.logger.LogRun(ctx, m.Size(), o.maxDim, 0, duration, err)
		return nil, err
	}

	barcode := newBarcode(res)
	o.metricsCollector.RecordRun(m.Size(), o.maxDim, barcode.NumEdges, duration, nil)
	o.logger.LogRun(ctx, m.Size(), o.maxDim, barcode.NumEdges, duration, nil)

	return barcode, nil
}

func newBarcode(res *reduction.Result) *Barcode {
	intervals := make([][]Pair, len(res.PairsByDim))
	cocycles := make([][]Cocycle, len(res.PairsByDim))
	for dim, pairs := range res.PairsByDim {
		out := make([]Pair, len(pairs))
		for i, p := range pairs {
			out[i] = Pair{Birth: p.Birth, Death: p.Death}
		}
		intervals[dim] = out
		cocycles[dim] = []Cocycle{}
	}

	return &Barcode{
		Intervals: intervals,
		Cocycles:  cocycles,
		NumEdges:  res.NumEdges,
	}
}
