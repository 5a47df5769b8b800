// Package reduction implements the Vietoris-Rips persistence
// computation: dimension-0 pairing via union-find, then per-dimension
// coboundary matrix reduction with the emergent-pair shortcut and
// clearing against claimed pivots.
package reduction

import (
	"cmp"
	"slices"

	"github.com/hupe1980/ripsgo/distmat"
	"github.com/hupe1980/ripsgo/internal/binomial"
	"github.com/hupe1980/ripsgo/internal/column"
	"github.com/hupe1980/ripsgo/internal/unionfind"
)

// Pair is one feature's lifetime. Death is +Inf for essential
// features.
type Pair struct {
	Birth float32
	Death float32
}

// Stats are cheap counters gathered during a run.
type Stats struct {
	ColumnsReduced int64
	EmergentPairs  int64
}

// Config carries the validated parameters of a run.
type Config struct {
	Modulus   int16
	MaxDim    int
	Threshold float32
	Ratio     float32
}

// Result is the output of a run: one pair list per dimension
// 0..MaxDim, plus the count of edges surviving the threshold filter.
type Result struct {
	PairsByDim [][]Pair
	NumEdges   int
	Stats      Stats
}

type engine struct {
	dist      distmat.Matrix
	n         int
	maxDim    int // effective, clipped to n-2
	threshold float32
	modulus   int16
	ratio     float32
	binom     *binomial.Table
	inverse   []int16

	pairs [][]Pair
	stats Stats

	vertexScratch  []int64
	cofacetScratch []column.Entry
}

// Run computes the barcode of m under cfg. The caller is responsible
// for validating cfg (prime modulus, non-negative dimension, usable
// threshold); Run only fails if the input is too large for the
// simplex index representation.
func Run(m distmat.Matrix, cfg Config) (*Result, error) {
	n := m.Size()

	maxDim := cfg.MaxDim
	if limit := n - 2; maxDim > limit {
		maxDim = max(limit, 0)
	}

	binom, err := binomial.New(n, maxDim+2)
	if err != nil {
		return nil, err
	}

	e := &engine{
		dist:      m,
		n:         n,
		maxDim:    maxDim,
		threshold: cfg.Threshold,
		modulus:   cfg.Modulus,
		ratio:     cfg.Ratio,
		binom:     binom,
		inverse:   multiplicativeInverses(cfg.Modulus),
		pairs:     make([][]Pair, cfg.MaxDim+1),
	}
	for i := range e.pairs {
		e.pairs[i] = []Pair{}
	}

	edges := e.edges()
	numEdges := len(edges)

	simplices, columns := e.computeDimZero(edges)

	for dim := 1; dim <= e.maxDim; dim++ {
		pivots := make(map[int64]pivotRef, len(columns))
		e.computePairs(columns, pivots, dim)
		if dim < e.maxDim {
			simplices, columns = e.assembleColumns(simplices, pivots, dim+1)
		}
	}

	return &Result{
		PairsByDim: e.pairs,
		NumEdges:   numEdges,
		Stats:      e.stats,
	}, nil
}

// edges collects all edges within the threshold as diameter/index
// entries. Sparse matrices enumerate their materialized edges
// directly; dense ones scan the full triangle.
func (e *engine) edges() []column.DiameterIndex {
	if el, ok := e.dist.(distmat.EdgeLister); ok {
		list := el.EdgeList()
		out := make([]column.DiameterIndex, 0, len(list))
		for _, edge := range list {
			if edge.Diameter <= e.threshold {
				out = append(out, column.DiameterIndex{
					Diameter: edge.Diameter,
					Index:    e.binom.EdgeIndex(int64(edge.I), int64(edge.J)),
				})
			}
		}
		return out
	}

	var out []column.DiameterIndex
	for i := 1; i < e.n; i++ {
		for j := 0; j < i; j++ {
			if d := e.dist.Get(i, j); d <= e.threshold {
				out = append(out, column.DiameterIndex{
					Diameter: d,
					Index:    e.binom.EdgeIndex(int64(i), int64(j)),
				})
			}
		}
	}
	return out
}

// computeDimZero runs the union-find pairing over edges sorted by
// ascending diameter (ties to the larger index). Edges that close a
// cycle become the dimension-1 reduction candidates; the reversal
// leaves them in the order computePairs consumes (diameter
// descending, index ascending).
func (e *engine) computeDimZero(edges []column.DiameterIndex) (simplices, columns []column.DiameterIndex) {
	slices.SortFunc(edges, func(a, b column.DiameterIndex) int {
		if a.Diameter != b.Diameter {
			return cmp.Compare(a.Diameter, b.Diameter)
		}
		return cmp.Compare(b.Index, a.Index)
	})

	dset := unionfind.New(e.n)
	for i := 0; i < e.n; i++ {
		dset.SetBirth(i, e.dist.Birth(i))
	}

	columns = make([]column.DiameterIndex, 0, len(edges)/2)
	for _, edge := range edges {
		e.vertexScratch = e.binom.Vertices(edge.Index, 1, int64(e.n), e.vertexScratch)
		u := dset.Find(int(e.vertexScratch[0]))
		v := dset.Find(int(e.vertexScratch[1]))
		if u != v {
			birth := max(dset.Birth(u), dset.Birth(v))
			// Zero-length pairs are suppressed; the ratio raises the bar.
			if edge.Diameter > birth*e.ratio {
				e.pairs[0] = append(e.pairs[0], Pair{Birth: birth, Death: edge.Diameter})
			}
			dset.Link(u, v)
		} else {
			columns = append(columns, edge)
		}
	}
	slices.Reverse(columns)

	for i := 0; i < e.n; i++ {
		if dset.Find(i) == i {
			e.pairs[0] = append(e.pairs[0], Pair{Birth: dset.Birth(i), Death: distmat.Inf})
		}
	}

	return edges, columns
}

// multiplicativeInverses builds the inverse table for Z/pZ via the
// recurrence inverse[a] = p - (inverse[p%a] * (p/a)) % p, which is
// valid only for prime p. Primality is validated by the caller.
func multiplicativeInverses(modulus int16) []int16 {
	inverse := make([]int16, modulus)
	if modulus > 1 {
		inverse[1] = 1
	}
	p := int64(modulus)
	for a := int64(2); a < p; a++ {
		inverse[a] = int16(p - (int64(inverse[p%a])*(p/a))%p)
	}
	return inverse
}
