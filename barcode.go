package ripsgo

import (
	"math"
)

// Pair is a single persistence interval. Birth is the filtration value at
// which the feature appears, Death the value at which it disappears.
// Essential features never die; their Death is +Inf.
type Pair struct {
	Birth float32
	Death float32
}

// IsEssential reports whether the feature persists up to the threshold.
func (p Pair) IsEssential() bool {
	return math.IsInf(float64(p.Death), 1)
}

// Persistence returns the length of the interval.
func (p Pair) Persistence() float32 {
	return p.Death - p.Birth
}

// CocycleEntry is one simplex of a representative cocycle, given by its
// vertex indices and its coefficient mod the configured modulus.
type CocycleEntry struct {
	Vertices    []int
	Coefficient int16
}

// Cocycle is a representative cocycle for a persistence pair.
type Cocycle struct {
	Entries []CocycleEntry
}

// Barcode is the result of a persistence computation.
//
// Intervals has one slice per homology dimension, from 0 up to the requested
// maximum. Within a dimension, finite pairs come in the order they were
// discovered during matrix reduction; essential pairs follow.
type Barcode struct {
	// Intervals holds the persistence pairs per dimension.
	Intervals [][]Pair

	// Cocycles holds representative cocycles per dimension, index-aligned
	// with Intervals when populated. Reconstruction must be requested with
	// WithCocycles; otherwise the inner slices stay empty.
	Cocycles [][]Cocycle

	// NumEdges is the number of edges at or below the distance threshold.
	NumEdges int
}

// PairsInDim returns the intervals of a single dimension.
// It returns nil if dim is out of range.
func (b *Barcode) PairsInDim(dim int) []Pair {
	if dim < 0 || dim >= len(b.Intervals) {
		return nil
	}
	return b.Intervals[dim]
}

// Essential returns the essential (never-dying) intervals of a dimension.
func (b *Barcode) Essential(dim int) []Pair {
	var out []Pair
	for _, p := range b.PairsInDim(dim) {
		if p.IsEssential() {
			out = append(out, p)
		}
	}
	return out
}

// BettiNumber returns the number of essential classes in a dimension, i.e.
// the Betti number of the complex at the threshold scale.
func (b *Barcode) BettiNumber(dim int) int {
	return len(b.Essential(dim))
}

// MaxDim returns the highest dimension the barcode covers.
func (b *Barcode) MaxDim() int {
	return len(b.Intervals) - 1
}
