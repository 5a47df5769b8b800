package distmat

import (
	"fmt"
	"math"
)

// Inf is the float32 positive infinity returned for pairs a sparse
// matrix did not materialize.
var Inf = float32(math.Inf(1))

// Matrix is a finite metric space given by pairwise distances.
// Get is symmetric and zero on the diagonal. Birth returns the vertex
// birth weight (zero for unweighted inputs).
type Matrix interface {
	Size() int
	Get(i, j int) float32
	Birth(i int) float32
}

// Edge is a materialized off-diagonal entry with I > J.
type Edge struct {
	I, J     int
	Diameter float32
}

// EdgeLister is an optional interface for matrices that can enumerate
// their materialized edges directly, sparing the engine the full
// O(n²) scan.
type EdgeLister interface {
	EdgeList() []Edge
}

// ErrTriangularLength indicates a dense input array whose length is
// not a triangular number n*(n-1)/2.
type ErrTriangularLength struct {
	Length int
}

func (e *ErrTriangularLength) Error() string {
	return fmt.Sprintf("distmat: array length %d is not a triangular number n*(n-1)/2", e.Length)
}

// ErrCOOLength indicates COO input arrays of mismatched lengths.
type ErrCOOLength struct {
	Rows, Cols, Weights int
}

func (e *ErrCOOLength) Error() string {
	return fmt.Sprintf("distmat: COO arrays have mismatched lengths (rows=%d cols=%d weights=%d)", e.Rows, e.Cols, e.Weights)
}

// ErrVertexOutOfRange indicates a COO vertex index outside [0, n).
type ErrVertexOutOfRange struct {
	Vertex int
	N      int
}

func (e *ErrVertexOutOfRange) Error() string {
	return fmt.Sprintf("distmat: vertex %d out of range [0, %d)", e.Vertex, e.N)
}
