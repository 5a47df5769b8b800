// Package binomial provides the precomputed binomial coefficient table
// backing the combinatorial number system used to address simplices.
//
// A k-vertex simplex over {0..n-1} is encoded in colex order as
//
//	index = C(v_k, k) + C(v_{k-1}, k-1) + ... + C(v_1, 1)
//
// with v_1 < v_2 < ... < v_k. The table supports the O(log n) decode
// (MaxVertex, Vertices) and the O(1) edge encode (EdgeIndex).
package binomial

import (
	"fmt"
)

// coefficientBits is the number of bits reserved for packing a field
// coefficient alongside a simplex index.
const coefficientBits = 16

// MaxIndex is the largest simplex index representable without
// colliding with the coefficient bits of a packed entry.
const MaxIndex = int64(1)<<(63-coefficientBits) - 1

// OverflowError reports a binomial table entry exceeding MaxIndex,
// meaning the requested (n, dim) combination cannot be addressed by
// the index representation.
type OverflowError struct {
	N     int
	K     int
	Value int64
}

func (e *OverflowError) Error() string {
	return fmt.Sprintf("binomial: simplex index C(%d,%d) = %d exceeds maximum %d for this input size and dimension", e.N, e.K, e.Value, MaxIndex)
}

// Table holds C(i, j) for 0 <= i <= n, 0 <= j <= k.
type Table struct {
	rows [][]int64
	n, k int
}

// New precomputes the table via the Pascal triangle recurrence.
// It fails with an OverflowError as soon as any entry exceeds
// MaxIndex; by checking the middle entry of each row the first
// offending row is caught before later rows overflow int64 itself.
func New(n, k int) (*Table, error) {
	t := &Table{
		rows: make([][]int64, n+1),
		n:    n,
		k:    k,
	}
	for i := 0; i <= n; i++ {
		t.rows[i] = make([]int64, k+1)
		t.rows[i][0] = 1
		for j := 1; j < min(i, k+1); j++ {
			t.rows[i][j] = t.rows[i-1][j-1] + t.rows[i-1][j]
		}
		if i <= k {
			t.rows[i][i] = 1
		}
		if v := t.rows[i][min(i>>1, k)]; v > MaxIndex {
			return nil, &OverflowError{N: i, K: min(i>>1, k), Value: v}
		}
	}
	return t, nil
}

// Get returns C(n, k). Arguments outside the precomputed range are an
// internal invariant violation and panic.
func (t *Table) Get(n, k int64) int64 {
	if n < 0 || n > int64(t.n) || k < 0 || k > int64(t.k) {
		panic(fmt.Sprintf("binomial: C(%d,%d) outside precomputed range (%d,%d)", n, k, t.n, t.k))
	}
	return t.rows[n][k]
}

// MaxVertex returns the largest vertex v <= top such that
// C(v, k) <= idx. This is the core decode primitive of the
// combinatorial number system.
func (t *Table) MaxVertex(idx, k, top int64) int64 {
	bottom := k - 1 // C(k-1, k) == 0 <= idx always holds
	if t.Get(top, k) <= idx {
		return top
	}
	for top-bottom > 1 {
		mid := bottom + (top-bottom)/2
		if t.Get(mid, k) <= idx {
			bottom = mid
		} else {
			top = mid
		}
	}
	return bottom
}

// Vertices decodes the index of a dim-dimensional simplex over n
// vertices into its vertex list in ascending order. The out slice is
// resized to dim+1 entries and returned.
func (t *Table) Vertices(idx int64, dim int, n int64, out []int64) []int64 {
	if cap(out) < dim+1 {
		out = make([]int64, dim+1)
	} else {
		out = out[:dim+1]
	}
	v := n - 1
	for k := int64(dim) + 1; k > 0; k-- {
		v = t.MaxVertex(idx, k, v)
		out[k-1] = v
		idx -= t.Get(v, k)
	}
	if idx != 0 {
		panic(fmt.Sprintf("binomial: non-zero remainder %d decoding simplex", idx))
	}
	return out
}

// EdgeIndex returns the index of the edge {j, i} with i > j,
// i.e. C(i, 2) + j.
func (t *Table) EdgeIndex(i, j int64) int64 {
	return t.Get(i, 2) + j
}
