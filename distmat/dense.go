package distmat

import "math"

// Dense stores the strict lower triangle of a symmetric distance
// matrix row-major in a flat array: d(1,0), d(2,0), d(2,1), d(3,0), …
type Dense struct {
	distances []float32
	n         int
}

// Compile time check that Dense satisfies Matrix.
var _ Matrix = (*Dense)(nil)

// NewDense builds a dense matrix from a flat lower-triangular
// distance array. The array length must be a triangular number.
func NewDense(lower []float32) (*Dense, error) {
	n, err := triangularRoot(len(lower))
	if err != nil {
		return nil, err
	}
	d := &Dense{
		distances: make([]float32, len(lower)),
		n:         n,
	}
	copy(d.distances, lower)
	return d, nil
}

// NewDenseUpper builds a dense matrix from a flat upper-triangular
// distance array: d(0,1), d(0,2), …, d(0,n-1), d(1,2), … The
// conversion is a pure index remap, so the stored values are
// bit-identical to the input.
func NewDenseUpper(upper []float32) (*Dense, error) {
	n, err := triangularRoot(len(upper))
	if err != nil {
		return nil, err
	}
	d := &Dense{
		distances: make([]float32, len(upper)),
		n:         n,
	}
	for i := 1; i < n; i++ {
		for j := 0; j < i; j++ {
			d.distances[i*(i-1)/2+j] = upper[upperOffset(j, i, n)]
		}
	}
	return d, nil
}

// Size returns the number of points.
func (d *Dense) Size() int { return d.n }

// Get returns the distance between points i and j.
func (d *Dense) Get(i, j int) float32 {
	if i == j {
		return 0
	}
	if i < j {
		i, j = j, i
	}
	return d.distances[i*(i-1)/2+j]
}

// Birth returns 0: dense inputs carry no vertex weights.
func (d *Dense) Birth(int) float32 { return 0 }

// EnclosingRadius returns the minimum over all points of that point's
// maximum distance to any other point. Any feature born above this
// radius is killed immediately, so it is a safe auto-threshold.
func (d *Dense) EnclosingRadius() float32 {
	if d.n < 2 {
		return 0
	}
	radius := Inf
	for i := 0; i < d.n; i++ {
		var farthest float32
		for j := 0; j < d.n; j++ {
			if j != i {
				farthest = max(farthest, d.Get(i, j))
			}
		}
		radius = min(radius, farthest)
	}
	return radius
}

// LowerTriangular returns a copy of the distances in lower-triangular
// layout.
func (d *Dense) LowerTriangular() []float32 {
	out := make([]float32, len(d.distances))
	copy(out, d.distances)
	return out
}

// UpperTriangular returns a copy of the distances in upper-triangular
// layout.
func (d *Dense) UpperTriangular() []float32 {
	out := make([]float32, len(d.distances))
	for i := 1; i < d.n; i++ {
		for j := 0; j < i; j++ {
			out[upperOffset(j, i, d.n)] = d.distances[i*(i-1)/2+j]
		}
	}
	return out
}

// upperOffset is the flat offset of entry (i, j) with i < j in
// row-major upper-triangular layout.
func upperOffset(i, j, n int) int {
	return i*(n-1) - i*(i-1)/2 + (j - i - 1)
}

// triangularRoot returns n such that len == n*(n-1)/2, requiring
// 8*len+1 to be a perfect square.
func triangularRoot(length int) (int, error) {
	s := int(math.Sqrt(float64(8*length + 1)))
	// Guard against floating point truncation around perfect squares.
	for s*s < 8*length+1 {
		s++
	}
	for s*s > 8*length+1 {
		s--
	}
	if s*s != 8*length+1 {
		return 0, &ErrTriangularLength{Length: length}
	}
	return (s + 1) / 2, nil
}
