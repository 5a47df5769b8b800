package distmat

import (
	"slices"

	"github.com/hupe1980/ripsgo/internal/conv"
)

type neighbor struct {
	vertex int32
	dist   float32
}

// Sparse stores only the edges at or below a threshold, as per-vertex
// neighbor lists sorted ascending by vertex index, plus an optional
// birth weight per vertex carried in on the COO diagonal.
type Sparse struct {
	n         int
	neighbors [][]neighbor
	births    []float32
	numEdges  int
	threshold float32
}

// Compile time checks that Sparse satisfies Matrix and EdgeLister.
var (
	_ Matrix     = (*Sparse)(nil)
	_ EdgeLister = (*Sparse)(nil)
)

// NewSparse builds a sparse matrix from COO triples (row[k], col[k],
// weight[k]) over n vertices. Self-loops set the vertex birth weight;
// off-diagonal entries above the threshold are omitted, so Get on
// such a pair reports +Inf. Duplicate edges keep the smallest weight.
func NewSparse(row, col []int, weight []float32, n int, threshold float32) (*Sparse, error) {
	if len(row) != len(col) || len(col) != len(weight) {
		return nil, &ErrCOOLength{Rows: len(row), Cols: len(col), Weights: len(weight)}
	}

	s := &Sparse{
		n:         n,
		neighbors: make([][]neighbor, n),
		births:    make([]float32, n),
		threshold: threshold,
	}

	for k := range row {
		i, err := vertexInRange(row[k], n)
		if err != nil {
			return nil, err
		}
		j, err := vertexInRange(col[k], n)
		if err != nil {
			return nil, err
		}

		if i == j {
			// A self-loop carries the vertex birth weight.
			s.births[i] = max(s.births[i], weight[k])
			continue
		}
		if weight[k] > threshold {
			continue
		}
		s.neighbors[int(i)] = append(s.neighbors[int(i)], neighbor{vertex: j, dist: weight[k]})
		s.neighbors[int(j)] = append(s.neighbors[int(j)], neighbor{vertex: i, dist: weight[k]})
	}

	for i := range s.neighbors {
		slices.SortFunc(s.neighbors[i], func(a, b neighbor) int {
			if a.vertex != b.vertex {
				return int(a.vertex) - int(b.vertex)
			}
			switch {
			case a.dist < b.dist:
				return -1
			case a.dist > b.dist:
				return 1
			}
			return 0
		})
		s.neighbors[i] = slices.CompactFunc(s.neighbors[i], func(a, b neighbor) bool {
			return a.vertex == b.vertex
		})
		s.numEdges += len(s.neighbors[i])
	}
	s.numEdges /= 2

	return s, nil
}

// vertexInRange validates a COO vertex index and narrows it for the
// packed neighbor representation.
func vertexInRange(v, n int) (int32, error) {
	if v < 0 || v >= n {
		return 0, &ErrVertexOutOfRange{Vertex: v, N: n}
	}
	w, err := conv.IntToInt32(v)
	if err != nil {
		return 0, &ErrVertexOutOfRange{Vertex: v, N: n}
	}
	return w, nil
}

// Size returns the number of vertices.
func (s *Sparse) Size() int { return s.n }

// Get returns the distance between i and j, or +Inf if the edge was
// not materialized.
func (s *Sparse) Get(i, j int) float32 {
	if i == j {
		return 0
	}
	list := s.neighbors[i]
	pos, found := slices.BinarySearchFunc(list, int32(j), func(nb neighbor, target int32) int {
		return int(nb.vertex) - int(target)
	})
	if !found {
		return Inf
	}
	return list[pos].dist
}

// Birth returns the birth weight of vertex i.
func (s *Sparse) Birth(i int) float32 { return s.births[i] }

// NumEdges returns the count of edges that survived the threshold
// filter.
func (s *Sparse) NumEdges() int { return s.numEdges }

// Threshold returns the threshold the matrix was filtered with.
func (s *Sparse) Threshold() float32 { return s.threshold }

// EdgeList returns the materialized edges with I > J, ordered by
// ascending I then ascending J.
func (s *Sparse) EdgeList() []Edge {
	edges := make([]Edge, 0, s.numEdges)
	for i := 0; i < s.n; i++ {
		for _, nb := range s.neighbors[i] {
			if int(nb.vertex) < i {
				edges = append(edges, Edge{I: i, J: int(nb.vertex), Diameter: nb.dist})
			}
		}
	}
	return edges
}
