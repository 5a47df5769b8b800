// Package unionfind implements the disjoint-set structure used for
// dimension-0 pairing, with per-component birth tracking for weighted
// vertex filtrations.
package unionfind

// UnionFind partitions {0..n-1} into components, tracking for every
// root the earliest birth weight merged into its component.
type UnionFind struct {
	parent []int
	rank   []uint8
	birth  []float32
}

// New creates one singleton component per vertex, all with birth 0.
func New(n int) *UnionFind {
	u := &UnionFind{
		parent: make([]int, n),
		rank:   make([]uint8, n),
		birth:  make([]float32, n),
	}
	for i := range u.parent {
		u.parent[i] = i
	}
	return u
}

// SetBirth sets the birth weight of vertex i. Only meaningful before
// any Link involving i.
func (u *UnionFind) SetBirth(i int, birth float32) {
	u.birth[i] = birth
}

// Birth returns the birth weight recorded for x. For a root this is
// the minimum birth of everything merged into its component.
func (u *UnionFind) Birth(x int) float32 {
	return u.birth[x]
}

// Find returns the root of x, compressing the path as it walks.
// Iterative on purpose: recursion depth would be unbounded for
// adversarial link orders on large n.
func (u *UnionFind) Find(x int) int {
	root := x
	for u.parent[root] != root {
		root = u.parent[root]
	}
	for u.parent[x] != root {
		u.parent[x], x = root, u.parent[x]
	}
	return root
}

// Link merges the components rooted at x and y by rank. The surviving
// root's birth becomes the minimum of the two roots' births. Both
// arguments must be roots.
func (u *UnionFind) Link(x, y int) {
	if x == y {
		return
	}
	if u.rank[x] > u.rank[y] {
		u.parent[y] = x
		u.birth[x] = min(u.birth[x], u.birth[y])
		return
	}
	u.parent[x] = y
	u.birth[y] = min(u.birth[x], u.birth[y])
	if u.rank[x] == u.rank[y] {
		u.rank[y]++
	}
}
