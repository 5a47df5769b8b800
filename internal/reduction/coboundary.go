package reduction

import (
	"fmt"

	"github.com/hupe1980/ripsgo/internal/column"
)

// coboundaryEnumerator produces the cofacets of a simplex by trying
// added vertices from n-1 downwards, re-deriving each cofacet's
// encoded index incrementally from the running idxBelow/idxAbove/v/k
// state instead of re-encoding from scratch.
type coboundaryEnumerator struct {
	idxBelow int64
	idxAbove int64
	v        int64
	k        int64
	vertices []int64
	simplex  column.Entry
	e        *engine
}

func (e *engine) newCoboundary(simplex column.Entry, dim int) coboundaryEnumerator {
	return coboundaryEnumerator{
		idxBelow: simplex.Index,
		idxAbove: 0,
		v:        int64(e.n) - 1,
		k:        int64(dim) + 1,
		vertices: e.binom.Vertices(simplex.Index, dim, int64(e.n), nil),
		simplex:  simplex,
		e:        e,
	}
}

// hasNext reports whether another cofacet exists. With allCofacets
// false, enumeration stops once the added vertex would fall below the
// simplex's top vertex; that mode is only used when assembling the
// next dimension's candidates, where each cofacet must be produced
// from exactly one facet.
func (c *coboundaryEnumerator) hasNext(allCofacets bool) bool {
	return c.v >= c.k && (allCofacets || c.e.binom.Get(c.v, c.k) > c.idxBelow)
}

// next returns the cofacet obtained by inserting the current
// candidate vertex. The diameter is the max over the new vertex's
// distances to the existing vertices; the coefficient alternates sign
// with the insertion position.
func (c *coboundaryEnumerator) next() column.Entry {
	binom := c.e.binom
	for binom.Get(c.v, c.k) <= c.idxBelow {
		c.idxBelow -= binom.Get(c.v, c.k)
		c.idxAbove += binom.Get(c.v+1, c.k+1)
		c.v--
		c.k--
		if c.k < 0 {
			panic(fmt.Sprintf("reduction: coboundary state underflow for simplex %d", c.simplex.Index))
		}
	}

	diameter := c.simplex.Diameter
	for _, w := range c.vertices {
		diameter = max(diameter, c.e.dist.Get(int(c.v), int(w)))
	}

	index := c.idxAbove + binom.Get(c.v, c.k+1) + c.idxBelow
	c.v--

	coefficient := c.simplex.Coefficient
	if c.k&1 == 1 {
		coefficient = int16(int(c.e.modulus-1) * int(coefficient) % int(c.e.modulus))
	}

	return column.Entry{Diameter: diameter, Index: index, Coefficient: coefficient}
}
