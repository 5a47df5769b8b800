package reduction

import (
	"cmp"
	"slices"

	"github.com/RoaringBitmap/roaring/v2/roaring64"

	"github.com/hupe1980/ripsgo/internal/column"
	"github.com/hupe1980/ripsgo/internal/conv"
)

// assembleColumns derives the candidate set of dimension dim from the
// cofacets of the surviving dimension dim-1 simplices. Cofacets
// already claimed as pivots during the previous reduction are cleared
// from the candidate list; everything within threshold feeds the next
// simplex pool. The candidates come back sorted by descending
// diameter, ascending index, the order computePairs consumes.
func (e *engine) assembleColumns(simplices []column.DiameterIndex, pivots map[int64]pivotRef, dim int) (next, columns []column.DiameterIndex) {
	seen := roaring64.New()
	next = make([]column.DiameterIndex, 0, len(simplices))
	columns = make([]column.DiameterIndex, 0, len(simplices))
	keepPool := dim < e.maxDim

	for _, simplex := range simplices {
		cofacets := e.newCoboundary(column.Entry{
			Diameter:    simplex.Diameter,
			Index:       simplex.Index,
			Coefficient: 1,
		}, dim-1)
		for cofacets.hasNext(false) {
			cofacet := cofacets.next()
			if cofacet.Diameter > e.threshold {
				continue
			}
			if !seen.CheckedAdd(conv.MustInt64ToUint64(cofacet.Index)) {
				continue
			}
			di := column.DiameterIndex{Diameter: cofacet.Diameter, Index: cofacet.Index}
			if keepPool {
				next = append(next, di)
			}
			if _, claimed := pivots[cofacet.Index]; !claimed {
				columns = append(columns, di)
			}
		}
	}

	slices.SortFunc(columns, func(a, b column.DiameterIndex) int {
		if a.Diameter != b.Diameter {
			return cmp.Compare(b.Diameter, a.Diameter)
		}
		return cmp.Compare(a.Index, b.Index)
	})

	return next, columns
}
