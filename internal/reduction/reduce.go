package reduction

import (
	"fmt"

	"github.com/hupe1980/ripsgo/distmat"
	"github.com/hupe1980/ripsgo/internal/column"
)

// pivotRef records which reduction column claimed a pivot index, and
// the pivot's coefficient there (needed to compute cancelling
// factors).
type pivotRef struct {
	column      int
	coefficient int16
}

// popPivot pops entries off the working column, summing runs that
// share the top index modulo the field. The first entry with a
// different index stays in the column; the accumulated pivot is
// returned, with index -1 if everything cancelled.
func (e *engine) popPivot(c *column.Heap) column.Entry {
	pivot := column.Entry{Index: -1}
	for {
		top, ok := c.Peek()
		if !ok {
			break
		}
		if pivot.Coefficient == 0 {
			pivot = top
		} else if top.Index != pivot.Index {
			return pivot
		} else {
			pivot.Coefficient = int16((int(pivot.Coefficient) + int(top.Coefficient)) % int(e.modulus))
		}
		c.Pop()
	}
	if pivot.Coefficient == 0 {
		return column.Entry{Index: -1}
	}
	return pivot
}

// getPivot is the non-destructive variant of popPivot.
func (e *engine) getPivot(c *column.Heap) column.Entry {
	pivot := e.popPivot(c)
	if pivot.Index != -1 {
		c.Push(pivot)
	}
	return pivot
}

// initCoboundaryAndGetPivot enumerates all cofacets of the column
// being reduced, filters by threshold, and checks for an emergent
// pair: if the first surviving cofacet shares the simplex's diameter
// and is unclaimed, it is returned immediately and no reduction work
// is needed for this column.
func (e *engine) initCoboundaryAndGetPivot(simplex column.Entry, workingCoboundary *column.Heap, dim int, pivots map[int64]pivotRef) column.Entry {
	checkEmergent := true
	e.cofacetScratch = e.cofacetScratch[:0]

	cofacets := e.newCoboundary(simplex, dim)
	for cofacets.hasNext(true) {
		cofacet := cofacets.next()
		if cofacet.Diameter > e.threshold {
			continue
		}
		e.cofacetScratch = append(e.cofacetScratch, cofacet)
		if checkEmergent && simplex.Diameter == cofacet.Diameter {
			if _, claimed := pivots[cofacet.Index]; !claimed {
				e.stats.EmergentPairs++
				return cofacet
			}
			checkEmergent = false
		}
	}

	for _, cofacet := range e.cofacetScratch {
		workingCoboundary.Push(cofacet)
	}
	return e.getPivot(workingCoboundary)
}

// addSimplexCoboundary adds one simplex (scaled into the current
// factor) to the working reduction column and its coboundary to the
// working coboundary.
func (e *engine) addSimplexCoboundary(simplex column.Entry, dim int, workingReduction, workingCoboundary *column.Heap) {
	workingReduction.Push(simplex)
	cofacets := e.newCoboundary(simplex, dim)
	for cofacets.hasNext(true) {
		cofacet := cofacets.next()
		if cofacet.Diameter <= e.threshold {
			workingCoboundary.Push(cofacet)
		}
	}
}

// addCoboundary adds factor times an earlier reduction column (its
// own simplex plus its stored reduction entries) into the working
// structures.
func (e *engine) addCoboundary(reductionMatrix *compressedSparseMatrix, columns []column.DiameterIndex, columnToAdd int, factor int16, dim int, workingReduction, workingCoboundary *column.Heap) {
	colSimplex := column.Entry{
		Diameter:    columns[columnToAdd].Diameter,
		Index:       columns[columnToAdd].Index,
		Coefficient: factor,
	}
	e.addSimplexCoboundary(colSimplex, dim, workingReduction, workingCoboundary)

	for _, entry := range reductionMatrix.subrange(columnToAdd) {
		entry.Coefficient = int16(int(entry.Coefficient) * int(factor) % int(e.modulus))
		e.addSimplexCoboundary(entry, dim, workingReduction, workingCoboundary)
	}
}

// computePairs reduces the given candidate columns of dimension dim,
// appending the resulting persistence pairs and registering claimed
// pivots for the clearing of dimension dim+1.
func (e *engine) computePairs(columns []column.DiameterIndex, pivots map[int64]pivotRef, dim int) {
	reductionMatrix := &compressedSparseMatrix{}
	workingReduction := column.NewHeap(16)
	workingCoboundary := column.NewHeap(64)

	for i, col := range columns {
		e.stats.ColumnsReduced++

		colEntry := column.Entry{Diameter: col.Diameter, Index: col.Index, Coefficient: 1}
		diameter := col.Diameter

		reductionMatrix.appendColumn()
		workingReduction.Reset()
		workingCoboundary.Reset()
		workingReduction.Push(colEntry)

		pivot := e.initCoboundaryAndGetPivot(colEntry, workingCoboundary, dim, pivots)

		for {
			if pivot.Index == -1 {
				// Nothing left to cancel: essential class.
				e.pairs[dim] = append(e.pairs[dim], Pair{Birth: diameter, Death: distmat.Inf})
				break
			}

			if ref, claimed := pivots[pivot.Index]; claimed {
				factor := int16(int(e.modulus) - int(pivot.Coefficient)*int(e.inverse[ref.coefficient])%int(e.modulus))
				e.addCoboundary(reductionMatrix, columns, ref.column, factor, dim, workingReduction, workingCoboundary)
				pivot = e.getPivot(workingCoboundary)
				continue
			}

			if death := pivot.Diameter; death > diameter*e.ratio {
				e.pairs[dim] = append(e.pairs[dim], Pair{Birth: diameter, Death: death})
			}
			pivots[pivot.Index] = pivotRef{column: i, coefficient: pivot.Coefficient}

			// The first pop is the column's own simplex; the stored
			// reduction column holds everything added on top of it.
			e.popPivot(workingReduction)
			for {
				entry := e.popPivot(workingReduction)
				if entry.Index == -1 {
					break
				}
				if entry.Coefficient <= 0 {
					panic(fmt.Sprintf("reduction: non-positive coefficient %d in stored column %d", entry.Coefficient, i))
				}
				reductionMatrix.pushBack(entry)
			}
			break
		}
	}
}
