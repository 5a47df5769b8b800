package reduction

import "github.com/hupe1980/ripsgo/internal/column"

// compressedSparseMatrix is the append-only, column-compressed store
// for the reduction (V) matrix. Columns are only ever appended in
// reduction order and only the most recent column is mutable.
type compressedSparseMatrix struct {
	bounds  []int
	entries []column.Entry
}

func (m *compressedSparseMatrix) size() int { return len(m.bounds) }

// appendColumn starts a new, initially empty column.
func (m *compressedSparseMatrix) appendColumn() {
	m.bounds = append(m.bounds, len(m.entries))
}

// pushBack appends an entry to the most recently started column.
func (m *compressedSparseMatrix) pushBack(e column.Entry) {
	m.entries = append(m.entries, e)
	m.bounds[len(m.bounds)-1]++
}

// popBack removes the last entry of the most recently started column.
func (m *compressedSparseMatrix) popBack() {
	m.entries = m.entries[:len(m.entries)-1]
	m.bounds[len(m.bounds)-1]--
}

// subrange returns the entries of column i.
func (m *compressedSparseMatrix) subrange(i int) []column.Entry {
	start := 0
	if i > 0 {
		start = m.bounds[i-1]
	}
	return m.entries[start:m.bounds[i]]
}
