package reduction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/ripsgo/internal/column"
)

func TestCompressedSparseMatrix(t *testing.T) {
	m := &compressedSparseMatrix{}

	m.appendColumn()
	m.pushBack(column.Entry{Index: 1, Coefficient: 1})
	m.pushBack(column.Entry{Index: 4, Coefficient: 2})

	m.appendColumn()

	m.appendColumn()
	m.pushBack(column.Entry{Index: 9, Coefficient: 1})
	m.pushBack(column.Entry{Index: 2, Coefficient: 1})
	m.popBack()

	require.Equal(t, 3, m.size())

	col0 := m.subrange(0)
	require.Len(t, col0, 2)
	assert.Equal(t, int64(1), col0[0].Index)
	assert.Equal(t, int64(4), col0[1].Index)

	assert.Empty(t, m.subrange(1))

	col2 := m.subrange(2)
	require.Len(t, col2, 1)
	assert.Equal(t, int64(9), col2[0].Index)
}
