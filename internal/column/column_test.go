package column

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeapPopOrder(t *testing.T) {
	h := NewHeap(0)
	h.Push(Entry{Diameter: 2.0, Index: 7, Coefficient: 1})
	h.Push(Entry{Diameter: 1.0, Index: 3, Coefficient: 1})
	h.Push(Entry{Diameter: 1.0, Index: 9, Coefficient: 1})
	h.Push(Entry{Diameter: 3.0, Index: 1, Coefficient: 1})
	h.Push(Entry{Diameter: 1.0, Index: 9, Coefficient: 1})

	// Smallest diameter first; ties pop the largest index first.
	wantIndexes := []int64{9, 9, 3, 7, 1}
	for _, want := range wantIndexes {
		e, ok := h.Pop()
		require.True(t, ok)
		assert.Equal(t, want, e.Index)
	}
	_, ok := h.Pop()
	assert.False(t, ok)
}

func TestHeapPeek(t *testing.T) {
	h := NewHeap(4)
	_, ok := h.Peek()
	assert.False(t, ok)

	h.Push(Entry{Diameter: 5, Index: 2})
	h.Push(Entry{Diameter: 4, Index: 8})

	top, ok := h.Peek()
	require.True(t, ok)
	assert.Equal(t, int64(8), top.Index)
	assert.Equal(t, 2, h.Len())
}

func TestHeapReset(t *testing.T) {
	h := NewHeap(0)
	h.Push(Entry{Diameter: 1, Index: 1})
	h.Reset()
	assert.Equal(t, 0, h.Len())
	_, ok := h.Pop()
	assert.False(t, ok)
}

func TestHeapRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	h := NewHeap(0)
	entries := make([]Entry, 500)
	for i := range entries {
		entries[i] = Entry{
			Diameter: float32(rng.Intn(20)),
			Index:    int64(rng.Intn(100)),
		}
		h.Push(entries[i])
	}

	prev, ok := h.Pop()
	require.True(t, ok)
	for {
		e, ok := h.Pop()
		if !ok {
			break
		}
		require.False(t, Less(e, prev), "heap order violated: %v popped after %v", e, prev)
		prev = e
	}
}
