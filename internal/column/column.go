// Package column provides the simplex entry types and the working
// column used by the matrix reduction.
//
// The working column is a binary heap whose top is the entry with the
// smallest diameter, breaking ties towards the largest index. That
// inverted tie-break is what groups entries of equal index at the top
// of the heap so the reduction can collapse them with a single
// modular sum per pop run.
package column

// DiameterIndex is a simplex tagged with its filtration diameter.
type DiameterIndex struct {
	Diameter float32
	Index    int64
}

// Entry is a DiameterIndex carrying a field coefficient.
type Entry struct {
	Diameter    float32
	Index       int64
	Coefficient int16
}

// Less reports whether a pops before b: smallest diameter first,
// largest index on ties.
func Less(a, b Entry) bool {
	if a.Diameter != b.Diameter {
		return a.Diameter < b.Diameter
	}
	return a.Index > b.Index
}

// Heap is a value-based binary heap of Entries ordered by Less.
// Value storage keeps the hot reduction loop allocation-free once the
// backing slice has grown.
type Heap struct {
	items []Entry
}

// NewHeap returns a heap with the given initial capacity.
func NewHeap(capacity int) *Heap {
	return &Heap{items: make([]Entry, 0, capacity)}
}

// Len returns the number of entries in the heap.
func (h *Heap) Len() int { return len(h.items) }

// Peek returns the top entry without removing it.
func (h *Heap) Peek() (Entry, bool) {
	if len(h.items) == 0 {
		return Entry{}, false
	}
	return h.items[0], true
}

// Push inserts an entry while maintaining the heap invariant.
func (h *Heap) Push(e Entry) {
	h.items = append(h.items, e)
	h.siftUp(len(h.items) - 1)
}

// Pop removes and returns the top entry.
func (h *Heap) Pop() (Entry, bool) {
	n := len(h.items)
	if n == 0 {
		return Entry{}, false
	}
	root := h.items[0]
	last := h.items[n-1]
	h.items[n-1] = Entry{}
	h.items = h.items[:n-1]
	if n-1 > 0 {
		h.items[0] = last
		h.siftDown(0)
	}
	return root, true
}

// Reset clears the heap for reuse without releasing the backing slice.
func (h *Heap) Reset() {
	h.items = h.items[:0]
}

func (h *Heap) less(i, j int) bool {
	return Less(h.items[i], h.items[j])
}

func (h *Heap) siftUp(i int) {
	for i > 0 {
		p := (i - 1) / 2
		if !h.less(i, p) {
			return
		}
		h.items[i], h.items[p] = h.items[p], h.items[i]
		i = p
	}
}

func (h *Heap) siftDown(i int) {
	n := len(h.items)
	for {
		l := 2*i + 1
		if l >= n {
			return
		}
		best := l
		if r := l + 1; r < n && h.less(r, l) {
			best = r
		}
		if !h.less(best, i) {
			return
		}
		h.items[i], h.items[best] = h.items[best], h.items[i]
		i = best
	}
}
