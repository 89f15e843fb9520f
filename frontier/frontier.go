// Package frontier provides the min-priority queue that drives grid searches.
//
// The queue has no decrease-key. Callers push a cell again whenever they find
// a cheaper key for it and discard the outdated ("stale") entries when they pop
// them, typically by checking a visited set. This lazy-deletion scheme keeps
// every operation O(log n) at the price of extra entries.
//
// Entries with equal keys pop in insertion order, so a search driven by a
// Frontier visits cells in the same order on every run.
package frontier

import (
	"container/heap"

	"github.com/katalvlaran/terrainpath/terrain"
)

// entry is a queued (cell, key) pair; seq records insertion order for tie-breaks.
type entry struct {
	cell terrain.Cell
	key  int64
	seq  uint64
}

// entryHeap is a min-heap of entries ordered by (key, seq).
type entryHeap []entry

// Len returns the number of entries in the heap.
func (h entryHeap) Len() int { return len(h) }

// Less orders by key, then by insertion sequence.
func (h entryHeap) Less(i, j int) bool {
	if h[i].key != h[j].key {
		return h[i].key < h[j].key
	}
	return h[i].seq < h[j].seq
}

// Swap swaps two entries.
func (h entryHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push is called by heap.Push; x must be an entry.
func (h *entryHeap) Push(x interface{}) { *h = append(*h, x.(entry)) }

// Pop is called by heap.Pop and removes the last element.
func (h *entryHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]

	return item
}

// Frontier is a min-priority queue of (cell, key) pairs that accepts duplicates.
// A Frontier is owned by a single search and is not safe for concurrent use.
type Frontier struct {
	items entryHeap
	seq   uint64
}

// New returns an empty Frontier with room for capacity entries.
func New(capacity int) *Frontier {
	if capacity < 0 {
		capacity = 0
	}
	return &Frontier{items: make(entryHeap, 0, capacity)}
}

// Push inserts (c, key) unconditionally, even if c is already queued.
// Complexity: O(log n).
func (f *Frontier) Push(c terrain.Cell, key int64) {
	heap.Push(&f.items, entry{cell: c, key: key, seq: f.seq})
	f.seq++
}

// Pop removes and returns the entry with the smallest key. ok is false when
// the Frontier is empty.
// Complexity: O(log n).
func (f *Frontier) Pop() (c terrain.Cell, key int64, ok bool) {
	if len(f.items) == 0 {
		return terrain.Cell{}, 0, false
	}
	e := heap.Pop(&f.items).(entry)

	return e.cell, e.key, true
}

// Empty reports whether no entries remain.
func (f *Frontier) Empty() bool { return len(f.items) == 0 }

// Len returns the number of queued entries, stale ones included.
func (f *Frontier) Len() int { return len(f.items) }
