package openlist

import (
	"container/heap"

	"github.com/eyal-weiss/laddersearch/evaluation"
)

// Heap is a binary min-heap OpenList ordered by Entry.Value, ties broken
// by insertion order (earlier insertions win). It never decrease-keys an
// existing entry in place; callers push a fresh, tighter Entry on every
// improvement and let stale ones go stale, exactly the pattern the
// teacher's Dijkstra uses for its own priority queue.
type Heap struct {
	items  itemPQ
	seq    int
}

// NewHeap returns an empty Heap.
func NewHeap() *Heap {
	return &Heap{}
}

func (h *Heap) Insert(_ evaluation.Context, entry Entry) {
	heap.Push(&h.items, &item{entry: entry, seq: h.seq})
	h.seq++
}

func (h *Heap) RemoveMin() (Entry, bool) {
	if len(h.items) == 0 {
		return Entry{}, false
	}
	it := heap.Pop(&h.items).(*item)
	return it.entry, true
}

func (h *Heap) Empty() bool { return len(h.items) == 0 }

// IsDeadEnd always answers false: Heap carries no heuristic of its own,
// so dead-end detection is the evaluator/engine layer's job, not the
// open list's.
func (h *Heap) IsDeadEnd(_ evaluation.Context) bool { return false }

func (h *Heap) Clear() { h.items = nil }

// BoostPreferred is a no-op for Heap; see OpenList.BoostPreferred.
func (h *Heap) BoostPreferred() {}

type item struct {
	entry Entry
	seq   int // insertion order, for stable tie-breaking
}

type itemPQ []*item

func (pq itemPQ) Len() int { return len(pq) }

func (pq itemPQ) Less(i, j int) bool {
	if pq[i].entry.Value != pq[j].entry.Value {
		return pq[i].entry.Value < pq[j].entry.Value
	}
	return pq[i].seq < pq[j].seq
}

func (pq itemPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *itemPQ) Push(x interface{}) { *pq = append(*pq, x.(*item)) }

func (pq *itemPQ) Pop() interface{} {
	old := *pq
	n := len(old)
	it := old[n-1]
	*pq = old[:n-1]
	return it
}
