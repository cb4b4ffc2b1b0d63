package query

import "container/heap"

// pageItem is one included offer carried in the bounded page-window
// heap: sortKey already encodes the requested direction (price itself
// for ascending, its bitwise complement for descending), so the heap
// and the final drain only ever need to compare ascending by sortKey,
// then ascending by id on ties.
type pageItem struct {
	sortKey uint64
	id      string
	data    string
}

// less reports whether a sorts strictly before b: ascending by sortKey,
// ties broken by id.
func (a pageItem) less(b pageItem) bool {
	if a.sortKey != b.sortKey {
		return a.sortKey < b.sortKey
	}
	return a.id < b.id
}

// pageHeap is a bounded max-heap over pageItem ordered by less, i.e. its
// root is always the current worst (largest) item in the window. It uses
// the usual container/heap priority-queue shape, with Less inverted so
// the largest item surfaces.
type pageHeap []pageItem

func (h pageHeap) Len() int { return len(h) }
func (h pageHeap) Less(i, j int) bool {
	// Inverted: container/heap maintains the minimum at the root under
	// Less; flipping the comparison makes the root the maximum instead.
	return h[j].less(h[i])
}
func (h pageHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *pageHeap) Push(x interface{}) {
	*h = append(*h, x.(pageItem))
}
func (h *pageHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// pageWindow bounds a pageHeap to capacity items, keeping the capacity
// smallest items seen under less.
type pageWindow struct {
	capacity int
	h        pageHeap
}

func newPageWindow(capacity int) *pageWindow {
	return &pageWindow{capacity: capacity}
}

// offer considers item for inclusion in the bounded window.
func (w *pageWindow) offer(item pageItem) {
	if w.capacity <= 0 {
		return
	}
	if len(w.h) < w.capacity {
		heap.Push(&w.h, item)
		return
	}
	if item.less(w.h[0]) {
		heap.Pop(&w.h)
		heap.Push(&w.h, item)
	}
}

// drain empties the window into a slice sorted ascending by less.
func (w *pageWindow) drain() []pageItem {
	out := make([]pageItem, len(w.h))
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(&w.h).(pageItem)
	}
	return out
}

// sortKey computes the directional sort key for price: price itself
// ascending, bitwise-complemented descending, so ascending-by-sortKey
// always yields the requested order.
func sortKey(order SortOrder, price uint32) uint64 {
	if order == PriceDesc {
		return uint64(^price)
	}
	return uint64(price)
}
