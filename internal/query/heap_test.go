package query

import "testing"

func TestSortKey_Directions(t *testing.T) {
	if sortKey(PriceAsc, 100) != 100 {
		t.Errorf("sortKey(asc, 100) = %d, want 100", sortKey(PriceAsc, 100))
	}
	lo := sortKey(PriceDesc, 200)
	hi := sortKey(PriceDesc, 100)
	if lo >= hi {
		t.Errorf("sortKey(desc, 200) = %d should sort before sortKey(desc, 100) = %d", lo, hi)
	}
}

func TestPageWindow_KeepsSmallestByLess(t *testing.T) {
	w := newPageWindow(2)
	w.offer(pageItem{sortKey: 30, id: "c"})
	w.offer(pageItem{sortKey: 10, id: "a"})
	w.offer(pageItem{sortKey: 20, id: "b"})

	got := w.drain()
	if len(got) != 2 {
		t.Fatalf("drain() len = %d, want 2", len(got))
	}
	if got[0].id != "a" || got[1].id != "b" {
		t.Fatalf("drain() = %v, want [a, b]", got)
	}
}

func TestPageWindow_TieBreakByID(t *testing.T) {
	w := newPageWindow(2)
	w.offer(pageItem{sortKey: 10, id: "z"})
	w.offer(pageItem{sortKey: 10, id: "a"})

	got := w.drain()
	if got[0].id != "a" || got[1].id != "z" {
		t.Fatalf("drain() = %v, want [a, z] (tie-break ascending by id)", got)
	}
}

func TestPageWindow_ZeroCapacity(t *testing.T) {
	w := newPageWindow(0)
	w.offer(pageItem{sortKey: 1, id: "a"})
	if got := w.drain(); len(got) != 0 {
		t.Fatalf("drain() = %v, want empty", got)
	}
}
