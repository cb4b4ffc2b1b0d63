// Package region implements the fixed 125-node geographic hierarchy and
// the per-node secondary index keyed on rental duration.
package region

import "sort"

// Entry is a lightweight back-reference into the dense offer store: the
// rental window plus the store index. It owns no payload.
type Entry struct {
	StartDate uint64
	EndDate   uint64
	Idx       uint32
}

// node holds, for one region, the duration-bucketed, start-date-sorted
// offer references.
type node struct {
	offersByDuration map[uint64][]Entry
}

// Index is the RegionIndex: a static 125-node tree plus, per node, a
// mapping from rental-duration-in-days to a start-date-ordered list of
// Entry. It has no internal locking; callers (internal/query.Engine)
// hold the RegionIndex read/write guard for the duration of a call.
type Index struct {
	tree     *Tree
	nodes    [NumNodes]node
	subtrees *subtreeCache
}

// New builds an Index over the embedded static hierarchy, with all
// per-region duration maps empty.
func New() *Index {
	tree := loadTree()
	idx := &Index{tree: tree, subtrees: newSubtreeCache(tree)}
	for i := range idx.nodes {
		idx.nodes[i].offersByDuration = make(map[uint64][]Entry)
	}
	return idx
}

// Valid reports whether id names an existing region node (0..124).
func (x *Index) Valid(id uint8) bool {
	return x.tree.Valid(id)
}

// Insert places entry into the duration bucket of regionID, keeping the
// bucket sorted ascending by StartDate with ties broken by Idx.
func (x *Index) Insert(regionID uint8, durationDays uint64, entry Entry) {
	n := &x.nodes[regionID]
	bucket := n.offersByDuration[durationDays]

	i := sort.Search(len(bucket), func(i int) bool {
		if bucket[i].StartDate != entry.StartDate {
			return bucket[i].StartDate >= entry.StartDate
		}
		return bucket[i].Idx >= entry.Idx
	})
	bucket = append(bucket, Entry{})
	copy(bucket[i+1:], bucket[i:])
	bucket[i] = entry
	n.offersByDuration[durationDays] = bucket
}

// Candidates walks the subtree rooted at regionID, depth-first, and
// invokes yield for every Entry whose duration matches durationDays and
// whose window satisfies tStart <= StartDate <= tEnd and EndDate <= tEnd.
// Within each region's duration bucket, the scan starts at the first
// entry with StartDate >= tStart and stops as soon as StartDate > tEnd.
// Sibling region visitation order is unspecified.
func (x *Index) Candidates(regionID uint8, durationDays uint64, tStart, tEnd uint64, yield func(Entry)) {
	for _, rid := range x.subtrees.get(regionID) {
		bucket := x.nodes[rid].offersByDuration[durationDays]
		if len(bucket) == 0 {
			continue
		}
		start := sort.Search(len(bucket), func(i int) bool {
			return bucket[i].StartDate >= tStart
		})
		for i := start; i < len(bucket); i++ {
			e := bucket[i]
			if e.StartDate > tEnd {
				break
			}
			if e.EndDate <= tEnd {
				yield(e)
			}
		}
	}
}

// ClearOffers empties every region node's duration map. The static
// region tree itself is untouched.
func (x *Index) ClearOffers() {
	for i := range x.nodes {
		x.nodes[i].offersByDuration = make(map[uint64][]Entry)
	}
}
