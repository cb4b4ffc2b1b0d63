package region

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// subtreeCache memoizes the depth-first flattening of each region's
// descendant subtree. The hierarchy is static, so a subtree order never
// changes once computed; the cache exists only to avoid re-walking the
// tree on every query and to collapse concurrent first-time computations
// for the same region onto a single walk, mirroring the PLEX-dashboard
// build coalescing pattern used elsewhere in this codebase's ancestry.
type subtreeCache struct {
	tree  *Tree
	mu    sync.RWMutex
	order map[uint8][]uint8
	group singleflight.Group
}

func newSubtreeCache(tree *Tree) *subtreeCache {
	return &subtreeCache{
		tree:  tree,
		order: make(map[uint8][]uint8, NumNodes),
	}
}

// get returns the DFS-flattened list of region ids in root's subtree,
// including root itself. Sibling order within the walk is unspecified
// and callers must not depend on it.
func (c *subtreeCache) get(root uint8) []uint8 {
	c.mu.RLock()
	if o, ok := c.order[root]; ok {
		c.mu.RUnlock()
		return o
	}
	c.mu.RUnlock()

	key := strconv.Itoa(int(root))
	v, _, _ := c.group.Do(key, func() (interface{}, error) {
		c.mu.RLock()
		if o, ok := c.order[root]; ok {
			c.mu.RUnlock()
			return o, nil
		}
		c.mu.RUnlock()

		o := c.walk(root)

		c.mu.Lock()
		c.order[root] = o
		c.mu.Unlock()
		return o, nil
	})
	return v.([]uint8)
}

// walk performs the iterative stack-based depth-first traversal specified
// for RegionIndex.candidates.
func (c *subtreeCache) walk(root uint8) []uint8 {
	var order []uint8
	stack := []uint8{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		order = append(order, n)
		stack = append(stack, c.tree.Children(n)...)
	}
	return order
}
