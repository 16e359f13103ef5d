package rtree

import (
	"math/rand"
	"sort"
	"time"
)

// BulkLoad builds a new tree from items in one pass, optimised for minimal
// node overlap rather than incremental fan-out growth. It is a supplemented
// construction convenience, not a new core operation: it produces a root
// using the same leaf and branch node shapes single-entry Insert produces,
// and performs no in-place mutation of any existing tree.
//
// Items are sorted along the widest axis, then built level-by-level rather
// than via raw recursive bisection: a plain binary split can leave leaves
// at uneven depths once the item count isn't a power of two, which would
// violate the same-height invariant every other tree version in this
// package satisfies. Grouping synchronously level by level, the way a
// B-tree bulk load does, keeps every leaf at the same depth by
// construction.
func BulkLoad[V comparable](items []Entry[V], policy Policy, opts ...Option[V]) *RTree[V] {
	if len(items) == 0 {
		return New[V](policy, opts...)
	}
	cp := make([]Entry[V], len(items))
	copy(cp, items)
	sortEntriesByWidestAxis(cp)

	t := &RTree[V]{
		root:   buildLevels(leavesFrom(cp, policy), policy),
		policy: policy,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func sortEntriesByWidestAxis[V comparable](items []Entry[V]) {
	box := newLeafBox(items)
	if box.MaxX-box.MinX > box.MaxY-box.MinY {
		sort.Slice(items, func(i, j int) bool { return items[i].Pt.X < items[j].Pt.X })
	} else {
		sort.Slice(items, func(i, j int) bool { return items[i].Pt.Y < items[j].Pt.Y })
	}
}

// leavesFrom partitions items (already sorted along the widest axis) into
// the bottom level of leaves, sized as evenly as possible so that no leaf
// ends up smaller than necessary.
func leavesFrom[V comparable](items []Entry[V], policy Policy) []Node[V] {
	sizes := balancedChunkSizes(len(items), policy.MaxEntries)
	nodes := make([]Node[V], 0, len(sizes))
	idx := 0
	for _, sz := range sizes {
		grp := append([]Entry[V]{}, items[idx:idx+sz]...)
		nodes = append(nodes, &leaf[V]{children: grp, box: newLeafBox(grp)})
		idx += sz
	}
	return nodes
}

// buildLevels repeatedly groups the current level's nodes into branches of
// at most policy.MaxEntries children until a single root remains.
func buildLevels[V comparable](level []Node[V], policy Policy) Node[V] {
	for len(level) > 1 {
		if len(level) <= policy.MaxEntries {
			return &branch[V]{children: level, box: newBranchBox(level)}
		}
		sizes := balancedChunkSizes(len(level), policy.MaxEntries)
		next := make([]Node[V], 0, len(sizes))
		idx := 0
		for _, sz := range sizes {
			grp := append([]Node[V]{}, level[idx:idx+sz]...)
			next = append(next, &branch[V]{children: grp, box: newBranchBox(grp)})
			idx += sz
		}
		level = next
	}
	return level[0]
}

// balancedChunkSizes splits n items into ceil(n/maxSize) groups whose sizes
// differ by at most one, so that no group ends up anomalously small the
// way a naive fixed-size chunking would on an unlucky remainder.
func balancedChunkSizes(n, maxSize int) []int {
	groups := (n + maxSize - 1) / maxSize
	if groups < 1 {
		groups = 1
	}
	base := n / groups
	rem := n % groups
	sizes := make([]int, groups)
	for i := range sizes {
		sizes[i] = base
		if i < rem {
			sizes[i]++
		}
	}
	return sizes
}
