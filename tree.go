// Package rtree implements an in-memory, persistent R-tree: a
// balanced, height-varying search tree over two-dimensional point entries,
// indexed by axis-aligned bounding boxes. Insert and Remove return a new
// tree value that shares unchanged subtrees with the tree it was derived
// from; no existing tree value is ever mutated.
package rtree

import (
	"container/heap"
	"io"
	"math/rand"
	"time"

	"github.com/clbanning/persistrtree/geom"
)

// RTree is the public entry point: it holds the current root and re-drives
// orphan reinsertion after a Remove. Its zero value is not ready to use;
// construct one with New or NewDefault.
type RTree[V comparable] struct {
	root   Node[V]
	policy Policy
	rng    *rand.Rand
}

// Option configures a tree constructed by New.
type Option[V comparable] func(*RTree[V])

// WithRand injects the pseudo-random source used to break split
// distribution ties, letting tests pin the tie-break behaviour. The
// default source is seeded from the current time.
func WithRand[V comparable](rng *rand.Rand) Option[V] {
	return func(t *RTree[V]) { t.rng = rng }
}

// New constructs an empty tree under policy.
func New[V comparable](policy Policy, opts ...Option[V]) *RTree[V] {
	t := &RTree[V]{
		root:   &leaf[V]{box: geom.Empty},
		policy: policy,
		rng:    rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// NewDefault constructs an empty tree under DefaultPolicy.
func NewDefault[V comparable](opts ...Option[V]) *RTree[V] {
	return New[V](DefaultPolicy(), opts...)
}

// Policy returns the tree's fan-out policy.
func (t *RTree[V]) Policy() Policy { return t.policy }

// Insert returns a new tree containing every entry of t plus e. The
// receiver is left unchanged.
func (t *RTree[V]) Insert(e Entry[V]) *RTree[V] {
	replacement, split := insertNode(t.root, e, t.policy, t.rng)
	var newRoot Node[V]
	if split == nil {
		newRoot = replacement
	} else {
		newRoot = &branch[V]{children: split, box: newBranchBox(split)}
	}
	return &RTree[V]{root: newRoot, policy: t.policy, rng: t.rng}
}

// Remove returns a new tree containing every entry of t except e, and
// reports whether e was present. If e was not present, the returned tree
// is t itself and ok is false. Entries orphaned by cascading underflow are
// reinserted before Remove returns: no caller ever observes a tree with a
// temporarily-violated height invariant.
func (t *RTree[V]) Remove(e Entry[V]) (result *RTree[V], ok bool) {
	res := removeFromNode(t.root, e)
	if !res.found {
		return t, false
	}

	var newRoot Node[V]
	if res.replacement != nil {
		newRoot = res.replacement
	} else {
		newRoot = &leaf[V]{box: geom.Empty}
	}
	cur := &RTree[V]{root: newRoot, policy: t.policy, rng: t.rng}

	res.orphans.forEach(func(o Entry[V]) {
		cur = cur.Insert(o)
	})
	return cur, true
}

// VisitSearch calls visit for every entry whose point lies in space, in
// children order. visit may return Stop to end the search early without
// that being treated as a failure; any other non-nil error aborts the
// search and is returned from VisitSearch. A non-finite space yields no
// calls to visit.
func (t *RTree[V]) VisitSearch(space geom.Box, visit func(Entry[V]) error) error {
	if !space.IsFinite() {
		return nil
	}
	err := search(t.root, space, visit)
	if err == Stop {
		return nil
	}
	return err
}

// Search returns every entry whose point lies in space (order unspecified
// beyond the children-order VisitSearch produces). A non-finite space
// yields an empty result.
func (t *RTree[V]) Search(space geom.Box) []Entry[V] {
	var out []Entry[V]
	t.VisitSearch(space, func(e Entry[V]) error {
		out = append(out, e)
		return nil
	})
	return out
}

// Count returns len(t.Search(space)) without materializing the entries. A
// non-finite space yields 0.
func (t *RTree[V]) Count(space geom.Box) int {
	if !space.IsFinite() {
		return 0
	}
	return count(t.root, space)
}

// Nearest returns the single closest entry to pt within radius d0
// (exclusive). ok is false if no entry within distance < d0 exists.
func (t *RTree[V]) Nearest(pt geom.Point, d0 float32) (entry Entry[V], ok bool) {
	best, found, _ := nearest(t.root, pt, d0)
	return best, found
}

// NearestK returns up to k entries closest to pt within radius d0
// (exclusive), sorted by ascending distance. Fewer than k entries are
// returned if the tree does not hold that many within range.
func (t *RTree[V]) NearestK(pt geom.Point, k int, d0 float32) []Entry[V] {
	if k <= 0 {
		return nil
	}
	pq := &maxHeap[V]{}
	nearestK(t.root, pt, k, pq, d0)

	out := make([]Entry[V], pq.Len())
	for i := len(out) - 1; i >= 0; i-- {
		out[i] = heap.Pop(pq).(pqItem[V]).entry
	}
	return out
}

// Contains reports whether e (compared by full point-and-value equality)
// is present in the tree.
func (t *RTree[V]) Contains(e Entry[V]) bool {
	found := false
	t.VisitSearch(e.Pt.ToBox(), func(cand Entry[V]) error {
		if cand.equal(e) {
			found = true
			return Stop
		}
		return nil
	})
	return found
}

// Extent returns the box that most closely bounds every entry in the tree.
// ok is false if the tree is empty.
func (t *RTree[V]) Extent() (geom.Box, bool) {
	if t.root.Box() == geom.Empty {
		return geom.Box{}, false
	}
	return t.root.Box(), true
}

// Entries materializes every entry in the tree, in children order.
func (t *RTree[V]) Entries() []Entry[V] {
	return t.root.Entries()
}

// Iterate returns a restartable pull iterator over every entry in the
// tree.
func (t *RTree[V]) Iterate() func() (Entry[V], bool) {
	return t.root.Iterate()
}

// Pretty writes a human-readable, multi-line dump of the tree to w.
func (t *RTree[V]) Pretty(w io.Writer) {
	t.root.Pretty(w, 0)
}
