package rtree

import (
	"container/heap"
	"sort"

	"github.com/clbanning/persistrtree/geom"
)

// nearest recurses over n using best-first pruning, returning the closest
// entry to pt within radius dist (an exclusive upper bound) along with the
// updated bound and whether anything was found.
func nearest[V comparable](n Node[V], pt geom.Point, dist float32) (best Entry[V], found bool, newDist float32) {
	switch t := n.(type) {
	case *leaf[V]:
		for _, e := range t.children {
			if d := e.Pt.Distance(pt); d < dist {
				dist = d
				best = e
				found = true
			}
		}
		return best, found, dist
	case *branch[V]:
		order := orderChildrenByDistance(t.children, pt)
		for _, o := range order {
			if o.dist >= dist {
				break
			}
			childBest, childFound, childDist := nearest(t.children[o.idx], pt, dist)
			if childFound {
				best, found, dist = childBest, true, childDist
			}
		}
		return best, found, dist
	default:
		panic("rtree: unreachable node variant")
	}
}

// pqItem is a (distance, entry) pair held in the bounded max-heap used by
// nearestK.
type pqItem[V comparable] struct {
	dist  float32
	entry Entry[V]
}

// maxHeap is a container/heap max-heap ordered by distance, so the worst
// (farthest) candidate is always at the top and is what gets evicted once
// the heap overflows k entries.
type maxHeap[V comparable] []pqItem[V]

func (h maxHeap[V]) Len() int            { return len(h) }
func (h maxHeap[V]) Less(i, j int) bool  { return h[i].dist > h[j].dist }
func (h maxHeap[V]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *maxHeap[V]) Push(x interface{}) { *h = append(*h, x.(pqItem[V])) }
func (h *maxHeap[V]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// nearestK recurses over n, accumulating the top-k closest entries to pt
// into pq. It returns the final pruning distance; while pq holds fewer
// than k entries that distance remains the caller-supplied d0, only
// becoming the k-th-best distance once the heap first overflows.
func nearestK[V comparable](n Node[V], pt geom.Point, k int, pq *maxHeap[V], dist float32) float32 {
	switch t := n.(type) {
	case *leaf[V]:
		for _, e := range t.children {
			d := e.Pt.Distance(pt)
			if d >= dist {
				continue
			}
			heap.Push(pq, pqItem[V]{dist: d, entry: e})
			if pq.Len() > k {
				popped := heap.Pop(pq).(pqItem[V])
				dist = popped.dist
			}
		}
		return dist
	case *branch[V]:
		order := orderChildrenByDistance(t.children, pt)
		for _, o := range order {
			if o.dist >= dist {
				break
			}
			dist = nearestK(t.children[o.idx], pt, k, pq, dist)
		}
		return dist
	default:
		panic("rtree: unreachable node variant")
	}
}

type childOrder struct {
	idx  int
	dist float32
}

// orderChildrenByDistance sorts children by ascending box-distance to pt,
// the best-first traversal order shared by nearest and nearestK.
func orderChildrenByDistance[V comparable](children []Node[V], pt geom.Point) []childOrder {
	order := make([]childOrder, len(children))
	for i, c := range children {
		order[i] = childOrder{idx: i, dist: c.Box().Distance(pt)}
	}
	sort.Slice(order, func(i, j int) bool { return order[i].dist < order[j].dist })
	return order
}
