package rtree

import (
	"math/rand"

	"github.com/clbanning/persistrtree/geom"
)

// pickSeeds implements a linear seed-picking heuristic: for each axis,
// compute the normalized separation between the member with the greatest
// lower bound and the member with the least upper bound, and seed the
// split from whichever axis separates its members the most (ties favor
// x).
func pickSeeds[M any](members []M, geomOf func(M) geom.Geom) (left, right int) {
	type axisPick struct {
		separation    float32
		left, right   int
	}
	pickAxis := func(lo, hi func(geom.Geom) float32) axisPick {
		maxLower, maxLowerIdx := lo(geomOf(members[0])), 0
		minUpper, minUpperIdx := hi(geomOf(members[0])), 0
		maxUpper := hi(geomOf(members[0]))
		minLower := lo(geomOf(members[0]))
		for i := 1; i < len(members); i++ {
			g := geomOf(members[i])
			if l := lo(g); l > maxLower {
				maxLower, maxLowerIdx = l, i
			}
			if h := hi(g); h < minUpper {
				minUpper, minUpperIdx = h, i
			}
			if h := hi(g); h > maxUpper {
				maxUpper = h
			}
			if l := lo(g); l < minLower {
				minLower = l
			}
		}
		denom := maxUpper - minLower
		if denom == 0 {
			return axisPick{separation: 0, left: 0, right: 1}
		}
		return axisPick{
			separation: (maxLower - minUpper) / denom,
			left:       minUpperIdx,
			right:      maxLowerIdx,
		}
	}

	xPick := pickAxis(
		func(g geom.Geom) float32 { lo, _ := g.XInterval(); return lo },
		func(g geom.Geom) float32 { _, hi := g.XInterval(); return hi },
	)
	yPick := pickAxis(
		func(g geom.Geom) float32 { lo, _ := g.YInterval(); return lo },
		func(g geom.Geom) float32 { _, hi := g.YInterval(); return hi },
	)

	chosen := xPick
	if yPick.separation > xPick.separation {
		chosen = yPick
	}
	invariantf(chosen.left != chosen.right, "split seeds must be distinct indices")
	return chosen.left, chosen.right
}

// splitCore partitions members into two balanced groups using the linear
// seed heuristic followed by a fill-balance-guarded distribution loop. rng
// breaks the rare three-way tie between equal expansion area and equal
// resulting area.
func splitCore[M any](members []M, geomOf func(M) geom.Geom, rng *rand.Rand) (g1, g2 []M, box1, box2 geom.Box) {
	leftIdx, rightIdx := pickSeeds(members, geomOf)

	remaining := make([]M, 0, len(members)-2)
	for i, m := range members {
		if i != leftIdx && i != rightIdx {
			remaining = append(remaining, m)
		}
	}

	g1 = append(g1, members[leftIdx])
	g2 = append(g2, members[rightIdx])
	box1 = geom.Empty.Expand(geomOf(members[leftIdx]))
	box2 = geom.Empty.Expand(geomOf(members[rightIdx]))

	for len(remaining) > 0 {
		if len(g1) >= 2 && len(remaining)+len(g2) <= 2 {
			g2 = append(g2, remaining...)
			for _, m := range remaining {
				box2 = box2.Expand(geomOf(m))
			}
			remaining = nil
			break
		}
		if len(g2) >= 2 && len(remaining)+len(g1) <= 2 {
			g1 = append(g1, remaining...)
			for _, m := range remaining {
				box1 = box1.Expand(geomOf(m))
			}
			remaining = nil
			break
		}

		last := len(remaining) - 1
		m := remaining[last]
		remaining = remaining[:last]

		e1 := box1.ExpandArea(geomOf(m))
		e2 := box2.ExpandArea(geomOf(m))
		switch {
		case e1 < e2:
			g1 = append(g1, m)
			box1 = box1.Expand(geomOf(m))
		case e2 < e1:
			g2 = append(g2, m)
			box2 = box2.Expand(geomOf(m))
		default:
			a1 := box1.Expand(geomOf(m)).Area()
			a2 := box2.Expand(geomOf(m)).Area()
			switch {
			case a1 < a2:
				g1 = append(g1, m)
				box1 = box1.Expand(geomOf(m))
			case a2 < a1:
				g2 = append(g2, m)
				box2 = box2.Expand(geomOf(m))
			case rng.Intn(2) == 0:
				g1 = append(g1, m)
				box1 = box1.Expand(geomOf(m))
			default:
				g2 = append(g2, m)
				box2 = box2.Expand(geomOf(m))
			}
		}
	}

	invariantf(len(g1) >= 1 && len(g2) >= 1, "split must produce two non-empty groups")
	return g1, g2, box1, box2
}

// splitLeaf splits an overfull leaf's entries into two new leaves.
func splitLeaf[V comparable](entries []Entry[V], rng *rand.Rand) []Node[V] {
	geomOf := func(e Entry[V]) geom.Geom { return e.Pt }
	g1, g2, box1, box2 := splitCore(entries, geomOf, rng)
	return []Node[V]{
		&leaf[V]{children: g1, box: box1},
		&leaf[V]{children: g2, box: box2},
	}
}

// splitBranch splits an overfull branch's children into two new branches.
func splitBranch[V comparable](children []Node[V], rng *rand.Rand) []Node[V] {
	geomOf := func(n Node[V]) geom.Geom { return n.Box() }
	g1, g2, box1, box2 := splitCore(children, geomOf, rng)
	return []Node[V]{
		&branch[V]{children: g1, box: box1},
		&branch[V]{children: g2, box: box2},
	}
}
