package rtree

import (
	"math/rand"

	"github.com/clbanning/persistrtree/geom"
)

// insertNode inserts e into n, returning either a replacement node (the
// second return value nil) or a split of nodes that together replace n at
// its parent (the first return value nil). Exactly one of the two is
// non-nil.
func insertNode[V comparable](n Node[V], e Entry[V], policy Policy, rng *rand.Rand) (Node[V], []Node[V]) {
	switch t := n.(type) {
	case *leaf[V]:
		return insertLeaf(t, e, policy, rng)
	case *branch[V]:
		return insertBranch(t, e, policy, rng)
	default:
		panic("rtree: unreachable node variant")
	}
}

func insertLeaf[V comparable](l *leaf[V], e Entry[V], policy Policy, rng *rand.Rand) (Node[V], []Node[V]) {
	grown := make([]Entry[V], len(l.children), len(l.children)+1)
	copy(grown, l.children)
	grown = append(grown, e)

	if len(grown) <= policy.MaxEntries {
		return &leaf[V]{children: grown, box: l.box.Expand(e.Pt)}, nil
	}
	return nil, splitLeaf(grown, rng)
}

func insertBranch[V comparable](b *branch[V], e Entry[V], policy Policy, rng *rand.Rand) (Node[V], []Node[V]) {
	childIdx := chooseChild(b, e.Pt)
	replacement, split := insertNode(b.children[childIdx], e, policy, rng)

	grown := make([]Node[V], len(b.children))
	copy(grown, b.children)

	if split == nil {
		grown[childIdx] = replacement
		return &branch[V]{children: grown, box: b.box.Expand(replacement.Box())}, nil
	}

	grown = append(grown[:childIdx], grown[childIdx+1:]...)
	grown = append(grown, split...)

	if len(grown) <= policy.MaxEntries {
		newBox := b.box
		for _, c := range split {
			newBox = newBox.Expand(c.Box())
		}
		return &branch[V]{children: grown, box: newBox}, nil
	}
	return nil, splitBranch(grown, rng)
}

// chooseChild implements the branch descent rule: the child requiring the
// smallest expandArea to cover pt, ties broken by lowest index.
func chooseChild[V comparable](b *branch[V], pt geom.Point) int {
	best := 0
	bestDelta := b.children[0].Box().ExpandArea(pt)
	for i := 1; i < len(b.children); i++ {
		delta := b.children[i].Box().ExpandArea(pt)
		if delta < bestDelta {
			bestDelta = delta
			best = i
		}
	}
	return best
}
