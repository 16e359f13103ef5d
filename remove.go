package rtree

import "github.com/clbanning/persistrtree/geom"

// removeOutcome is a NotFound | Removed(orphans, option<node>) tagged
// union. found is false for NotFound. When found is true and replacement
// is nil, the receiver is discarded wholesale and orphans (which may be
// empty) must be reinserted by the caller.
type removeOutcome[V comparable] struct {
	found       bool
	orphans     joined[Entry[V]]
	replacement Node[V]
}

func notFoundOutcome[V comparable]() removeOutcome[V] {
	return removeOutcome[V]{found: false}
}

// removeFromNode removes target from n's subtree.
func removeFromNode[V comparable](n Node[V], target Entry[V]) removeOutcome[V] {
	switch t := n.(type) {
	case *leaf[V]:
		return removeLeaf(t, target)
	case *branch[V]:
		return removeBranch(t, target)
	default:
		panic("rtree: unreachable node variant")
	}
}

func removeLeaf[V comparable](l *leaf[V], target Entry[V]) removeOutcome[V] {
	if !l.box.Contains(target.Pt) {
		return notFoundOutcome[V]()
	}
	idx := -1
	for i, e := range l.children {
		if e.equal(target) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return notFoundOutcome[V]()
	}

	if len(l.children) == 1 {
		return removeOutcome[V]{found: true, orphans: emptyJoined[Entry[V]]()}
	}
	if len(l.children) == 2 {
		survivor := l.children[1-idx]
		return removeOutcome[V]{found: true, orphans: singletonJoined(survivor)}
	}

	shrunk := make([]Entry[V], 0, len(l.children)-1)
	shrunk = append(shrunk, l.children[:idx]...)
	shrunk = append(shrunk, l.children[idx+1:]...)
	newBox := contract(l.box, target.Pt, func() geom.Box { return newLeafBox(shrunk) })
	return removeOutcome[V]{
		found:       true,
		orphans:     emptyJoined[Entry[V]](),
		replacement: &leaf[V]{children: shrunk, box: newBox},
	}
}

func removeBranch[V comparable](b *branch[V], target Entry[V]) removeOutcome[V] {
	if !b.box.Contains(target.Pt) {
		return notFoundOutcome[V]()
	}

	for i, child := range b.children {
		res := removeFromNode(child, target)
		if !res.found {
			continue
		}

		if res.replacement == nil {
			invariantf(len(b.children) >= 1, "branch must have at least one child")
			if len(b.children) == 1 {
				return removeOutcome[V]{found: true, orphans: res.orphans}
			}
			if len(b.children) == 2 {
				other := b.children[1-i]
				flattened := wrapJoined(other.Entries())
				return removeOutcome[V]{found: true, orphans: flattened.concat(res.orphans)}
			}
			shrunk := make([]Node[V], 0, len(b.children)-1)
			shrunk = append(shrunk, b.children[:i]...)
			shrunk = append(shrunk, b.children[i+1:]...)
			goneBox := child.Box()
			newBox := contract(b.box, goneBox, func() geom.Box { return newBranchBox(shrunk) })
			return removeOutcome[V]{
				found:       true,
				orphans:     res.orphans,
				replacement: &branch[V]{children: shrunk, box: newBox},
			}
		}

		updated := make([]Node[V], len(b.children))
		copy(updated, b.children)
		updated[i] = res.replacement
		goneBox := child.Box()
		newBox := contract(b.box, goneBox, func() geom.Box { return newBranchBox(updated) })
		return removeOutcome[V]{
			found:       true,
			orphans:     res.orphans,
			replacement: &branch[V]{children: updated, box: newBox},
		}
	}

	return notFoundOutcome[V]()
}
