package rtree

import (
	"fmt"
	"io"
	"strings"

	"github.com/clbanning/persistrtree/geom"
)

// Node is the closed node algebra: a leaf holding entries directly, or a
// branch holding child nodes. It is a sum type in spirit — Go expresses it
// as an interface with exactly two implementations, both unexported, so
// dispatch is always by the type switches in this package, never by a
// caller-supplied third variant.
type Node[V comparable] interface {
	// Box returns the node's covering box.
	Box() geom.Box

	// Entries materializes every entry at or below this node, in
	// left-to-right order. Intended for debugging and bulk operations, not
	// a performance path.
	Entries() []Entry[V]

	// Iterate returns a restartable pull iterator over every entry in the
	// subtree, in left-to-right order.
	Iterate() func() (Entry[V], bool)

	// Pretty writes a human-readable, multi-line dump of the subtree to w.
	Pretty(w io.Writer, indent int)

	node() // seals the interface to this package
}

type leaf[V comparable] struct {
	children []Entry[V]
	box      geom.Box
}

type branch[V comparable] struct {
	children []Node[V]
	box      geom.Box
}

func (l *leaf[V]) node()   {}
func (b *branch[V]) node() {}

func (l *leaf[V]) Box() geom.Box   { return l.box }
func (b *branch[V]) Box() geom.Box { return b.box }

func (l *leaf[V]) Entries() []Entry[V] {
	out := make([]Entry[V], len(l.children))
	copy(out, l.children)
	return out
}

func (b *branch[V]) Entries() []Entry[V] {
	var out []Entry[V]
	for _, c := range b.children {
		out = append(out, c.Entries()...)
	}
	return out
}

func (l *leaf[V]) Iterate() func() (Entry[V], bool) {
	i := 0
	return func() (Entry[V], bool) {
		if i >= len(l.children) {
			var zero Entry[V]
			return zero, false
		}
		e := l.children[i]
		i++
		return e, true
	}
}

func (b *branch[V]) Iterate() func() (Entry[V], bool) {
	ci := 0
	var cur func() (Entry[V], bool)
	return func() (Entry[V], bool) {
		for {
			if cur == nil {
				if ci >= len(b.children) {
					var zero Entry[V]
					return zero, false
				}
				cur = b.children[ci].Iterate()
				ci++
			}
			if e, ok := cur(); ok {
				return e, true
			}
			cur = nil
		}
	}
}

func (l *leaf[V]) Pretty(w io.Writer, indent int) {
	pad := strings.Repeat("  ", indent)
	fmt.Fprintf(w, "%sleaf box=%v\n", pad, l.box)
	for _, e := range l.children {
		fmt.Fprintf(w, "%s  entry pt=%v value=%v\n", pad, e.Pt, e.Value)
	}
}

func (b *branch[V]) Pretty(w io.Writer, indent int) {
	pad := strings.Repeat("  ", indent)
	fmt.Fprintf(w, "%sbranch box=%v\n", pad, b.box)
	for _, c := range b.children {
		c.Pretty(w, indent+1)
	}
}

// newLeafBox computes the minimum covering box of a set of entries, which
// is geom.Empty when there are none.
func newLeafBox[V comparable](entries []Entry[V]) geom.Box {
	box := geom.Empty
	for _, e := range entries {
		box = box.Expand(e.Pt)
	}
	return box
}

// newBranchBox computes the minimum covering box of a set of child nodes.
func newBranchBox[V comparable](children []Node[V]) geom.Box {
	box := geom.Empty
	for _, c := range children {
		box = box.Expand(c.Box())
	}
	return box
}

// contract implements the shared contract/regen operation from the node
// algebra: if the node's current box fully wraps the geometry being
// removed, the box cannot have shrunk and is returned unchanged;
// otherwise the caller's regen thunk recomputes it from scratch.
func contract(box geom.Box, gone geom.Geom, regen func() geom.Box) geom.Box {
	if box.Wraps(gone) {
		return box
	}
	return regen()
}
