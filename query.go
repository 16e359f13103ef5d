package rtree

import (
	"errors"

	"github.com/clbanning/persistrtree/geom"
)

// Stop is a sentinel error a VisitSearch callback can return to end the
// search early without that being reported as a failure, grounded in the
// range-search/Stop pattern from missinglink-simplefeatures's RTree.
var Stop = errors.New("rtree: stop")

// search recurses over n, calling visit for every entry whose point lies in
// space. visit may return Stop to end the traversal early, or any other
// non-nil error to abort it and propagate the error.
func search[V comparable](n Node[V], space geom.Box, visit func(Entry[V]) error) error {
	switch t := n.(type) {
	case *leaf[V]:
		for _, e := range t.children {
			if !space.Contains(e.Pt) {
				continue
			}
			if err := visit(e); err != nil {
				return err
			}
		}
		return nil
	case *branch[V]:
		for _, c := range t.children {
			if !space.Intersects(c.Box()) {
				continue
			}
			if err := search(c, space, visit); err != nil {
				return err
			}
		}
		return nil
	default:
		panic("rtree: unreachable node variant")
	}
}

// count recurses over n, returning the number of entries whose point lies
// in space, without materializing them.
func count[V comparable](n Node[V], space geom.Box) int {
	switch t := n.(type) {
	case *leaf[V]:
		c := 0
		for _, e := range t.children {
			if space.Contains(e.Pt) {
				c++
			}
		}
		return c
	case *branch[V]:
		c := 0
		for _, ch := range t.children {
			if space.Intersects(ch.Box()) {
				c += count(ch, space)
			}
		}
		return c
	default:
		panic("rtree: unreachable node variant")
	}
}
