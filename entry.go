package rtree

import "github.com/clbanning/persistrtree/geom"

// Entry is an indivisible leaf payload pairing a point with a user value.
// Entries are immutable; two entries are equal when both their coordinates
// and their values are equal.
type Entry[V comparable] struct {
	Pt    geom.Point
	Value V
}

func (e Entry[V]) equal(other Entry[V]) bool {
	return e.Pt == other.Pt && e.Value == other.Value
}
