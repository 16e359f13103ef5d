package rtree

import "errors"

// DefaultMaxEntries is the fan-out bound used when a tree is constructed
// with DefaultPolicy.
const DefaultMaxEntries = 50

// Policy carries the tunable fan-out bound as a value rather than a
// compile-time constant, so small-fanout scenarios (useful for exercising
// splits in tests) and production-sized trees share one implementation.
type Policy struct {
	MaxEntries int
}

// NewPolicy validates maxEntries and returns a Policy.
//
// maxEntries must be at least 3: a split seed pair needs 2 distinct
// indices among the MaxEntries+1 overfull candidates, and each of the two
// post-split groups must end up with at least 2 members (the fill-balance
// guard in the distribution loop), which is only always satisfiable once
// MaxEntries+1 >= 4.
func NewPolicy(maxEntries int) (Policy, error) {
	if maxEntries < 3 {
		return Policy{}, errors.New("rtree: max entries must be at least 3")
	}
	return Policy{MaxEntries: maxEntries}, nil
}

// DefaultPolicy returns the validated Policy with MaxEntries set to
// DefaultMaxEntries.
func DefaultPolicy() Policy {
	p, err := NewPolicy(DefaultMaxEntries)
	if err != nil {
		panic(err)
	}
	return p
}
