package geom

import "math"

// Geom is satisfied by anything with a projection interval on both axes and
// a distance to a Point. Point and Box both implement it; the seed-picking
// heuristic (see the rtree package's splitter) is written against Geom so it
// does not need to special-case leaves (Point-keyed) vs. branches
// (Box-keyed).
type Geom interface {
	XInterval() (lo, hi float32)
	YInterval() (lo, hi float32)
	Distance(pt Point) float32
}

// Box is an axis-aligned bounding box with closed boundaries.
type Box struct {
	MinX, MinY, MaxX, MaxY float32
}

// Empty is the canonical empty box: the identity element of Expand. It
// contains nothing, intersects nothing finite, and has zero area.
var Empty = Box{
	MinX: float32(math.Inf(+1)),
	MinY: float32(math.Inf(+1)),
	MaxX: float32(math.Inf(-1)),
	MaxY: float32(math.Inf(-1)),
}

// isEmptySentinel reports whether b is exactly the canonical Empty box
// (as opposed to merely having zero area, e.g. a degenerate point box).
func (b Box) isEmptySentinel() bool {
	return b == Empty
}

// XInterval and YInterval satisfy Geom.
func (b Box) XInterval() (lo, hi float32) { return b.MinX, b.MaxX }
func (b Box) YInterval() (lo, hi float32) { return b.MinY, b.MaxY }

// Area returns the box's area. The empty box has area 0 by definition, even
// though its coordinates are infinite.
func (b Box) Area() float32 {
	if b.isEmptySentinel() {
		return 0
	}
	return (b.MaxX - b.MinX) * (b.MaxY - b.MinY)
}

// Expand returns the smallest box covering both b and g.
func (b Box) Expand(g Geom) Box {
	glx, ghx := g.XInterval()
	gly, ghy := g.YInterval()
	return Box{
		MinX: minF(b.MinX, glx),
		MinY: minF(b.MinY, gly),
		MaxX: maxF(b.MaxX, ghx),
		MaxY: maxF(b.MaxY, ghy),
	}
}

// ExpandArea returns the additional area b would need to cover g. Never
// negative.
func (b Box) ExpandArea(g Geom) float32 {
	delta := b.Expand(g).Area() - b.Area()
	if delta < 0 {
		return 0
	}
	return delta
}

// Contains reports closed containment of pt within b.
func (b Box) Contains(pt Point) bool {
	return b.MinX <= pt.X && pt.X <= b.MaxX && b.MinY <= pt.Y && pt.Y <= b.MaxY
}

// Intersects reports closed intersection of b and other.
func (b Box) Intersects(other Box) bool {
	return b.MinX <= other.MaxX && b.MaxX >= other.MinX &&
		b.MinY <= other.MaxY && b.MaxY >= other.MinY
}

// Wraps reports whether removing g from the set of geometries b covers can
// never shrink b: true iff g's extent lies strictly inside b on every side.
// This is a conservative (sufficient, not necessary) test by design: a g
// that touches b's boundary causes Wraps to report false even when some
// other covered geometry happens to touch the same boundary, trading a few
// unnecessary box recomputations for an O(1) check instead of an O(n) one.
func (b Box) Wraps(g Geom) bool {
	glx, ghx := g.XInterval()
	gly, ghy := g.YInterval()
	return b.MinX < glx && ghx < b.MaxX && b.MinY < gly && ghy < b.MaxY
}

// Distance returns the minimum Euclidean distance from pt to b; 0 if pt is
// inside b.
func (b Box) Distance(pt Point) float32 {
	dx := maxF(maxF(b.MinX-pt.X, 0), pt.X-b.MaxX)
	dy := maxF(maxF(b.MinY-pt.Y, 0), pt.Y-b.MaxY)
	return float32(math.Sqrt(float64(dx)*float64(dx) + float64(dy)*float64(dy)))
}

// IsFinite reports whether every coordinate is finite and not NaN; false
// for the empty box (whose coordinates are infinite) and for any box that
// has absorbed a non-finite geometry.
func (b Box) IsFinite() bool {
	return isFiniteF(b.MinX) && isFiniteF(b.MinY) && isFiniteF(b.MaxX) && isFiniteF(b.MaxY)
}

func minF(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func isFiniteF(f float32) bool {
	v := float64(f)
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
