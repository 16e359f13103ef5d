package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyIsExpandIdentity(t *testing.T) {
	b := Box{MinX: 1, MinY: 2, MaxX: 3, MaxY: 4}
	assert.Equal(t, b, Empty.Expand(b))
	assert.Equal(t, float32(0), Empty.Area())
}

func TestBoxArea(t *testing.T) {
	b := Box{MinX: 0, MinY: 0, MaxX: 2, MaxY: 3}
	assert.Equal(t, float32(6), b.Area())
}

func TestExpandArea(t *testing.T) {
	b := Box{MinX: 0, MinY: 0, MaxX: 2, MaxY: 2}
	got := b.ExpandArea(Point{X: 4, Y: 2})
	assert.Equal(t, float32(4), got)
}

func TestContainsIsClosed(t *testing.T) {
	b := Box{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}
	assert.True(t, b.Contains(Point{X: 0, Y: 0}))
	assert.True(t, b.Contains(Point{X: 1, Y: 1}))
	assert.False(t, b.Contains(Point{X: 1.01, Y: 0}))
}

func TestIntersectsIsClosed(t *testing.T) {
	a := Box{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}
	b := Box{MinX: 1, MinY: 1, MaxX: 2, MaxY: 2}
	assert.True(t, a.Intersects(b))
	c := Box{MinX: 1.01, MinY: 1.01, MaxX: 2, MaxY: 2}
	assert.False(t, a.Intersects(c))
}

func TestWraps(t *testing.T) {
	b := Box{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	assert.True(t, b.Wraps(Point{X: 5, Y: 5}.ToBox()))
	assert.False(t, b.Wraps(Point{X: 0, Y: 5}.ToBox()))
}

func TestDistance(t *testing.T) {
	b := Box{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}
	assert.Equal(t, float32(0), b.Distance(Point{X: 0.5, Y: 0.5}))
	assert.InDelta(t, 1.0, float64(b.Distance(Point{X: 2, Y: 1})), 1e-6)
}

func TestIsFinite(t *testing.T) {
	assert.False(t, Empty.IsFinite())
	assert.True(t, Box{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}.IsFinite())
	nan := Box{MinX: float32(math.NaN()), MinY: 0, MaxX: 1, MaxY: 1}
	assert.False(t, nan.IsFinite())
}
