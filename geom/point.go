// Package geom provides the geometric primitives the R-tree core builds on:
// points, axis-aligned boxes, and the area/expansion/distance operations
// node splitting and nearest-neighbour search depend on.
//
// Coordinates are single-precision (float32) so that split-seeding decisions
// stay reproducible across platforms; the core is not meant to be a
// general-purpose geometry library.
package geom

import "math"

// Point is a location in the plane.
type Point struct {
	X, Y float32
}

// ToBox returns the degenerate box that covers exactly this point.
func (p Point) ToBox() Box {
	return Box{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
}

// XInterval and YInterval satisfy Geom: a point's projection interval on
// either axis is degenerate (its low bound equals its high bound).
func (p Point) XInterval() (lo, hi float32) { return p.X, p.X }
func (p Point) YInterval() (lo, hi float32) { return p.Y, p.Y }

// Distance returns the Euclidean distance between two points.
func (p Point) Distance(other Point) float32 {
	dx := float64(p.X - other.X)
	dy := float64(p.Y - other.Y)
	return float32(math.Sqrt(dx*dx + dy*dy))
}
