package collide

import "github.com/chewxy/math32"

// Point represents a 2D point or vector in single precision.
type Point struct {
	X, Y float32
}

// Pt is a convenience function to create a Point.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float32) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Dot returns the dot product of two vectors.
func (p Point) Dot(q Point) float32 {
	return p.X*q.X + p.Y*q.Y
}

// Cross returns the 2D cross product (perp-dot). Its sign gives the turning
// direction from p to q.
func (p Point) Cross(q Point) float32 {
	return p.X*q.Y - p.Y*q.X
}

// LengthSquared returns the squared length of the vector.
func (p Point) LengthSquared() float32 {
	return p.X*p.X + p.Y*p.Y
}

// DistanceSquared returns the squared distance between two points.
// The collision tests compare squared quantities throughout, so the square
// root is never taken on a hot path.
func (p Point) DistanceSquared(q Point) float32 {
	return p.Sub(q).LengthSquared()
}

// Clamp returns p limited componentwise to the box spanned by lo and hi.
func (p Point) Clamp(lo, hi Point) Point {
	return Point{
		X: min(max(p.X, lo.X), hi.X),
		Y: min(max(p.Y, lo.Y), hi.Y),
	}
}

// Eq reports exact coordinate equality.
func (p Point) Eq(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Near reports whether q lies within tolerance of p on both axes
// (Chebyshev distance, inclusive). No Euclidean distance is computed.
func (p Point) Near(q Point, tolerance float32) bool {
	return math32.Abs(q.X-p.X) <= tolerance && math32.Abs(q.Y-p.Y) <= tolerance
}
