package collide

import (
	"errors"

	"github.com/gogpu/collide/internal/f32x4"
)

// ErrNegativeSize is returned by NewRect for a negative width or height.
var ErrNegativeSize = errors.New("collide: rectangle width and height must be non-negative")

// Rect is an axis-aligned bounding box with maxX >= minX and maxY >= minY.
//
// Internally the edges are stored in the negated-far-edge layout
// (minX, minY, -maxX, -maxY). Negating the far edges turns every overlap
// condition between two rectangles into the same lanewise comparison, so
// the tests below run as a single four-lane operation with no per-edge
// branching. The layout never leaks: all accessors and mutators translate
// to and from conventional min/max semantics.
type Rect struct {
	layout f32x4.Vec
}

// NewRect creates a rectangle from its top-left position and size.
// Unlike the resize setters, construction rejects negative dimensions;
// see SetWidth for the mutation policy.
func NewRect(pos Point, width, height float32) (Rect, error) {
	if width < 0 || height < 0 {
		return Rect{}, ErrNegativeSize
	}
	return rectMinMax(pos.X, pos.Y, pos.X+width, pos.Y+height), nil
}

// rectMinMax builds a Rect directly from conventional bounds.
func rectMinMax(minX, minY, maxX, maxY float32) Rect {
	return Rect{layout: f32x4.Vec{minX, minY, f32x4.Neg(maxX), f32x4.Neg(maxY)}}
}

// MinX returns the left edge.
func (r Rect) MinX() float32 { return r.layout[0] }

// MinY returns the top edge.
func (r Rect) MinY() float32 { return r.layout[1] }

// MaxX returns the right edge.
func (r Rect) MaxX() float32 { return f32x4.Neg(r.layout[2]) }

// MaxY returns the bottom edge.
func (r Rect) MaxY() float32 { return f32x4.Neg(r.layout[3]) }

// X returns the left edge. It pairs with SetX, which translates the
// rectangle.
func (r Rect) X() float32 { return r.MinX() }

// Y returns the top edge. It pairs with SetY, which translates the
// rectangle.
func (r Rect) Y() float32 { return r.MinY() }

// Left returns the left edge.
func (r Rect) Left() float32 { return r.MinX() }

// Top returns the top edge.
func (r Rect) Top() float32 { return r.MinY() }

// Right returns the right edge.
func (r Rect) Right() float32 { return r.MaxX() }

// Bottom returns the bottom edge.
func (r Rect) Bottom() float32 { return r.MaxY() }

// Width returns the horizontal extent.
func (r Rect) Width() float32 { return r.MaxX() - r.MinX() }

// Height returns the vertical extent.
func (r Rect) Height() float32 { return r.MaxY() - r.MinY() }

// Min returns the top-left corner.
func (r Rect) Min() Point { return Point{X: r.MinX(), Y: r.MinY()} }

// Max returns the bottom-right corner.
func (r Rect) Max() Point { return Point{X: r.MaxX(), Y: r.MaxY()} }

// Position returns the top-left corner.
func (r Rect) Position() Point { return r.Min() }

// Size returns the width and height as a vector.
func (r Rect) Size() Point { return Point{X: r.Width(), Y: r.Height()} }

// Move translates the rectangle by delta. Both edges of each axis move
// together; width and height are preserved.
func (r *Rect) Move(delta Point) {
	r.layout[0] += delta.X
	r.layout[1] += delta.Y
	// The far lanes are negated, so a positive translation subtracts.
	r.layout[2] -= delta.X
	r.layout[3] -= delta.Y
}

// SetX translates the rectangle so its left edge lies at x.
func (r *Rect) SetX(x float32) {
	r.Move(Point{X: x - r.MinX()})
}

// SetY translates the rectangle so its top edge lies at y.
func (r *Rect) SetY(y float32) {
	r.Move(Point{Y: y - r.MinY()})
}

// SetPosition translates the rectangle so its top-left corner lies at pos.
func (r *Rect) SetPosition(pos Point) {
	r.Move(pos.Sub(r.Min()))
}

// SetWidth resizes the rectangle, keeping the left edge fixed. A negative
// width flips the rectangle: it extends |width| to the left of the current
// left edge instead of failing. This differs from NewRect, which rejects
// negative dimensions; resize-time flipping is the documented mutation
// policy.
func (r *Rect) SetWidth(width float32) {
	minX := r.MinX()
	if width < 0 {
		minX, width = minX+width, f32x4.Neg(width)
	}
	r.layout[0] = minX
	r.layout[2] = f32x4.Neg(minX + width)
}

// SetHeight resizes the rectangle, keeping the top edge fixed. A negative
// height flips upward from the current top edge; see SetWidth.
func (r *Rect) SetHeight(height float32) {
	minY := r.MinY()
	if height < 0 {
		minY, height = minY+height, f32x4.Neg(height)
	}
	r.layout[1] = minY
	r.layout[3] = f32x4.Neg(minY + height)
}

// SetMinX moves only the left edge, resizing the rectangle in place.
// The caller must keep the edge at or left of MaxX.
func (r *Rect) SetMinX(x float32) { r.layout[0] = x }

// SetMinY moves only the top edge, resizing the rectangle in place.
// The caller must keep the edge at or above MaxY.
func (r *Rect) SetMinY(y float32) { r.layout[1] = y }

// SetMaxX moves only the right edge, resizing the rectangle in place.
// The caller must keep the edge at or right of MinX.
func (r *Rect) SetMaxX(x float32) { r.layout[2] = f32x4.Neg(x) }

// SetMaxY moves only the bottom edge, resizing the rectangle in place.
// The caller must keep the edge at or below MinY.
func (r *Rect) SetMaxY(y float32) { r.layout[3] = f32x4.Neg(y) }

// Union returns the smallest rectangle containing both r and o.
// In the negated layout the far edges carry flipped signs, so one lanewise
// minimum selects min of the near edges and max of the far edges at once.
func (r Rect) Union(o Rect) Rect {
	return Rect{layout: r.layout.Min(o.layout)}
}

// Intersect returns the componentwise intersection of r and o. It is not an
// overlap test: when the rectangles do not overlap the result is inverted
// (min beyond max). Call Overlaps first when the result must be a valid
// rectangle.
func (r Rect) Intersect(o Rect) Rect {
	return Rect{layout: r.layout.Max(o.layout)}
}

// Overlaps reports whether r and o overlap, edges included: rectangles that
// only touch on an edge count as overlapping. Equivalent to
// OverlapsRule(o, AllEdges).
func (r Rect) Overlaps(o Rect) bool {
	return r.layout.Wind().GE(o.layout).All()
}

// OverlapsRule reports whether r and o overlap, with exact edge touches
// decided per edge by rule. An unset flag makes coincidence on that edge a
// miss (strict inequality on that side only). The flags name o's edges, so
// asymmetric rules make this test asymmetric in r and o.
func (r Rect) OverlapsRule(o Rect, rule EdgeRule) bool {
	w := r.layout.Wind()
	m := w.GT(o.layout) | w.EQ(o.layout)&rule.mask()
	return m.All()
}

// ContainsPoint reports whether p lies within the closed rectangle,
// boundary included.
func (r Rect) ContainsPoint(p Point) bool {
	return f32x4.Form(p.X, p.Y).GE(r.layout).All()
}
