package collide

import "github.com/gogpu/collide/internal/f32x4"

// Outcode bits follow the EdgeRule flag order (left, top, right, bottom),
// which is also the lane order of the rectangle layout.
const (
	outLeft f32x4.Mask = 1 << iota
	outTop
	outRight
	outBottom
)

// outcode classifies p against the four half-planes of r. Bit k is set when
// p is strictly outside edge k, or exactly on edge k while rule leaves that
// edge exclusive — an on-edge point only counts as inside when the rule says
// touching that edge collides.
func (r Rect) outcode(p Point, rule EdgeRule) f32x4.Mask {
	form := f32x4.Form(p.X, p.Y)
	inside := form.GT(r.layout) | form.EQ(r.layout)&rule.mask()
	return ^inside & f32x4.MaskAll
}

// IntersectsSegment reports whether the segment from start to end passes
// through r. Exact edge touches are decided by rule: with AllEdges a
// segment grazing an edge collides, with NoEdges only segments reaching the
// interior do.
//
// This is a Cohen-Sutherland clipper generalized to the edge rule. Each
// endpoint carries an outcode of the half-planes it violates. A zero pair
// accepts, endpoints sharing a violated edge reject, and otherwise the
// endpoint with the larger outcode (ties keep the start endpoint) is
// clipped against its highest-priority violated edge and reclassified.
// Each endpoint is clipped against a given edge at most once — a clipped
// endpoint lies exactly on its edge, and masking the spent edge keeps an
// exclusive rule from selecting it again — so the loop always terminates.
func (r Rect) IntersectsSegment(start, end Point, rule EdgeRule) bool {
	p0, p1 := start, end
	out0 := r.outcode(p0, rule)
	out1 := r.outcode(p1, rule)
	var spent0, spent1 f32x4.Mask

	for {
		switch {
		case out0|out1 == 0:
			return true
		case out0&out1 != 0:
			return false
		}
		// Both endpoints can converge onto a shared corner when the rule
		// mixes inclusive and exclusive edges. The surviving outcode bits
		// there are exclusive edges, so the single contact point is out;
		// clipping further would divide by a zero delta.
		if p0 == p1 {
			return false
		}
		if out0 >= out1 {
			var edge f32x4.Mask
			p0, edge = r.clipToEdge(p0, p1, out0)
			spent0 |= edge
			out0 = r.outcode(p0, rule) &^ spent0
		} else {
			var edge f32x4.Mask
			p1, edge = r.clipToEdge(p1, p0, out1)
			spent1 |= edge
			out1 = r.outcode(p1, rule) &^ spent1
		}
	}
}

// clipToEdge slides p along the segment p-q onto the highest-priority edge
// p violates, checking bottom, right, top, left in that order. It returns
// the clipped point and the edge used. The caller guarantees q does not
// violate the same edge, so the parametric division is well defined.
func (r Rect) clipToEdge(p, q Point, out f32x4.Mask) (Point, f32x4.Mask) {
	d := q.Sub(p)
	switch {
	case out&outBottom != 0:
		y := r.MaxY()
		return Pt(p.X+d.X*(y-p.Y)/d.Y, y), outBottom
	case out&outRight != 0:
		x := r.MaxX()
		return Pt(x, p.Y+d.Y*(x-p.X)/d.X), outRight
	case out&outTop != 0:
		y := r.MinY()
		return Pt(p.X+d.X*(y-p.Y)/d.Y, y), outTop
	default:
		x := r.MinX()
		return Pt(x, p.Y+d.Y*(x-p.X)/d.X), outLeft
	}
}
