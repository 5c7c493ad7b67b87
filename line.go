package collide

import "github.com/gogpu/collide/internal/f32x4"

// SegmentsIntersect reports whether the closed segments aFrom-aTo and
// bFrom-bTo intersect or touch, including the fully collinear overlap case.
//
// The test computes four orientation signs from perp-dot products. The
// signs are read from the IEEE-754 sign bit (f32x4.Sign), which does not
// follow IEEE NaN rules, so all coordinates must be finite.
func SegmentsIntersect(aFrom, aTo, bFrom, bTo Point) bool {
	da := aTo.Sub(aFrom)
	db := bTo.Sub(bFrom)
	o1 := f32x4.Sign(da.Cross(bFrom.Sub(aFrom)))
	o2 := f32x4.Sign(da.Cross(bTo.Sub(aFrom)))
	o3 := f32x4.Sign(db.Cross(aFrom.Sub(bFrom)))
	o4 := f32x4.Sign(db.Cross(aTo.Sub(bFrom)))

	if o1 != o2 && o3 != o4 {
		return true
	}

	// A zero orientation means three of the points are collinear; the
	// segments touch iff the odd point lies componentwise between the
	// endpoints of the other segment.
	switch {
	case o1 == 0 && onSegment(aFrom, bFrom, aTo):
		return true
	case o2 == 0 && onSegment(aFrom, bTo, aTo):
		return true
	case o3 == 0 && onSegment(bFrom, aFrom, bTo):
		return true
	case o4 == 0 && onSegment(bFrom, aTo, bTo):
		return true
	}
	return false
}

// onSegment reports whether b lies componentwise between a and c. Only
// valid when the three points are known to be collinear.
func onSegment(a, b, c Point) bool {
	return min(a.X, c.X) <= b.X && b.X <= max(a.X, c.X) &&
		min(a.Y, c.Y) <= b.Y && b.Y <= max(a.Y, c.Y)
}

// ClosestPointOnSegment returns the point on the segment from start to end
// nearest to point: the projection onto the infinite line, clamped to the
// segment.
//
// The division is unguarded: a zero-length segment (start == end) makes the
// result non-finite. The endpoints must be distinct.
func ClosestPointOnSegment(start, end, point Point) Point {
	d := end.Sub(start)
	t := point.Sub(start).Dot(d) / d.Dot(d)
	t = min(max(t, 0), 1)
	return start.Add(d.Mul(t))
}

// SegmentIntersectsCircle is Circle.IntersectsSegment with the segment
// first, for call sites that read segment-major.
func SegmentIntersectsCircle(start, end Point, c Circle) bool {
	return c.IntersectsSegment(start, end)
}

// SegmentIntersectsRect is Rect.IntersectsSegment with the segment first,
// for call sites that read segment-major.
func SegmentIntersectsRect(start, end Point, r Rect, rule EdgeRule) bool {
	return r.IntersectsSegment(start, end, rule)
}
