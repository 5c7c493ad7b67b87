package collide

// Circle is a circle described by its center and a non-negative radius.
//
// The squared radius is stored alongside the radius because every collision
// test compares squared distances. The pairing is an invariant, not a cache:
// radiusSq always equals radius*radius, maintained by SetRadius. The center
// is an exported field and is typically left unchanged after construction.
type Circle struct {
	Center Point

	radius   float32
	radiusSq float32
}

// NewCircle creates a circle. The radius must be non-negative.
func NewCircle(center Point, radius float32) Circle {
	return Circle{Center: center, radius: radius, radiusSq: radius * radius}
}

// Radius returns the radius.
func (c Circle) Radius() float32 { return c.radius }

// RadiusSquared returns the squared radius.
func (c Circle) RadiusSquared() float32 { return c.radiusSq }

// SetRadius changes the radius, keeping the squared radius consistent.
func (c *Circle) SetRadius(radius float32) {
	c.radius = radius
	c.radiusSq = radius * radius
}

// Overlaps reports whether the two circles overlap. The comparison is
// strict: circles that are exactly tangent do not collide. Every circle
// test in the package uses this convention.
func (c Circle) Overlaps(o Circle) bool {
	sum := c.radius + o.radius
	return c.Center.DistanceSquared(o.Center) < sum*sum
}

// ContainsPoint reports whether p lies strictly inside the circle; a point
// exactly on the boundary does not count.
func (c Circle) ContainsPoint(p Point) bool {
	return c.Center.DistanceSquared(p) < c.radiusSq
}

// IntersectsSegment reports whether the segment from start to end passes
// strictly inside the circle. The endpoints must be distinct; see
// ClosestPointOnSegment.
func (c Circle) IntersectsSegment(start, end Point) bool {
	nearest := ClosestPointOnSegment(start, end, c.Center)
	return c.Center.DistanceSquared(nearest) < c.radiusSq
}

// IntersectsRect reports whether the circle's interior reaches r. The
// center is clamped componentwise into r to find the nearest boundary or
// interior point, then tested with the strict squared-distance comparison.
func (c Circle) IntersectsRect(r Rect) bool {
	nearest := c.Center.Clamp(r.Min(), r.Max())
	return c.Center.DistanceSquared(nearest) < c.radiusSq
}
