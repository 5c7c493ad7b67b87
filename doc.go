// Package collide provides exact, branch-light 2D collision primitives:
// point, segment, circle and axis-aligned bounding box intersection tests
// for per-frame use in real-time simulations.
//
// # Overview
//
// All coordinates are IEEE-754 single precision. Every test is a pure
// function over its inputs: no allocation, no shared state, and bounded
// O(1) work, so the primitives can run millions of times per second inside
// a game loop and may be called concurrently from any goroutine.
//
// # Quick Start
//
//	import "github.com/gogpu/collide"
//
//	ball := collide.NewCircle(collide.Pt(4, 3), 1.5)
//	wall, err := collide.NewRect(collide.Pt(0, 0), 10, 1)
//	if err != nil {
//		// only negative sizes fail
//	}
//	if ball.IntersectsRect(wall) {
//		// resolve the hit
//	}
//
// # Data Layout
//
// Rect stores its edges as (minX, minY, -maxX, -maxY). With the far edges
// negated, every rectangle comparison becomes one uniform four-lane
// elementwise operation: overlap is a single lanewise >=, union a lanewise
// min, intersection a lanewise max. Points expand to the matching collision
// form (x, y, -x, -y). The lane math and all IEEE-754 bit manipulation live
// in internal/f32x4; the public API only ever shows conventional min/max
// coordinates.
//
// # Edge Semantics
//
// Rectangle tests take an EdgeRule deciding, per edge, whether an exact
// touch counts as collision; the flag-free Overlaps is the AllEdges
// (inclusive) case. Circle tests are uniformly strict: exactly tangent
// circles, and points exactly on a circle's boundary, do not collide.
//
// # Preconditions
//
// Two documented degeneracies are not guarded, trading checks for speed on
// rare cases: ClosestPointOnSegment divides by zero for a zero-length
// segment, and SegmentsIntersect reads orientation signs from the raw sign
// bit, which does not follow IEEE NaN semantics. Callers must pass finite
// coordinates and distinct segment endpoints.
package collide
