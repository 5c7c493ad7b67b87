// Package f32x4 provides a portable four-lane float32 vector and the
// IEEE-754 bit helpers the collision kernels are built on.
//
// Every bit-level reinterpretation of a float in this module lives here,
// behind named functions, so the rest of the codebase only ever manipulates
// floats and lane masks through a small audited surface. The lane type is a
// plain [4]float32; there is no per-architecture dispatch. The elementwise
// operations are written so the compiler can lower them to vector
// instructions where available, and they remain correct everywhere.
package f32x4

import "math"

// Vec is a fixed-width vector of four float32 lanes.
type Vec [4]float32

// Mask records a predicate per lane: bit 1<<i corresponds to lane i.
type Mask uint8

// MaskAll has all four lane bits set.
const MaskAll Mask = 0xF

const signMask = uint32(1) << 31

// Neg flips the IEEE-754 sign bit of f. It is the XOR negation used
// throughout the rectangle layout; note Neg(0) is -0, which compares equal
// to +0.
func Neg(f float32) float32 {
	return math.Float32frombits(math.Float32bits(f) ^ signMask)
}

// Sign returns -1, 0 or +1 for f. Nonzero values are classified purely by
// the IEEE-754 sign bit, so non-finite inputs are classified by their sign
// bit rather than by IEEE NaN comparison rules. Callers requiring IEEE
// semantics must pass finite values.
func Sign(f float32) int {
	if f == 0 {
		return 0
	}
	return 1 - 2*int(math.Float32bits(f)>>31)
}

// Form expands a 2D point into its collision form (x, y, -x, -y), matching
// the negated-far-edge rectangle layout so that a single lanewise comparison
// tests the point against all four edges at once.
func Form(x, y float32) Vec {
	return Vec{x, y, Neg(x), Neg(y)}
}

// Neg negates every lane.
func (v Vec) Neg() Vec {
	return Vec{Neg(v[0]), Neg(v[1]), Neg(v[2]), Neg(v[3])}
}

// Wind negates all lanes and swaps the two halves of v. Applied to a
// rectangle layout (minX, minY, -maxX, -maxY) it yields
// (maxX, maxY, -minX, -minY), which turns the four closed-interval overlap
// conditions into one uniform lanewise >= against another layout.
func (v Vec) Wind() Vec {
	return Vec{Neg(v[2]), Neg(v[3]), Neg(v[0]), Neg(v[1])}
}

// Min returns the lanewise minimum of v and w.
func (v Vec) Min(w Vec) Vec {
	return Vec{min(v[0], w[0]), min(v[1], w[1]), min(v[2], w[2]), min(v[3], w[3])}
}

// Max returns the lanewise maximum of v and w.
func (v Vec) Max(w Vec) Vec {
	return Vec{max(v[0], w[0]), max(v[1], w[1]), max(v[2], w[2]), max(v[3], w[3])}
}

// GE returns the lanes where v >= w.
func (v Vec) GE(w Vec) Mask {
	var m Mask
	if v[0] >= w[0] {
		m |= 1
	}
	if v[1] >= w[1] {
		m |= 2
	}
	if v[2] >= w[2] {
		m |= 4
	}
	if v[3] >= w[3] {
		m |= 8
	}
	return m
}

// GT returns the lanes where v > w.
func (v Vec) GT(w Vec) Mask {
	var m Mask
	if v[0] > w[0] {
		m |= 1
	}
	if v[1] > w[1] {
		m |= 2
	}
	if v[2] > w[2] {
		m |= 4
	}
	if v[3] > w[3] {
		m |= 8
	}
	return m
}

// EQ returns the lanes where v == w. Signed zeros compare equal.
func (v Vec) EQ(w Vec) Mask {
	var m Mask
	if v[0] == w[0] {
		m |= 1
	}
	if v[1] == w[1] {
		m |= 2
	}
	if v[2] == w[2] {
		m |= 4
	}
	if v[3] == w[3] {
		m |= 8
	}
	return m
}

// All reports whether every lane bit is set.
func (m Mask) All() bool {
	return m == MaskAll
}
