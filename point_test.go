package collide

import "testing"

func TestPoint_Arithmetic(t *testing.T) {
	tests := []struct {
		name   string
		got    Point
		expect Point
	}{
		{"add", Pt(1, 2).Add(Pt(3, 4)), Pt(4, 6)},
		{"sub", Pt(5, 7).Sub(Pt(2, 3)), Pt(3, 4)},
		{"mul", Pt(1, -2).Mul(3), Pt(3, -6)},
		{"clamp inside", Pt(1, 1).Clamp(Pt(0, 0), Pt(2, 2)), Pt(1, 1)},
		{"clamp low", Pt(-1, -5).Clamp(Pt(0, 0), Pt(2, 2)), Pt(0, 0)},
		{"clamp high", Pt(9, 1).Clamp(Pt(0, 0), Pt(2, 2)), Pt(2, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.got.Eq(tt.expect) {
				t.Errorf("got %v, want %v", tt.got, tt.expect)
			}
		})
	}
}

func TestPoint_DotCross(t *testing.T) {
	if got := Pt(3, 4).Dot(Pt(3, 4)); got != 25 {
		t.Errorf("Dot = %v, want 25", got)
	}
	if got := Pt(1, 0).Cross(Pt(0, 1)); got != 1 {
		t.Errorf("Cross = %v, want 1", got)
	}
	if got := Pt(0, 1).Cross(Pt(1, 0)); got != -1 {
		t.Errorf("Cross = %v, want -1", got)
	}
	if got := Pt(2, 2).Cross(Pt(1, 1)); got != 0 {
		t.Errorf("Cross of parallel vectors = %v, want 0", got)
	}
}

func TestPoint_DistanceSquared(t *testing.T) {
	if got := Pt(1, 2).DistanceSquared(Pt(4, 6)); got != 25 {
		t.Errorf("DistanceSquared = %v, want 25", got)
	}
}

func TestPoint_Eq(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Point
		expect bool
	}{
		{"equal", Pt(1.5, -2), Pt(1.5, -2), true},
		{"x differs", Pt(1.5, -2), Pt(1.6, -2), false},
		{"y differs", Pt(1.5, -2), Pt(1.5, 2), false},
		{"signed zero", Pt(0, 0), Pt(-0.0, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Eq(tt.b); got != tt.expect {
				t.Errorf("%v.Eq(%v) = %v, want %v", tt.a, tt.b, got, tt.expect)
			}
			if got := tt.b.Eq(tt.a); got != tt.expect {
				t.Errorf("Eq should be symmetric for %v, %v", tt.a, tt.b)
			}
		})
	}
}

func TestPoint_Near(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Point
		tol    float32
		expect bool
	}{
		{"zero tolerance equal", Pt(1, 1), Pt(1, 1), 0, true},
		{"within both axes", Pt(0, 0), Pt(0.4, -0.4), 0.5, true},
		{"exactly at tolerance", Pt(0, 0), Pt(0.5, 0), 0.5, true},
		{"one axis too far", Pt(0, 0), Pt(0.4, 0.6), 0.5, false},
		// Chebyshev, not Euclidean: the diagonal corner is still near.
		{"diagonal corner", Pt(0, 0), Pt(1, 1), 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Near(tt.b, tt.tol); got != tt.expect {
				t.Errorf("%v.Near(%v, %v) = %v, want %v", tt.a, tt.b, tt.tol, got, tt.expect)
			}
			if got := tt.b.Near(tt.a, tt.tol); got != tt.expect {
				t.Errorf("Near should be symmetric for %v, %v", tt.a, tt.b)
			}
		})
	}
}
