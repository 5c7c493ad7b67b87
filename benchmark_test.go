package collide

import "testing"

// The results feed package-level sinks so the compiler cannot elide the
// calls under test.
var (
	sinkBool  bool
	sinkPoint Point
	sinkRect  Rect
)

func BenchmarkRect_Overlaps(b *testing.B) {
	r1, _ := NewRect(Pt(0, 0), 2, 2)
	r2, _ := NewRect(Pt(1, 1), 2, 2)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkBool = r1.Overlaps(r2)
	}
}

func BenchmarkRect_OverlapsRule(b *testing.B) {
	r1, _ := NewRect(Pt(0, 0), 2, 2)
	r2, _ := NewRect(Pt(2, 0), 2, 2)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkBool = r1.OverlapsRule(r2, LeftIn|TopIn)
	}
}

func BenchmarkRect_ContainsPoint(b *testing.B) {
	r, _ := NewRect(Pt(0, 0), 2, 2)
	p := Pt(1, 1)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkBool = r.ContainsPoint(p)
	}
}

// BenchmarkRect_IntersectsSegment covers the clipper's three exits: the
// trivial accept, the trivial reject, and the full clip loop.
func BenchmarkRect_IntersectsSegment(b *testing.B) {
	r, _ := NewRect(Pt(0, 0), 2, 2)
	cases := []struct {
		name       string
		start, end Point
		rule       EdgeRule
	}{
		{"accept", Pt(0.5, 0.5), Pt(1.5, 1.5), AllEdges},
		{"reject", Pt(-2, 0.5), Pt(-1, 0.5), AllEdges},
		{"clip", Pt(-1, -1), Pt(3, 3), NoEdges},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sinkBool = r.IntersectsSegment(c.start, c.end, c.rule)
			}
		})
	}
}

func BenchmarkCircle_Overlaps(b *testing.B) {
	c1 := NewCircle(Pt(0, 0), 2)
	c2 := NewCircle(Pt(3, 0), 2)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkBool = c1.Overlaps(c2)
	}
}

func BenchmarkCircle_IntersectsRect(b *testing.B) {
	c := NewCircle(Pt(-0.5, 1), 1)
	r, _ := NewRect(Pt(0, 0), 2, 2)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkBool = c.IntersectsRect(r)
	}
}

func BenchmarkSegmentsIntersect(b *testing.B) {
	cases := []struct {
		name                   string
		aFrom, aTo, bFrom, bTo Point
	}{
		{"crossing", Pt(0, 0), Pt(2, 2), Pt(0, 2), Pt(2, 0)},
		{"apart", Pt(0, 0), Pt(1, 0), Pt(0, 2), Pt(1, 2)},
		{"collinear", Pt(0, 0), Pt(2, 0), Pt(1, 0), Pt(3, 0)},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				sinkBool = SegmentsIntersect(c.aFrom, c.aTo, c.bFrom, c.bTo)
			}
		})
	}
}

func BenchmarkClosestPointOnSegment(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkPoint = ClosestPointOnSegment(Pt(0, 0), Pt(4, 0), Pt(2, 3))
	}
}

func BenchmarkRect_Union(b *testing.B) {
	r1, _ := NewRect(Pt(0, 0), 2, 2)
	r2, _ := NewRect(Pt(1, 1), 2, 2)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkRect = r1.Union(r2)
	}
}
