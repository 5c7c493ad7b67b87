package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/collide"
)

// sceneFile is the on-disk YAML shape of a scene.
type sceneFile struct {
	Rule      string  `yaml:"rule"`
	Tolerance float32 `yaml:"tolerance"`
	Circles   []struct {
		Name string  `yaml:"name"`
		X    float32 `yaml:"x"`
		Y    float32 `yaml:"y"`
		R    float32 `yaml:"r"`
	} `yaml:"circles"`
	Rects []struct {
		Name string  `yaml:"name"`
		X    float32 `yaml:"x"`
		Y    float32 `yaml:"y"`
		W    float32 `yaml:"w"`
		H    float32 `yaml:"h"`
	} `yaml:"rects"`
	Segments []struct {
		Name string  `yaml:"name"`
		X1   float32 `yaml:"x1"`
		Y1   float32 `yaml:"y1"`
		X2   float32 `yaml:"x2"`
		Y2   float32 `yaml:"y2"`
	} `yaml:"segments"`
	Points []struct {
		Name string  `yaml:"name"`
		X    float32 `yaml:"x"`
		Y    float32 `yaml:"y"`
	} `yaml:"points"`
}

// Scene holds named primitives plus the edge rule and point tolerance the
// pairwise tests run with.
type Scene struct {
	Rule      collide.EdgeRule
	Tolerance float32

	Circles  []NamedCircle
	Rects    []NamedRect
	Segments []NamedSegment
	Points   []NamedPoint
}

type NamedCircle struct {
	Name   string
	Circle collide.Circle
}

type NamedRect struct {
	Name string
	Rect collide.Rect
}

type NamedSegment struct {
	Name       string
	Start, End collide.Point
}

type NamedPoint struct {
	Name  string
	Point collide.Point
}

// Hit is one colliding pair, named for reporting.
type Hit struct {
	A, B string
}

// LoadScene reads and validates a YAML scene file.
func LoadScene(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s: %w", path, err)
	}
	var file sceneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse scene %s: %w", path, err)
	}

	rule, err := collide.ParseEdgeRule(file.Rule)
	if err != nil {
		return nil, err
	}
	scene := &Scene{Rule: rule, Tolerance: file.Tolerance}

	for i, c := range file.Circles {
		if c.R < 0 {
			return nil, fmt.Errorf("circle %q: negative radius %v", nameOr(c.Name, "circle", i), c.R)
		}
		scene.Circles = append(scene.Circles, NamedCircle{
			Name:   nameOr(c.Name, "circle", i),
			Circle: collide.NewCircle(collide.Pt(c.X, c.Y), c.R),
		})
	}
	for i, r := range file.Rects {
		rect, err := collide.NewRect(collide.Pt(r.X, r.Y), r.W, r.H)
		if err != nil {
			return nil, fmt.Errorf("rect %q: %w", nameOr(r.Name, "rect", i), err)
		}
		scene.Rects = append(scene.Rects, NamedRect{Name: nameOr(r.Name, "rect", i), Rect: rect})
	}
	for i, s := range file.Segments {
		scene.Segments = append(scene.Segments, NamedSegment{
			Name:  nameOr(s.Name, "segment", i),
			Start: collide.Pt(s.X1, s.Y1),
			End:   collide.Pt(s.X2, s.Y2),
		})
	}
	for i, p := range file.Points {
		scene.Points = append(scene.Points, NamedPoint{
			Name:  nameOr(p.Name, "point", i),
			Point: collide.Pt(p.X, p.Y),
		})
	}

	collide.Logger().Debug("scene loaded", "path", path,
		"circles", len(scene.Circles), "rects", len(scene.Rects),
		"segments", len(scene.Segments), "points", len(scene.Points),
		"rule", scene.Rule.String())
	return scene, nil
}

func nameOr(name, kind string, i int) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("%s[%d]", kind, i)
}

// ShapeCount returns the number of primitives in the scene.
func (s *Scene) ShapeCount() int {
	return len(s.Circles) + len(s.Rects) + len(s.Segments) + len(s.Points)
}

// PairCount returns the number of pairwise tests Collisions runs. There is
// no segment-vs-point test, so those pairs are excluded.
func (s *Scene) PairCount() int {
	n := s.ShapeCount()
	return n*(n-1)/2 - len(s.Segments)*len(s.Points)
}

// Collisions runs every applicable pairwise test and returns the colliding
// pairs. Rect-vs-rect and rect-vs-segment honor the scene's edge rule;
// point-vs-point uses the scene tolerance.
func (s *Scene) Collisions() []Hit {
	var hits []Hit
	log := collide.Logger()
	add := func(a, b string, collides bool) {
		log.Debug("pair tested", "a", a, "b", b, "collides", collides)
		if collides {
			hits = append(hits, Hit{A: a, B: b})
		}
	}

	for i, a := range s.Circles {
		for _, b := range s.Circles[i+1:] {
			add(a.Name, b.Name, a.Circle.Overlaps(b.Circle))
		}
		for _, b := range s.Rects {
			add(a.Name, b.Name, a.Circle.IntersectsRect(b.Rect))
		}
		for _, b := range s.Segments {
			add(a.Name, b.Name, a.Circle.IntersectsSegment(b.Start, b.End))
		}
		for _, b := range s.Points {
			add(a.Name, b.Name, a.Circle.ContainsPoint(b.Point))
		}
	}
	for i, a := range s.Rects {
		for _, b := range s.Rects[i+1:] {
			add(a.Name, b.Name, a.Rect.OverlapsRule(b.Rect, s.Rule))
		}
		for _, b := range s.Segments {
			add(a.Name, b.Name, a.Rect.IntersectsSegment(b.Start, b.End, s.Rule))
		}
		for _, b := range s.Points {
			add(a.Name, b.Name, a.Rect.ContainsPoint(b.Point))
		}
	}
	for i, a := range s.Segments {
		for _, b := range s.Segments[i+1:] {
			add(a.Name, b.Name, collide.SegmentsIntersect(a.Start, a.End, b.Start, b.End))
		}
	}
	for i, a := range s.Points {
		for _, b := range s.Points[i+1:] {
			if s.Tolerance > 0 {
				add(a.Name, b.Name, a.Point.Near(b.Point, s.Tolerance))
			} else {
				add(a.Name, b.Name, a.Point.Eq(b.Point))
			}
		}
	}
	return hits
}

// Bounds returns the smallest rectangle containing every primitive, used
// to frame the rendered image.
func (s *Scene) Bounds() collide.Rect {
	var bounds collide.Rect
	first := true
	grow := func(r collide.Rect) {
		if first {
			bounds, first = r, false
			return
		}
		bounds = bounds.Union(r)
	}

	for _, c := range s.Circles {
		r := c.Circle.Radius()
		rect, err := collide.NewRect(c.Circle.Center.Sub(collide.Pt(r, r)), 2*r, 2*r)
		if err == nil {
			grow(rect)
		}
	}
	for _, r := range s.Rects {
		grow(r.Rect)
	}
	for _, seg := range s.Segments {
		minP := collide.Pt(min(seg.Start.X, seg.End.X), min(seg.Start.Y, seg.End.Y))
		size := collide.Pt(max(seg.Start.X, seg.End.X), max(seg.Start.Y, seg.End.Y)).Sub(minP)
		if rect, err := collide.NewRect(minP, size.X, size.Y); err == nil {
			grow(rect)
		}
	}
	for _, p := range s.Points {
		if rect, err := collide.NewRect(p.Point, 0, 0); err == nil {
			grow(rect)
		}
	}
	return bounds
}
