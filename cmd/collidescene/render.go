package main

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/chewxy/math32"
	"golang.org/x/image/vector"

	"github.com/gogpu/collide"
)

const (
	imageSize    = 800
	imageMargin  = 40
	circleFacets = 64
	strokeHalf   = 1.5 // half-width of segment strokes, in pixels
)

var (
	colorIdle = color.NRGBA{R: 0x42, G: 0x6b, B: 0xb5, A: 0xb0}
	colorHit  = color.NRGBA{R: 0xd6, G: 0x3a, B: 0x3a, A: 0xd0}
	colorLine = color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
)

// view maps scene coordinates to pixels, preserving aspect ratio.
type view struct {
	origin collide.Point
	scale  float32
}

func newView(bounds collide.Rect) view {
	extent := max(bounds.Width(), bounds.Height())
	scale := float32(1)
	if extent > 0 {
		scale = float32(imageSize-2*imageMargin) / extent
	}
	return view{origin: bounds.Min(), scale: scale}
}

func (v view) at(p collide.Point) (float32, float32) {
	q := p.Sub(v.origin).Mul(v.scale)
	return q.X + imageMargin, q.Y + imageMargin
}

// renderScene rasterizes the scene to a PNG. Shapes involved in a collision
// are drawn in the hit color.
func renderScene(s *Scene, hits []Hit, path string) error {
	hit := make(map[string]bool, len(hits)*2)
	for _, h := range hits {
		hit[h.A] = true
		hit[h.B] = true
	}
	fill := func(name string) color.NRGBA {
		if hit[name] {
			return colorHit
		}
		return colorIdle
	}

	dst := image.NewRGBA(image.Rect(0, 0, imageSize, imageSize))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	v := newView(s.Bounds())

	for _, r := range s.Rects {
		z := vector.NewRasterizer(imageSize, imageSize)
		moveTo(z, v, r.Rect.Min())
		lineTo(z, v, collide.Pt(r.Rect.MaxX(), r.Rect.MinY()))
		lineTo(z, v, r.Rect.Max())
		lineTo(z, v, collide.Pt(r.Rect.MinX(), r.Rect.MaxY()))
		z.ClosePath()
		z.Draw(dst, dst.Bounds(), image.NewUniform(fill(r.Name)), image.Point{})
	}

	for _, c := range s.Circles {
		z := vector.NewRasterizer(imageSize, imageSize)
		center := c.Circle.Center
		radius := c.Circle.Radius()
		for i := 0; i <= circleFacets; i++ {
			angle := 2 * math32.Pi * float32(i) / circleFacets
			p := center.Add(collide.Pt(radius*math32.Cos(angle), radius*math32.Sin(angle)))
			if i == 0 {
				moveTo(z, v, p)
			} else {
				lineTo(z, v, p)
			}
		}
		z.ClosePath()
		z.Draw(dst, dst.Bounds(), image.NewUniform(fill(c.Name)), image.Point{})
	}

	for _, seg := range s.Segments {
		z := vector.NewRasterizer(imageSize, imageSize)
		strokeSegment(z, v, seg.Start, seg.End)
		src := colorLine
		if hit[seg.Name] {
			src = colorHit
		}
		z.Draw(dst, dst.Bounds(), image.NewUniform(src), image.Point{})
	}

	for _, p := range s.Points {
		z := vector.NewRasterizer(imageSize, imageSize)
		x, y := v.at(p.Point)
		z.MoveTo(x-2, y-2)
		z.LineTo(x+2, y-2)
		z.LineTo(x+2, y+2)
		z.LineTo(x-2, y+2)
		z.ClosePath()
		src := colorLine
		if hit[p.Name] {
			src = colorHit
		}
		z.Draw(dst, dst.Bounds(), image.NewUniform(src), image.Point{})
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, dst); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

func moveTo(z *vector.Rasterizer, v view, p collide.Point) {
	x, y := v.at(p)
	z.MoveTo(x, y)
}

func lineTo(z *vector.Rasterizer, v view, p collide.Point) {
	x, y := v.at(p)
	z.LineTo(x, y)
}

// strokeSegment draws the segment as a thin filled quad, offset by the
// segment's unit normal.
func strokeSegment(z *vector.Rasterizer, v view, start, end collide.Point) {
	x0, y0 := v.at(start)
	x1, y1 := v.at(end)
	dx, dy := x1-x0, y1-y0
	length := math32.Hypot(dx, dy)
	if length == 0 {
		// Degenerate segment: draw a dot.
		z.MoveTo(x0-strokeHalf, y0-strokeHalf)
		z.LineTo(x0+strokeHalf, y0-strokeHalf)
		z.LineTo(x0+strokeHalf, y0+strokeHalf)
		z.LineTo(x0-strokeHalf, y0+strokeHalf)
		z.ClosePath()
		return
	}
	nx, ny := -dy/length*strokeHalf, dx/length*strokeHalf
	z.MoveTo(x0+nx, y0+ny)
	z.LineTo(x1+nx, y1+ny)
	z.LineTo(x1-nx, y1-ny)
	z.LineTo(x0-nx, y0-ny)
	z.ClosePath()
}
