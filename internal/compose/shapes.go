package compose

import (
	"image"
	"image/color"
	"math"
	"slices"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Shape is one procedural drawing step.
type Shape interface {
	Draw(dst *image.NRGBA)
}

// Point is a position in canvas pixels.
type Point struct {
	X, Y float32
}

// Polygon is an anti-aliased filled path. Self-intersecting paths fill
// every enclosed region (non-zero winding), so a pentagram fills solid.
type Polygon struct {
	Points []Point
	Fill   color.NRGBA
}

func (p Polygon) Draw(dst *image.NRGBA) {
	fillPaths(dst, p.Fill, p.Points)
}

// RoundRect fills a rectangle with rounded corners.
type RoundRect struct {
	Min, Max Point
	Radius   float32
	Fill     color.NRGBA
}

func (r RoundRect) Draw(dst *image.NRGBA) {
	fillPaths(dst, r.Fill, roundRectPath(r.Min, r.Max, r.Radius))
}

// RoundRectStroke strokes the outline of a rounded rectangle, centered on it.
type RoundRectStroke struct {
	Min, Max Point
	Radius   float32
	Width    float32
	Color    color.NRGBA
}

func (s RoundRectStroke) Draw(dst *image.NRGBA) {
	h := s.Width / 2
	outer := roundRectPath(
		Point{s.Min.X - h, s.Min.Y - h},
		Point{s.Max.X + h, s.Max.Y + h},
		s.Radius+h)
	inner := roundRectPath(
		Point{s.Min.X + h, s.Min.Y + h},
		Point{s.Max.X - h, s.Max.Y - h},
		max(s.Radius-h, 0))
	// opposite winding cuts the hole
	slices.Reverse(inner)
	fillPaths(dst, s.Color, outer, inner)
}

// Text draws a bold single-line string horizontally centered on CenterX.
type Text struct {
	Text     string
	CenterX  int
	Baseline int
	Size     float64
	Color    color.NRGBA
}

func (t Text) Draw(dst *image.NRGBA) {
	face, err := boldFace(t.Size)
	if err != nil {
		return
	}
	defer face.Close()

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(t.Color),
		Face: face,
	}
	width := d.MeasureString(t.Text)
	d.Dot = fixed.Point26_6{X: fixed.I(t.CenterX) - width/2, Y: fixed.I(t.Baseline)}
	d.DrawString(t.Text)
}

// DrawShapes draws shapes onto dst in order.
func DrawShapes(dst *image.NRGBA, shapes []Shape) {
	for _, s := range shapes {
		s.Draw(dst)
	}
}

func fillPaths(dst *image.NRGBA, c color.NRGBA, paths ...[]Point) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.DrawOp = draw.Over
	for _, pts := range paths {
		if len(pts) < 3 {
			continue
		}
		z.MoveTo(pts[0].X, pts[0].Y)
		for _, p := range pts[1:] {
			z.LineTo(p.X, p.Y)
		}
		z.ClosePath()
	}
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// cornerSegments is the number of line segments per quarter circle.
const cornerSegments = 8

// roundRectPath returns a clockwise outline of a rounded rectangle.
func roundRectPath(lo, hi Point, r float32) []Point {
	r = min(r, (hi.X-lo.X)/2, (hi.Y-lo.Y)/2)
	if r <= 0 {
		return []Point{lo, {hi.X, lo.Y}, hi, {lo.X, hi.Y}}
	}
	corners := [4]struct {
		cx, cy float32
		start  float64
	}{
		{hi.X - r, lo.Y + r, -90}, // top-right
		{hi.X - r, hi.Y - r, 0},   // bottom-right
		{lo.X + r, hi.Y - r, 90},  // bottom-left
		{lo.X + r, lo.Y + r, 180}, // top-left
	}
	pts := make([]Point, 0, 4*(cornerSegments+1))
	for _, c := range corners {
		for i := 0; i <= cornerSegments; i++ {
			a := (c.start + 90*float64(i)/cornerSegments) * math.Pi / 180
			pts = append(pts, Point{
				X: c.cx + r*float32(math.Cos(a)),
				Y: c.cy + r*float32(math.Sin(a)),
			})
		}
	}
	return pts
}

var loadBold = sync.OnceValues(func() (*opentype.Font, error) {
	return opentype.Parse(gobold.TTF)
})

// boldFace returns a new face; faces are not safe for concurrent use,
// the parsed font is.
func boldFace(size float64) (font.Face, error) {
	f, err := loadBold()
	if err != nil {
		return nil, err
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}
