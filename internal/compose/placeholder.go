package compose

import (
	"image/color"
	"math"
	"strconv"

	"sprite-renderer/internal/species"
)

var (
	gold        = color.NRGBA{255, 215, 0, 255}
	white       = color.NRGBA{255, 255, 255, 255}
	shadowBlack = color.NRGBA{0, 0, 0, 100}
)

// Placeholder geometry.
const (
	placeholderInset  = 2
	placeholderRadius = 6
	borderWidth       = 2
	borderAlpha       = 200
	labelSize         = 12
	shinyTint         = 0.3
)

// Star geometry.
const (
	starPoints = 5
	starRadius = 6
	starCX     = 8
	starCY     = 8
	starStep   = 144 // degrees between consecutive points
	starStart  = -90
)

// PlaceholderShapes describes the card drawn when no sprite art resolves:
// a type-colored rounded rectangle with its border and a "#<number>" label.
func PlaceholderShapes(number int, t species.Type, shiny bool) []Shape {
	fill := t.Color()
	if shiny {
		fill = blend(fill, gold, shinyTint)
	}
	border := fill
	border.A = borderAlpha

	lo := Point{placeholderInset, placeholderInset}
	hi := Point{Width - placeholderInset, Height - placeholderInset}
	label := "#" + strconv.Itoa(number)

	return []Shape{
		RoundRect{Min: lo, Max: hi, Radius: placeholderRadius, Fill: fill},
		RoundRectStroke{Min: lo, Max: hi, Radius: placeholderRadius, Width: borderWidth, Color: border},
		Text{Text: label, CenterX: Width/2 + 1, Baseline: Height/2 + 5, Size: labelSize, Color: shadowBlack},
		Text{Text: label, CenterX: Width / 2, Baseline: Height/2 + 4, Size: labelSize, Color: white},
	}
}

// StarShape is the procedural shiny marker used when the overlay art is missing.
func StarShape() Polygon {
	return Polygon{Points: StarPoints(), Fill: gold}
}

// StarPoints returns the five star vertices in drawing order: starting at
// the top and stepping 144° so the outline crosses itself.
func StarPoints() []Point {
	pts := make([]Point, starPoints)
	for i := range pts {
		a := float64(starStart+starStep*i) * math.Pi / 180
		pts[i] = Point{
			X: float32(starCX + starRadius*math.Cos(a)),
			Y: float32(starCY + starRadius*math.Sin(a)),
		}
	}
	return pts
}

// blend mixes b into a by ratio, truncating each channel.
func blend(a, b color.NRGBA, ratio float32) color.NRGBA {
	mix := func(x, y uint8) uint8 {
		return uint8(float32(x)*(1-ratio) + float32(y)*ratio)
	}
	return color.NRGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}
