package domain

import (
	"image/color"
	"math"
)

// Point is a position in the unit square [0,1]x[0,1].
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Color is an RGB triple with components in [0,1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// RGBA converts the color to an opaque 8-bit color.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: 0xff}
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

// Shape is one drawn primitive.
//
// Field usage depends on the category:
//   - Line: Start and End are the endpoints, Width is the stroke width in points.
//   - Circle: Start is the center, Radius is the radius.
//   - Rectangle: Start is the lower-left corner, Width and Height are the sides.
type Shape struct {
	Category Category `json:"category"`
	Start    Point    `json:"start"`
	End      Point    `json:"end,omitempty"`
	Width    float64  `json:"width,omitempty"`
	Height   float64  `json:"height,omitempty"`
	Radius   float64  `json:"radius,omitempty"`
	Color    Color    `json:"color"`
}
