package art

import (
	"github.com/sumanthreddy2024/artgen/internal/random"
	"github.com/sumanthreddy2024/artgen/pkg/domain"
)

// Geometry bounds for sampled primitives.
const (
	MinLineWidth = 0.5
	MaxLineWidth = 3.0
	MinRadius    = 0.05
	MaxRadius    = 0.2
	MinSide      = 0.05
	MaxSide      = 0.2
)

// Sample draws a primitive of the given category with uniform random
// geometry and color. It returns false for an unrecognised category.
func Sample(src random.Source, c domain.Category) (domain.Shape, bool) {
	switch c {
	case domain.Line:
		return domain.Shape{
			Category: c,
			Start:    samplePoint(src),
			End:      samplePoint(src),
			Width:    random.Uniform(src, MinLineWidth, MaxLineWidth),
			Color:    SampleColor(src),
		}, true
	case domain.Circle:
		return domain.Shape{
			Category: c,
			Start:    samplePoint(src),
			Radius:   random.Uniform(src, MinRadius, MaxRadius),
			Color:    SampleColor(src),
		}, true
	case domain.Rectangle:
		width := random.Uniform(src, MinSide, MaxSide)
		height := random.Uniform(src, MinSide, MaxSide)
		return domain.Shape{
			Category: c,
			Start:    samplePoint(src),
			Width:    width,
			Height:   height,
			Color:    SampleColor(src),
		}, true
	}
	return domain.Shape{}, false
}

// SampleColor returns an independent uniform RGB triple.
func SampleColor(src random.Source) domain.Color {
	return domain.Color{R: src.Float64(), G: src.Float64(), B: src.Float64()}
}

func samplePoint(src random.Source) domain.Point {
	return domain.Point{X: src.Float64(), Y: src.Float64()}
}
