package art

import (
	"fmt"
	"math"

	"github.com/sumanthreddy2024/artgen/pkg/domain"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers"
)

const (
	mmPerInch  = 25.4
	mmPerPoint = mmPerInch / 72

	// DefaultDPMM is the raster resolution in dots per millimetre (about 100 DPI).
	DefaultDPMM = 4.0
)

// Paint renders the artwork onto a new canvas sized in millimetres.
// The unit square is mapped onto the largest centered square so both axes
// share one scale, and no axes are drawn.
func Paint(a *Artwork) *canvas.Canvas {
	w := float64(a.Size.Width) * mmPerInch
	h := float64(a.Size.Height) * mmPerInch

	c := canvas.New(w, h)
	ctx := canvas.NewContext(c)

	ctx.SetFillColor(canvas.White)
	ctx.SetStrokeColor(canvas.Transparent)
	ctx.DrawPath(0, 0, canvas.Rectangle(w, h))

	side := math.Min(w, h)
	ox, oy := (w-side)/2, (h-side)/2

	for _, s := range a.Shapes {
		paintShape(ctx, s, ox, oy, side)
	}
	return c
}

func paintShape(ctx *canvas.Context, s domain.Shape, ox, oy, side float64) {
	col := s.Color.RGBA()

	switch s.Category {
	case domain.Line:
		p := &canvas.Path{}
		p.MoveTo(s.Start.X*side, s.Start.Y*side)
		p.LineTo(s.End.X*side, s.End.Y*side)
		ctx.SetFillColor(canvas.Transparent)
		ctx.SetStrokeColor(col)
		ctx.SetStrokeWidth(s.Width * mmPerPoint)
		ctx.DrawPath(ox, oy, p)
	case domain.Circle:
		ctx.SetFillColor(col)
		ctx.SetStrokeColor(canvas.Transparent)
		ctx.DrawPath(ox+s.Start.X*side, oy+s.Start.Y*side, canvas.Circle(s.Radius*side))
	case domain.Rectangle:
		ctx.SetFillColor(col)
		ctx.SetStrokeColor(canvas.Transparent)
		ctx.DrawPath(ox+s.Start.X*side, oy+s.Start.Y*side, canvas.Rectangle(s.Width*side, s.Height*side))
	}
}

// WriteFile paints the artwork and writes it to path. The output format
// follows the file extension (.png, .svg, .pdf, ...). A non-positive dpmm
// falls back to DefaultDPMM.
func WriteFile(path string, a *Artwork, dpmm float64) error {
	if dpmm <= 0 {
		dpmm = DefaultDPMM
	}
	if err := renderers.Write(path, Paint(a), canvas.DPMM(dpmm)); err != nil {
		return fmt.Errorf("failed to write artwork %s: %w", path, err)
	}
	return nil
}
