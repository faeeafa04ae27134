package scene

import (
	"image"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"
)

// Size of the picture in pixels: the window extents times Scale*DPI, scaled
// down so that neither side exceeds MaxSize.
func (s *Scene) Size() (width, height int) {
	w := s.region.Window()
	ppu := s.pixelsPerUnit()
	return int(math.Ceil(w.Width() * ppu)), int(math.Ceil(w.Height() * ppu))
}

func (s *Scene) pixelsPerUnit() float64 {
	ppu := s.opts.Scale * s.opts.DPI
	w := s.region.Window()
	if side := math.Max(w.Width(), w.Height()) * ppu; side > float64(s.opts.MaxSize) {
		ppu = math.Floor(float64(s.opts.MaxSize)/math.Max(w.Width(), w.Height())*1e6) / 1e6
	}
	return ppu
}

// Line widths are given in points and don't shrink with the picture
func (s *Scene) lineWidth(style Style) float64 {
	return style.LineWidth * s.opts.Scale * s.opts.DPI / 72
}

// Image rasterizes the display list.
func (s *Scene) Image() image.Image {
	return s.context().Image()
}

func (s *Scene) EncodePNG(w io.Writer) error {
	return errors.Wrap(s.context().EncodePNG(w), "encoding png")
}

func (s *Scene) SavePNG(path string) error {
	return errors.Wrapf(s.context().SavePNG(path), "saving %s", path)
}

func (s *Scene) context() *gg.Context {
	width, height := s.Size()
	window := s.region.Window()
	ppu := s.pixelsPerUnit()

	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFontFace(basicfont.Face7x13)

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Scale
	c.Scale(ppu, ppu)
	// Translate to min
	c.Translate(-window.MinX, -window.MinY)

	for _, shape := range s.list.Shapes() {
		s.drawShape(c, shape)
	}
	return c
}

func (s *Scene) drawShape(c *gg.Context, shape Shape) {
	style := shape.Style
	switch shape.Kind {
	case KindLine, KindPolygon:
		if len(shape.Points) == 0 {
			return
		}
		c.MoveTo(shape.Points[0].X, shape.Points[0].Y)
		for _, p := range shape.Points[1:] {
			c.LineTo(p.X, p.Y)
		}
		if shape.Kind == KindPolygon {
			c.ClosePath()
		}
	case KindCircle:
		c.DrawCircle(shape.Center.X, shape.Center.Y, shape.Radius)
	case KindText:
		s.drawText(c, shape)
		return
	}

	if style.Fill != nil && shape.Kind != KindLine {
		c.SetColor(style.Fill)
		c.FillPreserve()
	}
	if style.Stroke != nil {
		c.SetColor(style.Stroke)
		c.SetLineWidth(s.lineWidth(style))
		if style.Dashed {
			k := s.lineWidth(style)
			c.SetDash(4*k, 3*k)
		}
		c.StrokePreserve()
		c.SetDash()
	}
	c.ClearPath()
}

// Text is drawn in device space so that it isn't flipped. basicfont is 13px
// high; scaling the context gives the requested size.
func (s *Scene) drawText(c *gg.Context, shape Shape) {
	if shape.Style.Fill == nil || shape.Text == "" {
		return
	}
	x, y := c.TransformPoint(shape.Center.X, shape.Center.Y)
	k := shape.Style.FontSize / 13
	if k <= 0 {
		k = 1
	}
	c.Push()
	c.Identity()
	c.Translate(x, y)
	c.Scale(k, k)
	c.SetColor(shape.Style.Fill)
	c.DrawStringAnchored(shape.Text, 0, 0, shape.Anchor.X, shape.Anchor.Y)
	c.Pop()
}
