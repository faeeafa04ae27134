package scene

import (
	"fmt"
	"io"
	"math"
	"strings"

	svg "github.com/ajstarks/svgo"
	"github.com/pkg/errors"

	"github.com/osuushi/lpvisu/geometry"
)

// svgo ignores write errors, so remember the first one.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}

// WriteSVG writes the display list as an SVG document with the same pixel size
// as the PNG.
func (s *Scene) WriteSVG(w io.Writer) error {
	out := &errWriter{w: w}
	width, height := s.Size()
	canvas := svg.New(out)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:#ffffff")

	toDevice := s.deviceTransform()
	for _, shape := range s.list.Shapes() {
		s.writeShape(canvas, shape, toDevice)
	}
	canvas.End()
	return errors.Wrap(out.err, "writing svg")
}

// deviceTransform maps problem coordinates to pixels, y growing downwards.
func (s *Scene) deviceTransform() func(geometry.Point) (int, int) {
	_, height := s.Size()
	window := s.region.Window()
	ppu := s.pixelsPerUnit()
	return func(p geometry.Point) (int, int) {
		x := (p.X - window.MinX) * ppu
		y := float64(height) - (p.Y-window.MinY)*ppu
		return int(math.Round(x)), int(math.Round(y))
	}
}

func (s *Scene) writeShape(canvas *svg.SVG, shape Shape, toDevice func(geometry.Point) (int, int)) {
	switch shape.Kind {
	case KindLine, KindPolygon:
		xs := make([]int, len(shape.Points))
		ys := make([]int, len(shape.Points))
		for i, p := range shape.Points {
			xs[i], ys[i] = toDevice(p)
		}
		if shape.Kind == KindPolygon {
			canvas.Polygon(xs, ys, s.svgStyle(shape.Style, true))
		} else {
			canvas.Polyline(xs, ys, s.svgStyle(shape.Style, false))
		}
	case KindCircle:
		x, y := toDevice(shape.Center)
		r := int(math.Max(1, math.Round(shape.Radius*s.pixelsPerUnit())))
		canvas.Circle(x, y, r, s.svgStyle(shape.Style, true))
	case KindText:
		if shape.Text == "" {
			return
		}
		x, y := toDevice(shape.Center)
		canvas.Text(x, y, shape.Text, textStyle(shape))
	}
}

func (s *Scene) svgStyle(style Style, filled bool) string {
	fill := "none"
	if filled {
		fill = Hex(style.Fill)
	}
	parts := []string{"fill:" + fill, "stroke:" + Hex(style.Stroke)}
	if style.Stroke != nil {
		width := s.lineWidth(style)
		parts = append(parts, fmt.Sprintf("stroke-width:%.2f", width))
		if style.Dashed {
			parts = append(parts, fmt.Sprintf("stroke-dasharray:%.2f,%.2f", 4*width, 3*width))
		}
	}
	return strings.Join(parts, ";")
}

// Anchors map onto text-anchor and dominant-baseline; whatever lies beyond the
// [0, 1] range becomes a shift in font sizes.
func textStyle(shape Shape) string {
	ax, ay := shape.Anchor.X, shape.Anchor.Y
	anchor := "middle"
	switch {
	case ax <= 0.25:
		anchor = "start"
	case ax >= 0.75:
		anchor = "end"
	}
	baseline := "middle"
	switch {
	case ay <= 0.25:
		baseline = "alphabetic"
	case ay >= 0.75:
		baseline = "hanging"
	}
	size := shape.Style.FontSize
	dx := -(ax - clamp(ax, 0, 1)) * size * 0.6
	dy := (ay - clamp(ay, 0, 1)) * size
	return fmt.Sprintf("fill:%s;font-family:sans-serif;font-size:%.1fpx;text-anchor:%s;dominant-baseline:%s;transform:translate(%.1fpx,%.1fpx)",
		Hex(shape.Style.Fill), size, anchor, baseline, dx, dy)
}
