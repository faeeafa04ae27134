package tui

import (
	"image/color"
	"math"

	"github.com/osuushi/lpvisu/geometry"
	"github.com/osuushi/lpvisu/scene"
)

// canvas projects problem coordinates onto a braille buffer of w x h cells.
type canvas struct {
	buf    *brailleBuf
	window geometry.BBox
}

func newCanvas(window geometry.BBox, w, h int) *canvas {
	return &canvas{buf: newBrailleBuf(w, h), window: window}
}

// micro maps a point to the 2x4 microgrid, y growing downwards.
func (c *canvas) micro(p geometry.Point) [2]int {
	wMic := c.buf.w * 2
	hMic := c.buf.h * 4
	nx := (p.X - c.window.MinX) / c.window.Width()
	ny := (p.Y - c.window.MinY) / c.window.Height()
	return [2]int{
		int(math.Round(nx * float64(wMic-1))),
		int(math.Round((1 - ny) * float64(hMic-1))),
	}
}

// line draws the part of ab inside the window.
func (c *canvas) line(a, b geometry.Point) {
	seg, ok := c.window.Clip(geometry.Segment{Start: a, End: b})
	if !ok {
		return
	}
	p, q := c.micro(seg.Start), c.micro(seg.End)
	c.buf.drawLine(p[0], p[1], q[0], q[1])
}

// Grid lines and text don't survive the terminal resolution and are left out.
func (c *canvas) draw(shapes []scene.Shape) {
	for _, shape := range shapes {
		if shape.Role == scene.RoleGrid || shape.Kind == scene.KindText {
			continue
		}
		switch shape.Kind {
		case scene.KindLine:
			c.buf.ink = hex(shape.Style.Stroke)
			for i := 1; i < len(shape.Points); i++ {
				c.line(shape.Points[i-1], shape.Points[i])
			}
		case scene.KindPolygon:
			ring := make([][2]int, len(shape.Points))
			for i, p := range shape.Points {
				ring[i] = c.micro(p)
			}
			if shape.Style.Fill != nil {
				c.buf.ink = hex(shape.Style.Fill)
				c.buf.fillPolygon(ring)
			}
			if shape.Style.Stroke != nil {
				c.buf.ink = hex(shape.Style.Stroke)
				for i, p := range shape.Points {
					c.line(p, shape.Points[(i+1)%len(shape.Points)])
				}
			}
		case scene.KindCircle:
			center := c.micro(shape.Center)
			edge := c.micro(geometry.Point{X: shape.Center.X + shape.Radius, Y: shape.Center.Y})
			c.buf.ink = hex(shape.Style.Fill)
			c.buf.fillDisk(center[0], center[1], abs(edge[0]-center[0]))
		}
	}
}

func hex(c color.Color) string {
	h := scene.Hex(c)
	if h == "none" {
		return ""
	}
	return h
}

// Render draws the scene's current picture on a w x h cell canvas.
func Render(s *scene.Scene, w, h int, styled bool) []string {
	c := newCanvas(s.Region().Window(), w, h)
	c.draw(s.Shapes())
	if styled {
		return c.buf.toStyledLines()
	}
	return c.buf.toLines()
}
