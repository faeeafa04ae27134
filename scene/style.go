package scene

import (
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Style of a shape. A nil color is not painted. LineWidth is in points and
// FontSize in pixels; both are scaled with the scene.
type Style struct {
	Stroke    color.Color
	Fill      color.Color
	LineWidth float64
	Dashed    bool
	FontSize  float64
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

var (
	black      = mustHex("#000000")
	regionFill = mustHex("#88d27a")
	regionEdge = mustHex("#54a24b")
	beforeFill = mustHex("#ff9d98")
	red        = mustHex("#e45756")
	pivotFill  = mustHex("#ff0000")
	integerDot = mustHex("#4c78a8")
	gridLine   = mustHex("#bab0ac")
)

var (
	gridStyle      = Style{Stroke: gridLine, LineWidth: 0.8, Dashed: true}
	axisStyle      = Style{Stroke: black, LineWidth: 1}
	labelStyle     = Style{Fill: black, FontSize: 16}
	boundaryStyle  = Style{Stroke: black, LineWidth: 1, Dashed: true}
	regionStyle    = Style{Stroke: regionEdge, Fill: regionFill, LineWidth: 4}
	beforeStyle    = Style{Stroke: red, Fill: beforeFill, LineWidth: 2}
	cutLineStyle   = Style{Stroke: red, LineWidth: 2, Dashed: true}
	objectiveStyle = Style{Stroke: red, LineWidth: 2}
	trailStyle     = Style{Stroke: red, LineWidth: 3}
	pivotStyle     = Style{Fill: pivotFill}
	integerStyle   = Style{Fill: integerDot}
)

// Hex formats a color as #rrggbb, or "none" for nil.
func Hex(c color.Color) string {
	if c == nil {
		return "none"
	}
	cf, ok := colorful.MakeColor(c)
	if !ok {
		return "none"
	}
	return cf.Hex()
}
