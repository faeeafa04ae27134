package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// brailleBuf is a canvas of braille cells, 2x4 micro-pixels each. Every cell
// remembers the color of the last shape that touched it.
type brailleBuf struct {
	w, h  int        // in cells
	m     [][]uint8  // per-cell 8-bit mask
	color [][]string // per-cell foreground, "" for the default
	ink   string
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	color := make([][]string, h)
	for i := range m {
		m[i] = make([]uint8, w)
		color[i] = make([]string, w)
	}
	return &brailleBuf{w: w, h: h, m: m, color: color}
}

// Dot numbering of the braille block, by micro-pixel column and row.
var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[rx][ry]
	b.color[cy][cx] = b.ink
}

// drawLine draws a line on the microgrid using Bresenham
func (b *brailleBuf) drawLine(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		b.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// fillPolygon fills a ring with the even-odd rule, one scanline per micro row.
// Only every other micro-pixel is set, so that lines under the fill stay
// readable.
func (b *brailleBuf) fillPolygon(ring [][2]int) {
	for y := 0; y < b.h*4; y++ {
		var xs []int
		for i := range ring {
			p, q := ring[i], ring[(i+1)%len(ring)]
			if p[1] == q[1] { // horizontal edge: skip
				continue
			}
			if (y >= p[1] && y < q[1]) || (y >= q[1] && y < p[1]) {
				t := float64(y-p[1]) / float64(q[1]-p[1])
				xs = append(xs, int(float64(p[0])+t*float64(q[0]-p[0])))
			}
		}
		sort.Ints(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			for x := max(0, xs[i]); x <= min(xs[i+1], b.w*2-1); x++ {
				if (x+y)%2 == 0 {
					b.setPixel(x, y)
				}
			}
		}
	}
}

// fillDisk sets every micro-pixel within r of the center, and at least the
// center itself.
func (b *brailleBuf) fillDisk(cx, cy, r int) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			if (x-cx)*(x-cx)+(y-cy)*(y-cy) <= r*r {
				b.setPixel(x, y)
			}
		}
	}
}

// toLines renders the cells without styling.
func (b *brailleBuf) toLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		row := make([]rune, b.w)
		for x := 0; x < b.w; x++ {
			row[x] = b.rune(x, y)
		}
		out[y] = string(row)
	}
	return out
}

// toStyledLines renders runs of same colored cells with lipgloss.
func (b *brailleBuf) toStyledLines() []string {
	out := make([]string, b.h)
	for y := 0; y < b.h; y++ {
		var line strings.Builder
		var run []rune
		color := ""
		flush := func() {
			if len(run) == 0 {
				return
			}
			if color == "" {
				line.WriteString(string(run))
			} else {
				line.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(string(run)))
			}
			run = run[:0]
		}
		for x := 0; x < b.w; x++ {
			c := b.color[y][x]
			if b.m[y][x] == 0 {
				c = ""
			}
			if c != color {
				flush()
				color = c
			}
			run = append(run, b.rune(x, y))
		}
		flush()
		out[y] = line.String()
	}
	return out
}

func (b *brailleBuf) rune(x, y int) rune {
	mask := b.m[y][x]
	if mask == 0 {
		return ' '
	}
	return rune(0x2800 + int(mask))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
