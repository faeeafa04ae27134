package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetPixel(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.setPixel(0, 0)
	b.setPixel(1, 3)
	b.setPixel(-1, 0)
	b.setPixel(4, 0)
	b.setPixel(0, 4)
	assert.Equal(t, uint8(0x81), b.m[0][0])
	assert.Equal(t, uint8(0), b.m[0][1])
	assert.Equal(t, []string{"⢁ "}, b.toLines())
}

func TestDrawLine(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.drawLine(0, 0, 3, 0)
	assert.Equal(t, []string{"⠉⠉"}, b.toLines())

	b = newBrailleBuf(1, 1)
	b.drawLine(0, 3, 0, 0)
	assert.Equal(t, []string{"⡇"}, b.toLines())
}

func TestFillPolygon(t *testing.T) {
	b := newBrailleBuf(4, 2)
	b.fillPolygon([][2]int{{0, 0}, {7, 0}, {7, 7}, {0, 7}})

	filled := 0
	for y := range b.m {
		for x := range b.m[y] {
			assert.NotZero(t, b.m[y][x], "cell %d,%d", x, y)
			for bits := b.m[y][x]; bits != 0; bits &= bits - 1 {
				filled++
			}
		}
	}
	// Half the micro-pixels of the rows the scanlines cross
	assert.Equal(t, 28, filled)
}

func TestFillDisk(t *testing.T) {
	b := newBrailleBuf(1, 1)
	b.fillDisk(0, 0, 0)
	assert.Equal(t, uint8(0x01), b.m[0][0])
}

func TestStyledLines(t *testing.T) {
	b := newBrailleBuf(3, 1)
	b.ink = "#e45756"
	b.setPixel(0, 0)
	b.ink = ""
	b.setPixel(4, 0)

	lines := b.toStyledLines()
	assert.Len(t, lines, 1)
	assert.Contains(t, lines[0], "⠁")
	assert.True(t, strings.HasSuffix(lines[0], " ⠁"), "unstyled cells are written as is: %q", lines[0])
}
