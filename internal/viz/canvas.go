package viz

import (
	"strings"
)

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
//
// Unicode offset 0x2800
var pixelMap = [4][2]int{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const sgrReset = "\x1b[0m"

// Canvas is a braille pixel buffer. Width and Height are character cells;
// the addressable pixel space is (Width*2) x (Height*4). Each cell carries a
// tint slot, an index into a palette of SGR sequences (see Theme.SGR).
// Last writer wins on tint, matching how overlapping sparks look anyway.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
	Tint          [][]int
}

func NewCanvas(w, h int) *Canvas {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
		Tint:   make([][]int, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
		c.Tint[i] = make([]int, w)
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800 // Empty braille char
			c.Tint[i][j] = -1
		}
	}
	return c
}

// PixelWidth and PixelHeight report the sub-cell resolution.
func (c *Canvas) PixelWidth() int  { return c.Width * 2 }
func (c *Canvas) PixelHeight() int { return c.Height * 4 }

// Set turns on the pixel at (x, y) in sub-pixel coordinates and tints the
// containing cell. Out-of-bounds coordinates are ignored.
func (c *Canvas) Set(x, y, tint int) {
	if x < 0 || y < 0 {
		return
	}

	col := x / 2
	row := y / 4
	if col >= c.Width || row >= c.Height {
		return
	}

	subX := x % 2
	subY := y % 4

	c.Grid[row][col] |= rune(pixelMap[subY][subX])
	c.Tint[row][col] = tint
}

// Clear resets every cell to the empty braille glyph with no tint.
func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = 0x2800
			c.Tint[i][j] = -1
		}
	}
}

// DrawLine draws a line using Bresenham's algorithm.
func (c *Canvas) DrawLine(x0, y0, x1, y1, tint int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		c.Set(x0, y0, tint)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// Render emits the canvas with color escapes. colors[i] is the SGR prefix
// for tint slot i; runs of identical tint share one escape to keep frames
// small. Slots outside the palette render untinted.
func (c *Canvas) Render(colors []string) string {
	var b strings.Builder
	b.Grow(c.Width*c.Height + c.Height*8)
	for i, row := range c.Grid {
		current := -1
		for j, r := range row {
			tint := c.Tint[i][j]
			if tint >= len(colors) {
				tint = -1
			}
			if tint != current {
				if current != -1 {
					b.WriteString(sgrReset)
				}
				if tint != -1 {
					b.WriteString(colors[tint])
				}
				current = tint
			}
			b.WriteRune(r)
		}
		if current != -1 {
			b.WriteString(sgrReset)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String renders without color, one line per cell row.
func (c *Canvas) String() string {
	var b strings.Builder
	for _, row := range c.Grid {
		b.WriteString(string(row) + "\n")
	}
	return b.String()
}

// Blank reports whether no pixel is set.
func (c *Canvas) Blank() bool {
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				return false
			}
		}
	}
	return true
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
