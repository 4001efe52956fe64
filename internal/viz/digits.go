package viz

// Classic 7-segment digits rasterized onto the braille pixel grid.
// Each glyph is digitW x digitH pixels; segments are 2px thick bars.
const (
	digitW   = 11
	digitH   = 22
	colonW   = 4
	glyphGap = 3
)

const (
	segTop = 1 << iota
	segTopRight
	segBotRight
	segBot
	segBotLeft
	segTopLeft
	segMid
)

var digitSegments = map[rune]uint8{
	'0': segTop | segTopRight | segBotRight | segBot | segBotLeft | segTopLeft,
	'1': segTopRight | segBotRight,
	'2': segTop | segTopRight | segMid | segBotLeft | segBot,
	'3': segTop | segTopRight | segMid | segBotRight | segBot,
	'4': segTopLeft | segTopRight | segMid | segBotRight,
	'5': segTop | segTopLeft | segMid | segBotRight | segBot,
	'6': segTop | segTopLeft | segMid | segBotLeft | segBotRight | segBot,
	'7': segTop | segTopRight | segBotRight,
	'8': segTop | segTopRight | segBotRight | segBot | segBotLeft | segTopLeft | segMid,
	'9': segTop | segTopRight | segBotRight | segBot | segTopLeft | segMid,
}

// segment -> pixel rectangle within a digit, inclusive bounds
var segRects = map[uint8][4]int{
	segTop:      {0, 0, digitW - 1, 1},
	segMid:      {0, digitH/2 - 1, digitW - 1, digitH / 2},
	segBot:      {0, digitH - 2, digitW - 1, digitH - 1},
	segTopLeft:  {0, 0, 1, digitH / 2},
	segBotLeft:  {0, digitH/2 - 1, 1, digitH - 1},
	segTopRight: {digitW - 2, 0, digitW - 1, digitH / 2},
	segBotRight: {digitW - 2, digitH/2 - 1, digitW - 1, digitH - 1},
}

func glyphWidth(r rune) int {
	switch {
	case r == ':':
		return colonW
	default:
		if _, ok := digitSegments[r]; ok {
			return digitW
		}
		return 0
	}
}

// ClockWidth returns the pixel width DrawClock needs for text.
func ClockWidth(text string) int {
	w := 0
	for _, r := range text {
		if gw := glyphWidth(r); gw > 0 {
			w += gw + glyphGap
		}
	}
	if w > 0 {
		w -= glyphGap
	}
	return w
}

// DrawClock renders text (digits and colons) centered on the canvas.
// Runes without a glyph are skipped.
func DrawClock(c *Canvas, text string, tint int) {
	total := ClockWidth(text)
	if total == 0 {
		return
	}
	x := (c.PixelWidth() - total) / 2
	y := (c.PixelHeight() - digitH) / 2

	for _, r := range text {
		switch {
		case r == ':':
			drawColon(c, x, y, tint)
			x += colonW + glyphGap
		default:
			segs, ok := digitSegments[r]
			if !ok {
				continue
			}
			drawDigit(c, x, y, segs, tint)
			x += digitW + glyphGap
		}
	}
}

func drawDigit(c *Canvas, ox, oy int, segs uint8, tint int) {
	for seg, r := range segRects {
		if segs&seg == 0 {
			continue
		}
		for py := r[1]; py <= r[3]; py++ {
			for px := r[0]; px <= r[2]; px++ {
				c.Set(ox+px, oy+py, tint)
			}
		}
	}
}

func drawColon(c *Canvas, ox, oy int, tint int) {
	for _, dotY := range []int{5, 13} {
		for py := dotY; py < dotY+2; py++ {
			for px := 1; px < 3; px++ {
				c.Set(ox+px, oy+py, tint)
			}
		}
	}
}
