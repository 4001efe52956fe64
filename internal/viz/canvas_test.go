package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(10, 5)

	c.Set(0, 0, 2)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected dot 1, got %x", c.Grid[0][0])
	}
	if c.Tint[0][0] != 2 {
		t.Errorf("expected tint 2, got %d", c.Tint[0][0])
	}

	// Two pixels in the same cell accumulate dots.
	c.Set(1, 3, 2)
	if c.Grid[0][0]&0x80 == 0 {
		t.Errorf("second dot not merged, got %x", c.Grid[0][0])
	}
}

func TestCanvasOutOfBounds(t *testing.T) {
	c := NewCanvas(4, 4)

	c.Set(-1, 0, 0)
	c.Set(0, -1, 0)
	c.Set(c.PixelWidth(), 0, 0)
	c.Set(0, c.PixelHeight(), 0)

	if !c.Blank() {
		t.Error("out of bounds writes changed the canvas")
	}
}

func TestCanvasClampsSize(t *testing.T) {
	c := NewCanvas(0, -3)
	if c.Width != 1 || c.Height != 1 {
		t.Errorf("expected 1x1, got %dx%d", c.Width, c.Height)
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(8, 8)
	c.Set(3, 3, 1)
	c.Clear()

	if !c.Blank() {
		t.Error("clear left pixels behind")
	}
	if c.Tint[0][1] != -1 {
		t.Error("clear left tint behind")
	}
}

func TestDrawLine(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(0, 0, 19, 39, 0)

	if c.Blank() {
		t.Fatal("line drew nothing")
	}
	// Endpoints must be lit.
	if c.Grid[0][0] == 0x2800 {
		t.Error("line misses its start")
	}
	if c.Grid[9][9] == 0x2800 {
		t.Error("line misses its end")
	}
}

func TestRenderColorRuns(t *testing.T) {
	c := NewCanvas(4, 1)
	colors := []string{"\x1b[31m", "\x1b[32m"}

	// Neighboring cells with the same tint share one escape.
	c.Set(0, 0, 0)
	c.Set(2, 0, 0)
	c.Set(4, 0, 1)
	c.Set(6, 0, 1)

	out := c.Render(colors)
	if got := strings.Count(out, colors[0]); got != 1 {
		t.Errorf("expected one red escape for the run, got %d", got)
	}
	if got := strings.Count(out, colors[1]); got != 1 {
		t.Errorf("expected one green escape, got %d", got)
	}
	if !strings.HasSuffix(strings.TrimRight(out, "\n"), sgrReset) {
		t.Error("colored row must end with a reset")
	}
}

func TestRenderUnknownTintUntinted(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0, 99)

	out := c.Render([]string{"\x1b[31m"})
	if strings.Contains(out, "\x1b[31m") {
		t.Error("out of palette tint picked up a color")
	}
}

func TestStringShape(t *testing.T) {
	c := NewCanvas(5, 3)
	lines := strings.Split(strings.TrimRight(c.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(lines))
	}
	for _, line := range lines {
		if len([]rune(line)) != 5 {
			t.Errorf("row width %d, want 5", len([]rune(line)))
		}
	}
}
