package viz

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// FadeSteps is how many brightness levels each palette color gets. Particle
// age selects a step, so sparks dim instead of vanishing abruptly.
const FadeSteps = 4

// Theme is a firework palette plus the precomputed SGR sequences the canvas
// needs. Slots are laid out as color*FadeSteps+step, followed by the clock
// and the year-flash slots.
type Theme struct {
	Name   string
	colors []colorful.Color
	sgr    []string
}

func newTheme(name, clockHex, yearHex string, hexes ...string) *Theme {
	t := &Theme{Name: name}
	black := colorful.Color{}
	for _, h := range hexes {
		c := colorful.Color{R: 1, G: 1, B: 1}
		if parsed, err := colorful.Hex(h); err == nil {
			c = parsed
		}
		t.colors = append(t.colors, c)
		for step := 0; step < FadeSteps; step++ {
			faded := c.BlendLuv(black, float64(step)/FadeSteps*0.85)
			t.sgr = append(t.sgr, sgrFor(faded))
		}
	}
	for _, h := range []string{clockHex, yearHex} {
		c := colorful.Color{R: 1, G: 1, B: 1}
		if parsed, err := colorful.Hex(h); err == nil {
			c = parsed
		}
		t.sgr = append(t.sgr, sgrFor(c))
	}
	return t
}

func sgrFor(c colorful.Color) string {
	r, g, b := c.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm", r, g, b)
}

// Colors returns the number of base palette colors a shell can pick from.
func (t *Theme) Colors() int { return len(t.colors) }

// SGR returns the escape table for Canvas.Render.
func (t *Theme) SGR() []string { return t.sgr }

// Slot maps a palette color and a fade (1 fresh .. 0 dead) to a tint slot.
func (t *Theme) Slot(color int, fade float64) int {
	if len(t.colors) == 0 {
		return -1
	}
	if color < 0 || color >= len(t.colors) {
		color = 0
	}
	step := int((1 - fade) * FadeSteps)
	if step < 0 {
		step = 0
	}
	if step >= FadeSteps {
		step = FadeSteps - 1
	}
	return color*FadeSteps + step
}

// SlotClock is the tint for the countdown digits.
func (t *Theme) SlotClock() int { return len(t.colors) * FadeSteps }

// SlotYear is the tint for the midnight year flash.
func (t *Theme) SlotYear() int { return len(t.colors)*FadeSteps + 1 }

// Available themes
var Themes = []*Theme{
	newTheme("neon", "#e0e0e0", "#00ff00",
		"#ff00ff", "#00ffff", "#ffff00", "#ff0080", "#00ff80",
		"#ff8000", "#8000ff", "#ff0000", "#00ff00", "#0080ff"),
	newTheme("ember", "#ffd9a0", "#ffcc00",
		"#ff4400", "#ff8800", "#ffcc00", "#ff6655", "#ffaa33"),
	newTheme("aurora", "#d0ffe8", "#66ffcc",
		"#00ff99", "#33ccff", "#9966ff", "#66ffcc", "#3388ff"),
	newTheme("mono", "#ffffff", "#ffffff",
		"#ffffff", "#cccccc", "#999999"),
}

// GetTheme returns a theme by name, defaulting to the first theme.
func GetTheme(name string) *Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names.
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
