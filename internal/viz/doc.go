// Package viz renders the fireworks display in the terminal.
//
// The core type is [Canvas], a braille pixel buffer: every character cell
// encodes a 2x4 dot grid (U+2800..U+28FF), so an 80x24 terminal gives a
// 160x96 addressable surface. Cells carry a tint slot resolved against a
// [Theme] palette, and Render emits color runs rather than per-cell escapes
// to keep 60fps frames cheap.
//
// DrawClock draws the countdown as large 7-segment digits built from the
// same pixel grid.
package viz
