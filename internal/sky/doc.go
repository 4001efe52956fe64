// Package sky simulates the fireworks: shells launch from the bottom of a
// pixel-space sky, coast to apex, and burst into particle clouds that fall
// under gravity with per-step damping. A read-only Timeline schedules the
// show; World steps everything and reports launch/burst events for audio.
//
// Positions are 3D. The renderer sees them through a perspective projection
// relative to a camera that drifts slowly forward, so bursts have depth.
package sky
