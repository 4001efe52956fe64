package sky

import (
	"math/rand/v2"
)

// Event is a simulation occurrence the UI may want to sound.
type Event int

const (
	EventLaunch Event = iota
	EventBurst
)

// Camera projection constants; the camera drifts slowly forward through Z
// so long shows feel like flying into the display.
const (
	cameraDistance = 200.0
	cameraSpeed    = 15.0
	cullBehind     = -50.0
)

// Stats accumulates show totals for the finished-screen summary.
type Stats struct {
	ShellsLaunched int
	PeakParticles  int
	History        []float64 // active particle count per step
}

// World owns the live shells, the timeline cursor, and the camera. Only the
// main loop touches it; all mutation happens inside Step, sequentially.
type World struct {
	Width, Height float64 // pixel bounds
	CameraZ       float64
	Stats         Stats

	timeline *Timeline
	shells   []*Shell
	colors   int
	rng      *rand.Rand
	elapsed  float64
}

// NewWorld creates a world over a w x h pixel sky. colors is the size of
// the active palette; seed fixes the launch randomness.
func NewWorld(w, h int, tl *Timeline, colors int, seed uint64) *World {
	if w < 2 {
		w = 2
	}
	if h < 4 {
		h = 4
	}
	return &World{
		Width:    float64(w),
		Height:   float64(h),
		timeline: tl,
		colors:   colors,
		rng:      rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Resize updates the pixel bounds after a terminal resize. Shells already
// in flight keep their coordinates; off-screen sparks are simply never
// plotted and die on their own timers.
func (w *World) Resize(pw, ph int) {
	if pw < 2 {
		pw = 2
	}
	if ph < 4 {
		ph = 4
	}
	w.Width = float64(pw)
	w.Height = float64(ph)
}

// Step advances the simulation by dt seconds and returns the events that
// occurred, in order.
func (w *World) Step(dt float64) []Event {
	var events []Event

	w.elapsed += dt
	w.CameraZ += cameraSpeed * dt

	for _, l := range w.timeline.Pending(w.elapsed) {
		w.launch(l.Pattern, l.Count)
		events = append(events, EventLaunch)
	}

	live := w.shells[:0]
	for _, s := range w.shells {
		if s.Step(dt, w.rng) {
			events = append(events, EventBurst)
		}
		if s.Finished() || s.Pos.Z-w.CameraZ < cullBehind {
			continue
		}
		live = append(live, s)
	}
	w.shells = live

	n := w.ParticleCount()
	if n > w.Stats.PeakParticles {
		w.Stats.PeakParticles = n
	}
	w.Stats.History = append(w.Stats.History, float64(n))

	return events
}

func (w *World) launch(pattern Pattern, count int) {
	w.shells = append(w.shells, NewShell(w.Width, w.Height, w.CameraZ, pattern, count, w.colors, w.rng))
	w.Stats.ShellsLaunched++
}

// LaunchNow fires an extra shell outside the timeline (SPACE during the
// show), with a mid-sized randomized burst.
func (w *World) LaunchNow() {
	patterns := [...]Pattern{Peony, Ring, Willow}
	w.launch(patterns[w.rng.IntN(len(patterns))], 300+w.rng.IntN(300))
}

// ParticleCount returns the number of live burst particles.
func (w *World) ParticleCount() int {
	n := 0
	for _, s := range w.shells {
		n += len(s.Particles)
	}
	return n
}

// Shells returns the number of shells in flight or still burning.
func (w *World) Shells() int { return len(w.shells) }

// Done reports show completion: timeline exhausted and nothing left in the
// sky.
func (w *World) Done() bool {
	return w.timeline.Exhausted() && len(w.shells) == 0
}

// Visit perspective-projects everything visible and calls plot once per
// point with pixel coordinates, the shell's palette color, and a 1..0 fade.
func (w *World) Visit(plot func(x, y, color int, fade float64)) {
	cx := w.Width / 2
	cy := w.Height / 2

	for _, s := range w.shells {
		if !s.Exploded {
			for _, pos := range s.Trail {
				if x, y, ok := w.project(pos, cx, cy); ok {
					plot(x, y, s.Color, 1)
				}
			}
			continue
		}
		for i := range s.Particles {
			p := &s.Particles[i]
			if x, y, ok := w.project(p.Pos, cx, cy); ok {
				plot(x, y, s.Color, p.Fade())
			}
		}
	}
}

// project maps a world position to screen pixels relative to the camera.
// Points behind the camera are rejected.
func (w *World) project(pos Vec3, cx, cy float64) (int, int, bool) {
	zOffset := pos.Z - w.CameraZ + cameraDistance
	if zOffset <= 0 {
		return 0, 0, false
	}
	scale := cameraDistance / zOffset
	sx := cx + (pos.X-cx)*scale
	sy := cy + (pos.Y-cy)*scale
	if sx < 0 || sx >= w.Width || sy < 0 || sy >= w.Height {
		return 0, 0, false
	}
	return int(sx), int(sy), true
}
