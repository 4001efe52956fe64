package sky

import (
	"math"
	"math/rand/v2"
)

// Pattern selects the velocity distribution of a burst.
type Pattern int

const (
	// Peony bursts uniformly over a sphere.
	Peony Pattern = iota
	// Ring bursts in a flat horizontal circle.
	Ring
	// Willow bursts slow and long-lived, drooping under gravity.
	Willow
)

func (p Pattern) String() string {
	switch p {
	case Peony:
		return "peony"
	case Ring:
		return "ring"
	case Willow:
		return "willow"
	}
	return "unknown"
}

// ParsePattern maps a config name to a Pattern, defaulting to Peony.
func ParsePattern(s string) Pattern {
	switch s {
	case "ring":
		return Ring
	case "willow":
		return Willow
	default:
		return Peony
	}
}

// Launch-phase constants, tuned against the canvas-pixel coordinate space.
const (
	launchGravity = 100.0
	fuseSeconds   = 1.0
	trailLen      = 15
)

// Shell is one firework: a rising star with a trail that bursts into
// particles once it has coasted past apex for the fuse duration.
type Shell struct {
	Pos     Vec3
	Vel     Vec3
	Color   int // theme palette slot
	Pattern Pattern
	Count   int // particles released on burst

	Exploded  bool
	Trail     []Vec3
	Particles []Particle

	burstGravity float64
	burstDrag    float64
	apex         bool
	sinceApex    float64
}

// NewShell launches a shell from the bottom of a w x h pixel sky, ahead of
// the camera at cameraZ. Palette color is drawn from colors slots.
func NewShell(w, h, cameraZ float64, pattern Pattern, count, colors int, rng *rand.Rand) *Shell {
	s := &Shell{
		Pos: Vec3{
			X: w*0.2 + rng.Float64()*w*0.6,
			Y: h - 1,
			Z: cameraZ + 50 + rng.Float64()*250,
		},
		Vel: Vec3{
			X: -20 + rng.Float64()*40,
			Y: -(156 + rng.Float64()*39), // strong upward
		},
		Pattern: pattern,
		Count:   count,
		Trail:   make([]Vec3, 0, trailLen),
	}
	if colors > 0 {
		s.Color = rng.IntN(colors)
	}
	switch pattern {
	case Willow:
		s.burstGravity = 25.0
		s.burstDrag = 0.99
	default:
		s.burstGravity = 10.0
		s.burstDrag = 0.97
	}
	return s
}

// Step advances the shell by dt. It returns true exactly once, on the step
// the shell bursts, so the caller can fire the audio cue.
func (s *Shell) Step(dt float64, rng *rand.Rand) bool {
	if s.Exploded {
		s.stepParticles(dt)
		return false
	}

	s.Vel.Y += launchGravity * dt
	s.Pos.X += s.Vel.X * dt
	s.Pos.Y += s.Vel.Y * dt

	s.Trail = append(s.Trail, s.Pos)
	if len(s.Trail) > trailLen {
		s.Trail = s.Trail[1:]
	}

	if s.Vel.Y > 0 {
		s.apex = true
	}
	if s.apex {
		s.sinceApex += dt
		if s.sinceApex >= fuseSeconds {
			s.Burst(rng)
			return true
		}
	}
	return false
}

// Burst replaces the rising star with Count particles.
func (s *Shell) Burst(rng *rand.Rand) {
	if s.Exploded {
		return
	}
	s.Exploded = true
	s.Trail = nil
	s.Particles = make([]Particle, 0, s.Count)

	for i := 0; i < s.Count; i++ {
		s.Particles = append(s.Particles, Particle{
			Pos:  s.Pos,
			Vel:  s.burstVelocity(rng),
			Life: s.burstLife(rng),
		})
	}
}

func (s *Shell) burstVelocity(rng *rand.Rand) Vec3 {
	theta := rng.Float64() * 2 * math.Pi

	switch s.Pattern {
	case Ring:
		speed := 120 + rng.Float64()*50
		return Vec3{
			X: speed * math.Cos(theta),
			Y: -4 + rng.Float64()*8, // slight jitter off the plane
			Z: speed * math.Sin(theta),
		}
	case Willow:
		phi := rng.Float64() * math.Pi
		speed := 80 + rng.Float64()*40
		return Vec3{
			X: speed * math.Sin(phi) * math.Cos(theta),
			Y: speed * math.Cos(phi),
			Z: speed * math.Sin(phi) * math.Sin(theta),
		}
	default: // Peony: uniform over a sphere
		phi := rng.Float64() * math.Pi
		speed := 140 + rng.Float64()*70
		return Vec3{
			X: speed * math.Sin(phi) * math.Cos(theta),
			Y: speed * math.Cos(phi),
			Z: speed * math.Sin(phi) * math.Sin(theta),
		}
	}
}

func (s *Shell) burstLife(rng *rand.Rand) float64 {
	if s.Pattern == Willow {
		return 2.5 + rng.Float64()*1.0
	}
	return 1.6 + rng.Float64()*1.1
}

func (s *Shell) stepParticles(dt float64) {
	alive := s.Particles[:0]
	for i := range s.Particles {
		p := s.Particles[i]
		p.Step(dt, s.burstGravity, s.burstDrag)
		if p.Alive() {
			alive = append(alive, p)
		}
	}
	s.Particles = alive
}

// Finished reports whether the shell has burst and all sparks are dead.
func (s *Shell) Finished() bool {
	return s.Exploded && len(s.Particles) == 0
}
