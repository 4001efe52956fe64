package sky

// Vec3 is a position or velocity in canvas-pixel space. Y grows downward
// (terminal convention); Z grows away from the viewer.
type Vec3 struct {
	X, Y, Z float64
}

// Particle is a single spark from a burst. It lives for Life seconds,
// falling under gravity and bleeding speed through per-step damping.
type Particle struct {
	Pos  Vec3
	Vel  Vec3
	Age  float64
	Life float64
}

// Step advances the particle by dt seconds.
func (p *Particle) Step(dt, gravity, drag float64) {
	p.Vel.Y += gravity * dt
	p.Vel.X *= drag
	p.Vel.Y *= drag
	p.Vel.Z *= drag
	p.Pos.X += p.Vel.X * dt
	p.Pos.Y += p.Vel.Y * dt
	p.Pos.Z += p.Vel.Z * dt
	p.Age += dt
}

// Alive reports whether the particle has lifetime left.
func (p *Particle) Alive() bool {
	return p.Age < p.Life
}

// Fade returns remaining life as a 1..0 ramp for color dimming.
func (p *Particle) Fade() float64 {
	if p.Life <= 0 {
		return 0
	}
	f := 1 - p.Age/p.Life
	if f < 0 {
		return 0
	}
	return f
}
