// Package audio synthesizes the launch and burst cues through the default
// output device. Cues are fire-and-forget: Trigger never blocks, and if the
// device cannot be opened the engine stays inactive and the show runs
// silent.
package audio

import (
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"
)

const (
	SampleRate = 44100
	BufferSize = 512

	maxVoices = 24
)

// Cue identifies a simulation event with a sound.
type Cue int

const (
	// CueLaunch is the rising whistle of a shell leaving the ground.
	CueLaunch Cue = iota
	// CueBurst is the broadband crack of a shell exploding.
	CueBurst
)

// voice is one playing cue instance.
type voice struct {
	cue   Cue
	age   float64
	dur   float64
	freq  float64 // launch sweep start frequency
	noise uint64  // burst noise state
	filt  float64 // one-pole LPF state
}

// Engine owns the output stream and the active voice list. The portaudio
// callback runs on its own thread; the voice list is the only shared state
// and sits behind mu.
type Engine struct {
	stream *portaudio.Stream

	mu     sync.Mutex
	voices []voice

	Active bool
}

func NewEngine() *Engine {
	return &Engine{}
}

// Start opens the default output stream. On any failure the engine is left
// inactive; callers should keep going without sound.
func (e *Engine) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, e.process)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}
	e.stream = stream
	e.Active = true
	return nil
}

// Stop tears the stream down. Safe to call on an engine that never started.
func (e *Engine) Stop() {
	if e.stream != nil {
		e.stream.Stop()
		e.stream.Close()
		e.stream = nil
		portaudio.Terminate()
	}
	e.Active = false
}

// Trigger queues a cue. No-op when the engine is inactive or saturated.
func (e *Engine) Trigger(c Cue) {
	if !e.Active {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.voices) >= maxVoices {
		return
	}
	e.voices = append(e.voices, newVoice(c))
}

func newVoice(c Cue) voice {
	switch c {
	case CueLaunch:
		return voice{cue: c, dur: 0.8, freq: 180}
	default:
		return voice{cue: c, dur: 1.2, noise: 0x2545f4914f6cdd1d}
	}
}

func (e *Engine) process(out [][]float32) {
	e.mu.Lock()
	defer e.mu.Unlock()

	dt := 1.0 / float64(SampleRate)

	for i := range out[0] {
		sample := 0.0
		for v := range e.voices {
			sample += e.voices[v].render(dt)
		}
		// Soft clip so overlapping finale bursts do not wrap.
		sample = math.Tanh(sample)
		out[0][i] = float32(sample)
		out[1][i] = float32(sample)
	}

	live := e.voices[:0]
	for _, v := range e.voices {
		if v.age < v.dur {
			live = append(live, v)
		}
	}
	e.voices = live
}

// render produces one mono sample and advances the voice.
func (v *voice) render(dt float64) float64 {
	if v.age >= v.dur {
		return 0
	}
	t := v.age / v.dur
	v.age += dt

	switch v.cue {
	case CueLaunch:
		// Triangle sweep 180Hz -> ~700Hz, fading out over the rise.
		f := v.freq + 520*t
		v.filt += f * dt // reuse filt as the oscillator phase
		return triangle(v.filt) * 0.12 * (1 - t)
	default:
		// Filtered noise with an exponential decay tail.
		v.noise ^= v.noise << 13
		v.noise ^= v.noise >> 7
		v.noise ^= v.noise << 17
		n := float64(int64(v.noise))/float64(math.MaxInt64)*2 - 1
		env := math.Exp(-4 * t)
		var outS float64
		outS, v.filt = lpf(n, 900, dt, v.filt)
		return outS * env * 0.35
	}
}

// Triangle wave: smooth, flute-like, no harsh buzz.
func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

// Low pass filter (one pole).
func lpf(sample, cutoff, dt, state float64) (float64, float64) {
	rc := 1.0 / (2.0 * math.Pi * cutoff)
	alpha := dt / (rc + dt)
	out := state + alpha*(sample-state)
	return out, out
}
