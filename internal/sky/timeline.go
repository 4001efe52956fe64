package sky

import (
	"math/rand/v2"
	"sort"
)

// Launch is one scheduled firework on the show timeline.
type Launch struct {
	At      float64 // seconds from show start
	Count   int
	Pattern Pattern
}

// Timeline is the predetermined launch schedule. It is read-only after
// Generate; Pending only advances a cursor.
type Timeline struct {
	events []Launch
	next   int
}

// TimelineConfig bounds the generated schedule.
type TimelineConfig struct {
	Duration float64 // seconds of scheduled launches
	MinGap   float64 // seconds between launches
	MaxGap   float64
	MinBurst int // particles per burst
	MaxBurst int
	Patterns []Pattern
}

// minGap bounds the launch interval from below so the schedule always
// advances, whatever the config says.
const minGap = 0.05

// Generate builds a schedule: launches at randomized intervals, tightening
// into a finale over the last fifth of the show.
func Generate(cfg TimelineConfig, rng *rand.Rand) *Timeline {
	if cfg.MaxGap < cfg.MinGap {
		cfg.MaxGap = cfg.MinGap
	}
	if cfg.MaxBurst < cfg.MinBurst {
		cfg.MaxBurst = cfg.MinBurst
	}
	patterns := cfg.Patterns
	if len(patterns) == 0 {
		patterns = []Pattern{Peony}
	}

	tl := &Timeline{}
	t := 0.0
	for t < cfg.Duration {
		tl.events = append(tl.events, Launch{
			At:      t,
			Count:   cfg.MinBurst + rng.IntN(cfg.MaxBurst-cfg.MinBurst+1),
			Pattern: patterns[rng.IntN(len(patterns))],
		})
		gap := cfg.MinGap + rng.Float64()*(cfg.MaxGap-cfg.MinGap)
		if t > cfg.Duration*0.8 {
			gap *= 0.4 // finale
		}
		if gap < minGap {
			gap = minGap
		}
		t += gap
	}
	sort.Slice(tl.events, func(i, j int) bool { return tl.events[i].At < tl.events[j].At })
	return tl
}

// Pending returns the launches due at or before elapsed and advances past
// them.
func (tl *Timeline) Pending(elapsed float64) []Launch {
	start := tl.next
	for tl.next < len(tl.events) && tl.events[tl.next].At <= elapsed {
		tl.next++
	}
	if tl.next == start {
		return nil
	}
	return tl.events[start:tl.next]
}

// Exhausted reports whether every scheduled launch has been handed out.
func (tl *Timeline) Exhausted() bool {
	return tl.next >= len(tl.events)
}

// Len returns the total number of scheduled launches.
func (tl *Timeline) Len() int {
	return len(tl.events)
}
