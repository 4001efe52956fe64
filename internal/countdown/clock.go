// Package countdown computes time remaining until the New Year in the
// observer's local timezone.
package countdown

import (
	"errors"
	"fmt"
	"time"
)

// ErrBadTarget marks a countdown target that parses as neither a duration
// nor an RFC3339 timestamp.
var ErrBadTarget = errors.New("invalid countdown target")

// NextNewYear returns midnight on January 1 of the year after now, in now's
// location. time.Date normalizes through the location's DST rules, so the
// instant stays correct even when the offset shifts before midnight.
func NextNewYear(now time.Time) time.Time {
	return time.Date(now.Year()+1, time.January, 1, 0, 0, 0, 0, now.Location())
}

// Clock tracks a target instant. Remaining is recomputed from the wall
// clock on every call, so drift and DST transitions self-correct; nothing
// is cached between ticks.
type Clock struct {
	Target time.Time

	// Now is the time source, overridable in tests. Defaults to time.Now.
	Now func() time.Time
}

// NewClock returns a clock counting down to target.
func NewClock(target time.Time) *Clock {
	return &Clock{Target: target, Now: time.Now}
}

// NewYearClock returns a clock counting down to the next local New Year.
func NewYearClock() *Clock {
	return NewClock(NextNewYear(time.Now()))
}

// Remaining returns the duration until the target, never negative.
func (c *Clock) Remaining() time.Duration {
	d := c.Target.Sub(c.now())
	if d < 0 {
		return 0
	}
	return d
}

// Reached reports whether the target instant has passed.
func (c *Clock) Reached() bool {
	return !c.now().Before(c.Target)
}

// Year returns the calendar year the clock counts down to, for the
// midnight flash.
func (c *Clock) Year() int {
	return c.Target.Year()
}

func (c *Clock) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

// Format renders a duration as HH:MM:SS, widening the hour field past 99
// hours instead of wrapping.
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// ParseTarget resolves a --at flag value against now: a Go duration
// ("90s", "2h") offsets from now, an RFC3339 timestamp is taken as-is,
// and the empty string means the next local New Year.
func ParseTarget(s string, now time.Time) (time.Time, error) {
	if s == "" {
		return NextNewYear(now), nil
	}
	if d, err := time.ParseDuration(s); err == nil {
		return now.Add(d), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("%w: %q is neither a duration nor an RFC3339 time", ErrBadTarget, s)
}
