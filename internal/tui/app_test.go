package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/skyburst/internal/audio"
	"github.com/san-kum/skyburst/internal/config"
	"github.com/san-kum/skyburst/internal/countdown"
)

func testModel(t *testing.T, cfg *config.Config, clock *countdown.Clock) Model {
	t.Helper()
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if cfg.Seed == 0 {
		cfg.Seed = 7
	}
	if clock == nil {
		clock = countdown.NewClock(time.Now().Add(time.Hour))
	}
	m := NewModel(cfg, clock, audio.NewEngine())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

// drive feeds frame ticks at 60Hz until stop returns true.
func drive(t *testing.T, m Model, maxTicks int, stop func(Model) bool) Model {
	t.Helper()
	now := time.Now()
	for i := 0; i < maxTicks; i++ {
		if stop(m) {
			return m
		}
		now = now.Add(time.Second / 60)
		next, _ := m.Update(tickMsg(now))
		m = next.(Model)
	}
	if !stop(m) {
		t.Fatalf("condition not reached in %d ticks", maxTicks)
	}
	return m
}

func TestStartsWaiting(t *testing.T) {
	m := testModel(t, nil, nil)

	if m.phase != phaseWaiting {
		t.Fatalf("fresh model in phase %d", m.phase)
	}
	if !strings.Contains(m.View(), "SPACE") {
		t.Error("waiting view should name the skip key")
	}
}

func TestSpaceSkipsCountdown(t *testing.T) {
	m := testModel(t, nil, nil)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)

	if m.phase != phaseShow {
		t.Fatalf("space should start the show, phase %d", m.phase)
	}
	if m.world == nil {
		t.Fatal("show phase without a world")
	}
}

func TestCountdownReachedStartsShow(t *testing.T) {
	target := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock := countdown.NewClock(target)

	fake := target.Add(-50 * time.Millisecond)
	clock.Now = func() time.Time { return fake }

	m := testModel(t, nil, clock)

	// Short of midnight nothing happens.
	now := time.Now()
	next, _ := m.Update(tickMsg(now))
	m = next.(Model)
	if m.phase != phaseWaiting {
		t.Fatal("show started before the target")
	}

	fake = target.Add(time.Millisecond)
	next, _ = m.Update(tickMsg(now.Add(time.Second / 60)))
	m = next.(Model)
	if m.phase != phaseShow {
		t.Fatal("show did not start at the target")
	}
}

func TestShowRunsToFinished(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Show.Duration = 0.5
	cfg.Show.MinBurst, cfg.Show.MaxBurst = 30, 60

	m := testModel(t, cfg, nil)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)

	m = drive(t, m, 3600, func(m Model) bool { return m.phase == phaseFinished })

	view := m.View()
	if !strings.Contains(view, "HAPPY") {
		t.Error("summary should greet the new year")
	}
	if !strings.Contains(view, "Shells") {
		t.Error("summary should report shell count")
	}
}

func TestAnyKeyExitsSummary(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Show.Duration = 0.5
	cfg.Show.MinBurst, cfg.Show.MaxBurst = 30, 60

	m := testModel(t, cfg, nil)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	m = drive(t, m, 3600, func(m Model) bool { return m.phase == phaseFinished })

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if cmd == nil {
		t.Error("summary should exit on any key")
	}
}

func TestSummaryAutoQuits(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Show.Duration = 0.5
	cfg.Show.MinBurst, cfg.Show.MaxBurst = 30, 60

	m := testModel(t, cfg, nil)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	m = drive(t, m, 3600, func(m Model) bool { return m.phase == phaseFinished })

	// With no keypress the summary must still end the program on its own.
	now := time.Now()
	var quitCmd tea.Cmd
	for i := 0; i < int(summaryLinger*60)+120; i++ {
		now = now.Add(time.Second / 60)
		next, cmd := m.Update(tickMsg(now))
		m = next.(Model)
		if m.linger <= 0 {
			quitCmd = cmd
			break
		}
	}
	if quitCmd == nil {
		t.Fatal("summary never quit on its own")
	}
	if _, ok := quitCmd().(tea.QuitMsg); !ok {
		t.Fatal("expected a quit command when the linger expires")
	}
}

func TestSpaceLaunchesDuringShow(t *testing.T) {
	m := testModel(t, nil, nil)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)

	before := m.world.Stats.ShellsLaunched
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)

	if m.world.Stats.ShellsLaunched != before+1 {
		t.Errorf("manual launch not registered: %d -> %d", before, m.world.Stats.ShellsLaunched)
	}
}

func TestResizeRebuildsCanvas(t *testing.T) {
	m := testModel(t, nil, nil)
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)

	next, _ = m.Update(tea.WindowSizeMsg{Width: 40, Height: 12})
	m = next.(Model)

	if m.canvas.Width != 40 || m.canvas.Height != 11 {
		t.Errorf("canvas %dx%d after resize", m.canvas.Width, m.canvas.Height)
	}
	if m.world.Width != float64(m.canvas.PixelWidth()) {
		t.Errorf("world width %f, canvas pixel width %d", m.world.Width, m.canvas.PixelWidth())
	}
}

func TestQuitKeys(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyRunes, Runes: []rune{'q'}},
	} {
		m := testModel(t, nil, nil)
		_, cmd := m.Update(key)
		if cmd == nil {
			t.Errorf("key %v should quit", key)
		}
	}
}

func TestDtClamp(t *testing.T) {
	m := testModel(t, nil, nil)

	base := time.Now()
	m.measureDt(base)
	if dt := m.measureDt(base.Add(3 * time.Second)); dt != maxDt {
		t.Errorf("stalled frame dt %f, want clamp %f", dt, maxDt)
	}
	if dt := m.measureDt(base.Add(2 * time.Second)); dt != 0 {
		t.Errorf("backwards clock dt %f, want 0", dt)
	}
}

func TestDownsample(t *testing.T) {
	long := make([]float64, 600)
	for i := range long {
		long[i] = float64(i)
	}

	out := downsample(long, 60)
	if len(out) != 60 {
		t.Fatalf("expected 60 samples, got %d", len(out))
	}

	short := []float64{1, 2, 3}
	if got := downsample(short, 60); len(got) != 3 {
		t.Errorf("short series should pass through, got %d", len(got))
	}
}
