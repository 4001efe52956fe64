// Package tui runs the countdown and the fireworks show as a bubbletea
// program. The model is a three phase machine: waiting on the clock, playing
// the show, then a summary screen.
package tui

import (
	"fmt"
	"math/rand/v2"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/mattn/go-isatty"

	"github.com/san-kum/skyburst/internal/audio"
	"github.com/san-kum/skyburst/internal/config"
	"github.com/san-kum/skyburst/internal/countdown"
	"github.com/san-kum/skyburst/internal/sky"
	"github.com/san-kum/skyburst/internal/viz"
)

const (
	// maxDt caps a simulation step after a stall so particles never
	// teleport across the sky.
	maxDt = 0.05

	yearFlashSeconds = 5.0

	// summaryLinger is how long the finished screen waits before quitting
	// on its own.
	summaryLinger = 10.0
)

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(16)
	valueStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	summaryStyle = lipgloss.NewStyle().Padding(1, 2)
)

type phase int

const (
	phaseWaiting phase = iota
	phaseShow
	phaseFinished
)

type tickMsg time.Time

// Model holds the whole application state.
type Model struct {
	cfg    *config.Config
	theme  *viz.Theme
	clock  *countdown.Clock
	engine *audio.Engine
	seed   uint64

	phase  phase
	canvas *viz.Canvas
	world  *sky.World
	flash  float64
	linger float64
	last   time.Time

	width, height int
}

func NewModel(cfg *config.Config, clock *countdown.Clock, engine *audio.Engine) Model {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	w, h := 80, 23
	return Model{
		cfg:    cfg,
		theme:  viz.GetTheme(cfg.Theme),
		clock:  clock,
		engine: engine,
		seed:   seed,
		canvas: viz.NewCanvas(w, h),
		width:  w,
		height: h,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.FPS), func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update handles input, resizes, and frame ticks.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		switch m.phase {
		case phaseWaiting:
			if msg.String() == " " {
				m.startShow()
			}
		case phaseShow:
			if msg.String() == " " {
				m.world.LaunchNow()
				m.engine.Trigger(audio.CueLaunch)
			}
		case phaseFinished:
			return m, tea.Quit
		}
		return m, nil

	case tickMsg:
		dt := m.measureDt(time.Time(msg))
		if m.advance(dt) {
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

// measureDt returns wall time since the previous tick, clamped to maxDt.
func (m *Model) measureDt(now time.Time) float64 {
	dt := 1.0 / float64(m.cfg.FPS)
	if !m.last.IsZero() {
		dt = now.Sub(m.last).Seconds()
	}
	m.last = now
	if dt > maxDt {
		dt = maxDt
	}
	if dt < 0 {
		dt = 0
	}
	return dt
}

// advance steps the phase machine by dt. It returns true when the program
// should quit, once the summary has lingered long enough.
func (m *Model) advance(dt float64) bool {
	switch m.phase {
	case phaseWaiting:
		if m.clock.Reached() {
			m.startShow()
		}
	case phaseShow:
		for _, ev := range m.world.Step(dt) {
			switch ev {
			case sky.EventLaunch:
				m.engine.Trigger(audio.CueLaunch)
			case sky.EventBurst:
				m.engine.Trigger(audio.CueBurst)
			}
		}
		m.flash -= dt
		if m.world.Done() {
			m.phase = phaseFinished
			m.linger = summaryLinger
		}
	case phaseFinished:
		m.linger -= dt
		if m.linger <= 0 {
			return true
		}
	}
	return false
}

func (m *Model) resize(w, h int) {
	if w < 2 {
		w = 2
	}
	if h < 2 {
		h = 2
	}
	m.width, m.height = w, h
	// Bottom row is the status line; the sky gets the rest.
	m.canvas = viz.NewCanvas(w, h-1)
	if m.world != nil {
		m.world.Resize(m.canvas.PixelWidth(), m.canvas.PixelHeight())
	}
}

func (m *Model) startShow() {
	if m.phase != phaseWaiting {
		return
	}
	rng := rand.New(rand.NewPCG(m.seed, m.seed^0x9e3779b97f4a7c15))

	patterns := make([]sky.Pattern, 0, len(m.cfg.Show.Patterns))
	for _, p := range m.cfg.Show.Patterns {
		patterns = append(patterns, sky.ParsePattern(p))
	}
	tl := sky.Generate(sky.TimelineConfig{
		Duration: m.cfg.Show.Duration,
		MinGap:   m.cfg.Show.MinGap,
		MaxGap:   m.cfg.Show.MaxGap,
		MinBurst: m.cfg.Show.MinBurst,
		MaxBurst: m.cfg.Show.MaxBurst,
		Patterns: patterns,
	}, rng)

	m.world = sky.NewWorld(m.canvas.PixelWidth(), m.canvas.PixelHeight(),
		tl, m.theme.Colors(), m.seed)
	m.flash = yearFlashSeconds
	m.phase = phaseShow
}

// View renders the current phase.
func (m Model) View() string {
	switch m.phase {
	case phaseWaiting:
		return m.viewWaiting()
	case phaseShow:
		return m.viewShow()
	default:
		return m.viewFinished()
	}
}

func (m Model) viewWaiting() string {
	m.canvas.Clear()
	viz.DrawClock(m.canvas, countdown.Format(m.clock.Remaining()), m.theme.SlotClock())
	frame := m.canvas.Render(m.theme.SGR())
	return frame + helpStyle.Render("SPACE: start now  Q: quit")
}

func (m Model) viewShow() string {
	m.canvas.Clear()
	m.world.Visit(func(x, y, color int, fade float64) {
		m.canvas.Set(x, y, m.theme.Slot(color, fade))
	})
	if m.flash > 0 {
		viz.DrawClock(m.canvas, fmt.Sprintf("%d", m.clock.Year()), m.theme.SlotYear())
	}
	frame := m.canvas.Render(m.theme.SGR())
	status := fmt.Sprintf("shells %d  sparks %d", m.world.Stats.ShellsLaunched, m.world.ParticleCount())
	return frame + helpStyle.Render(status+"  SPACE: launch  Q: quit")
}

func (m Model) viewFinished() string {
	var s strings.Builder
	s.WriteString(headerStyle.Render(fmt.Sprintf("HAPPY %d", m.clock.Year())) + "\n\n")
	s.WriteString(labelStyle.Render("Shells") + valueStyle.Render(fmt.Sprintf("%d", m.world.Stats.ShellsLaunched)) + "\n")
	s.WriteString(labelStyle.Render("Peak sparks") + valueStyle.Render(fmt.Sprintf("%d", m.world.Stats.PeakParticles)) + "\n")
	if hist := m.world.Stats.History; len(hist) > 1 {
		chart := asciigraph.Plot(downsample(hist, 60), asciigraph.Height(6), asciigraph.Width(60), asciigraph.Caption("sparks over time"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}
	s.WriteString("\n" + helpStyle.Render("press any key to exit"))
	return summaryStyle.Render(s.String())
}

// downsample thins a history series so the summary chart stays narrow.
func downsample(in []float64, n int) []float64 {
	if len(in) <= n {
		return in
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = in[i*len(in)/n]
	}
	return out
}

// Run wires the model into a bubbletea program on the alternate screen.
func Run(cfg *config.Config, clock *countdown.Clock, engine *audio.Engine) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return fmt.Errorf("stdout is not a terminal")
	}
	p := tea.NewProgram(NewModel(cfg, clock, engine), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
