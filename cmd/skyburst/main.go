package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/san-kum/skyburst/internal/audio"
	"github.com/san-kum/skyburst/internal/config"
	"github.com/san-kum/skyburst/internal/countdown"
	"github.com/san-kum/skyburst/internal/tui"
	"github.com/san-kum/skyburst/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	theme      string
	at         string
	fps        int
	seed       uint64
	mute       bool
	skip       bool
	duration   float64
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "skyburst",
		Short: "new year's eve fireworks in your terminal",
		RunE:  runShow,
	}

	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.Flags().StringVar(&theme, "theme", config.DefaultTheme, "color theme")
	rootCmd.Flags().StringVar(&at, "at", "", "countdown target (duration like 10s, or RFC3339; default next new year)")
	rootCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (0 picks one)")
	rootCmd.Flags().BoolVar(&mute, "mute", false, "disable audio")
	rootCmd.Flags().BoolVar(&skip, "skip", false, "skip the countdown and start the show")
	rootCmd.Flags().Float64Var(&duration, "duration", config.DefaultDuration, "show length in seconds")

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tCOLORS")
			for _, t := range viz.Themes {
				fmt.Fprintf(w, "%s\t%d\n", t.Name, t.Colors())
			}
			return w.Flush()
		},
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list show presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tTHEME\tDURATION\tBURST")
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%s\t%.0fs\t%d-%d\n",
					name, p.Theme, p.Show.Duration, p.Show.MinBurst, p.Show.MaxBurst)
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(themesCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildConfig merges preset, config file, and flags. Flags win over the
// file, the file wins over the preset.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("theme") {
		cfg.Theme = theme
	}
	if cmd.Flags().Changed("fps") {
		cfg.FPS = fps
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("mute") {
		cfg.Mute = mute
	}
	if cmd.Flags().Changed("duration") {
		cfg.Show.Duration = duration
	}
	if cmd.Flags().Changed("at") {
		cfg.Target = at
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	known := false
	for _, n := range viz.ThemeNames() {
		if n == cfg.Theme {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("unknown theme: %s (available: %v)", cfg.Theme, viz.ThemeNames())
	}
	return cfg, nil
}

func runShow(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	now := time.Now()
	target, err := countdown.ParseTarget(cfg.Target, now)
	if err != nil {
		return err
	}
	if skip {
		target = now
	}
	clock := countdown.NewClock(target)

	engine := audio.NewEngine()
	if !cfg.Mute {
		// A missing sound device is not fatal, the show just runs silent.
		_ = engine.Start()
	}
	defer engine.Stop()

	return tui.Run(cfg, clock, engine)
}
