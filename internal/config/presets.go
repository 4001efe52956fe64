package config

import "sort"

var Presets = map[string]*Config{
	"classic": {
		FPS: 60, Theme: "neon",
		Show: ShowConfig{
			Duration: 45.0, MinGap: 0.2, MaxGap: 0.8,
			MinBurst: 450, MaxBurst: 750,
			Patterns: []string{"peony", "ring", "willow"},
		},
	},
	"calm": {
		FPS: 30, Theme: "aurora",
		Show: ShowConfig{
			Duration: 60.0, MinGap: 1.0, MaxGap: 2.5,
			MinBurst: 200, MaxBurst: 400,
			Patterns: []string{"willow", "peony"},
		},
	},
	"finale": {
		FPS: 60, Theme: "ember",
		Show: ShowConfig{
			Duration: 25.0, MinGap: 0.1, MaxGap: 0.4,
			MinBurst: 600, MaxBurst: 900,
			Patterns: []string{"peony", "ring"},
		},
	},
}

// GetPreset returns a copy of the named preset. Callers may mutate the
// result freely; the package-level table stays untouched.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.Show.Patterns = append([]string(nil), p.Show.Patterns...)
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
