package aggregation

import (
	"strconv"

	"mad-cca/internal/core"
)

// Parameters reports the lattice settings and live aggregation statistics.
func (s *Sim) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "Lattice",
			Params: []core.Parameter{
				intParam("l", "Lattice size", s.cfg.Size),
				intParam("n", "Particles", s.cfg.Particles),
				int64Param("seed", "Seed", s.cfg.Seed),
			},
		},
		{
			Name: "Aggregation",
			Params: []core.Parameter{
				intParam("clusters", "Clusters", s.engine.Clusters()),
				intParam("largest", "Largest cluster", s.engine.Largest()),
				intParam("merges", "Merges", s.engine.Merges()),
				intParam("steps", "Steps", s.engine.Steps()),
			},
		},
	}
	if dim, err := s.Dimension(); err == nil {
		groups = append(groups, core.ParameterGroup{
			Name:   "Fractal",
			Params: []core.Parameter{floatParam("dimension", "Box-count dimension", dim)},
		})
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable lattice settings.
func (s *Sim) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "l", Label: "Lattice size", Step: 5, Min: MinSize, Max: MaxSize},
		{Key: "n", Label: "Particles", Step: 50, Min: MinParticles, Max: MaxParticles},
	}
}

// SetIntParameter rebuilds the engine with a new lattice size or particle
// count. The particle count is clamped to the lattice capacity.
func (s *Sim) SetIntParameter(key string, value int) bool {
	var ctrl core.ParameterControl
	found := false
	for _, c := range s.ParameterControls() {
		if c.Key == key {
			ctrl, found = c, true
		}
	}
	if !found {
		return false
	}
	cfg := s.cfg
	switch key {
	case "l":
		cfg.Size = ctrl.Clamp(value)
	case "n":
		cfg.Particles = ctrl.Clamp(value)
	}
	if clampConfig(cfg) == s.cfg {
		return false
	}
	return s.reconfigure(cfg)
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', 3, 64),
	}
}
