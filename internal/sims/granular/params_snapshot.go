package granular

import "terrarium/internal/core"

const (
	maxTemperature     = 100
	maxWaterCycleDelay = 5000
)

// Parameters reports the configuration and the last tick's activity.
func (a *Automaton) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				core.IntParam("w", "Width", a.grid.W),
				core.IntParam("h", "Height", a.grid.H),
				core.Int64Param("seed", "Seed", a.cfg.Seed),
			},
		},
		{
			Name: "Water cycle",
			Params: []core.Parameter{
				core.IntParam("temperature", "Temperature", a.cfg.Temperature),
				core.IntParam("water_cycle_delay", "Water cycle delay", a.cfg.WaterCycleDelay),
				core.IntParam("jumps", "Stride table size", len(a.jumps)),
			},
		},
		{
			Name: "Last tick",
			Params: []core.Parameter{
				core.IntParam("moves", "Moves", a.stats.Moves),
				core.IntParam("evaporated", "Evaporated", a.stats.Evaporated),
				core.IntParam("condensed", "Condensed", a.stats.Condensed),
			},
		},
	}}
}

// ParameterControls lists the values front-ends may adjust.
func (a *Automaton) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "temperature", Label: "Temperature", Step: 5, Min: 0, Max: maxTemperature, HasMin: true, HasMax: true},
		{Key: "water_cycle_delay", Label: "Cycle delay", Step: 50, Min: 0, Max: maxWaterCycleDelay, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates a tunable, clamping it into range. It reports
// whether key names a known parameter.
func (a *Automaton) SetIntParameter(key string, value int) bool {
	for _, ctrl := range a.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		value = ctrl.Clamp(value)
		switch key {
		case "temperature":
			a.cfg.Temperature = value
		case "water_cycle_delay":
			a.cfg.WaterCycleDelay = value
		}
		return true
	}
	return false
}

func init() {
	core.Register("granular", func(cfg map[string]string) (core.Automaton, error) {
		a, err := NewWithConfig(FromMap(cfg))
		if err != nil {
			return nil, err
		}
		return a, nil
	})
}
