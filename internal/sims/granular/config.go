package granular

import "strconv"

// Config controls the granular automaton dimensions and phase transitions.
type Config struct {
	Width  int
	Height int

	Seed int64

	// Temperature shortens the evaporation stride and lengthens the
	// condensation stride as it grows.
	Temperature int
	// WaterCycleDelay is added to every evaporation stride.
	WaterCycleDelay int
	// Jumps is the number of pre-drawn strides cycled through per sweep.
	Jumps int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:           256,
		Height:          192,
		Seed:            1337,
		Temperature:     30,
		WaterCycleDelay: 500,
		Jumps:           10,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["temperature"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Temperature = parsed
		}
	}
	if v, ok := cfg["water_cycle_delay"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.WaterCycleDelay = parsed
		}
	}
	if v, ok := cfg["jumps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Jumps = parsed
		}
	}
	return c
}
