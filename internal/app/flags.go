package app

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"terrarium/internal/core"
)

// Config represents the command-line parameters shared by the front-ends.
type Config struct {
	Sim      string
	Width    int
	Height   int
	Scale    int
	TPS      int
	Seed     int64
	Temp     int
	Delay    int
	LogLevel string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "granular", Width: 200, Height: 140, Scale: 4, TPS: 30, Seed: 42, Temp: 30, Delay: 500, LogLevel: "info"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, fmt.Sprintf("automaton to run (%s)", strings.Join(core.Names(), ", ")))
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the automaton's random source")
	fs.IntVar(&c.Temp, "temperature", c.Temp, "temperature driving evaporation")
	fs.IntVar(&c.Delay, "water-cycle-delay", c.Delay, "extra stride between evaporation samples")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
}

// AutomatonConfig returns the settings forwarded to the automaton factory.
func (c *Config) AutomatonConfig() map[string]string {
	return map[string]string{
		"temperature":       strconv.Itoa(c.Temp),
		"water_cycle_delay": strconv.Itoa(c.Delay),
	}
}

// Logger builds a logger writing to w at the configured level. Unknown levels
// fall back to info.
func (c *Config) Logger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{Prefix: prefix, ReportTimestamp: true})
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
