package app

import (
	"bytes"
	"flag"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terrarium/internal/core"
	"terrarium/internal/terrarium"
)

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	require.NoError(t, fs.Parse([]string{"-sim", "basic", "-w", "30", "-temperature", "70", "-water-cycle-delay", "120", "-log-level", "debug"}))

	assert.Equal(t, "basic", cfg.Sim)
	assert.Equal(t, 30, cfg.Width)
	assert.Equal(t, 140, cfg.Height)
	assert.Equal(t, map[string]string{"temperature": "70", "water_cycle_delay": "120"}, cfg.AutomatonConfig())
	assert.Contains(t, fs.Lookup("sim").Usage, "basic, granular")
}

func TestAutomatonConfigReachesGranular(t *testing.T) {
	cfg := NewConfig()
	cfg.Temp = 55
	cfg.Delay = 75
	tr, err := terrarium.New(8, 8, terrarium.WithConfig(cfg.AutomatonConfig()))
	require.NoError(t, err)

	snap := tr.Automaton().(core.ParameterProvider).Parameters()
	temp, ok := snap.Lookup("temperature")
	require.True(t, ok)
	assert.Equal(t, "55", temp.Value)
	delay, ok := snap.Lookup("water_cycle_delay")
	require.True(t, ok)
	assert.Equal(t, "75", delay.Value)
}

func TestLoggerLevel(t *testing.T) {
	var buf bytes.Buffer
	cfg := NewConfig()
	cfg.LogLevel = "nonsense"
	logger := cfg.Logger(&buf, "test")
	assert.Equal(t, log.InfoLevel, logger.GetLevel())

	logger.Debug("hidden")
	logger.Info("shown", "k", 1)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
