package terrarium

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terrarium/internal/core"
	"terrarium/internal/material"
)

func TestNewValidatesDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-4, 4}} {
		_, err := New(dims[0], dims[1])
		assert.ErrorIs(t, err, core.ErrInvalidDimensions)
	}
	_, err := New(3, 3, WithKind("lava"))
	assert.ErrorIs(t, err, core.ErrUnknownAutomaton)
	assert.ErrorContains(t, err, "basic, granular")
}

func TestNewStartsEmpty(t *testing.T) {
	for _, kind := range []string{"basic", "granular"} {
		tr, err := New(4, 3, WithKind(kind))
		require.NoError(t, err)
		assert.Equal(t, kind, tr.Automaton().Name())
		assert.Equal(t, core.Size{W: 4, H: 3}, tr.Size())
		assert.Equal(t, 12, tr.Census()[material.Empty])
	}
}

func TestPaintSquareHalfOpenAndClipped(t *testing.T) {
	tr, err := New(5, 5, WithKind("basic"))
	require.NoError(t, err)

	tr.PaintSquare(1, 1, 1)
	for row := 0; row < 5; row++ {
		for col := 0; col < 5; col++ {
			want := material.Empty
			if row < 2 && col < 2 {
				want = material.Dirt
			}
			assert.Equal(t, want, tr.Get(row, col), "(%d,%d)", row, col)
		}
	}
	assert.Equal(t, material.Empty, tr.Get(4, 4))

	n, err := tr.Paint(4, 4, 3, material.Water)
	require.NoError(t, err)
	assert.Equal(t, 16, n, "square clipped to rows and cols 1..4")
}

func TestPaintRejectsWall(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	logger.SetLevel(log.DebugLevel)

	tr, err := New(3, 3, WithLogger(logger))
	require.NoError(t, err)
	n, err := tr.Paint(1, 1, 1, material.Wall)
	assert.ErrorIs(t, err, core.ErrOutOfBounds)
	assert.Zero(t, n)
	assert.Contains(t, buf.String(), "brush rejected")
}

func TestScenarioFallingGrain(t *testing.T) {
	tr, err := New(3, 3, WithKind("basic"))
	require.NoError(t, err)
	require.NoError(t, tr.Automaton().Set(0, 1, material.Dirt))

	want := []core.Point{{Row: 1, Col: 1}, {Row: 2, Col: 1}, {Row: 2, Col: 1}}
	for i, p := range want {
		tr.Tick()
		assert.Equal(t, material.Dirt, tr.Get(p.Row, p.Col), "tick %d", i+1)
		assert.Equal(t, 1, tr.Census()[material.Dirt])
	}
	assert.Equal(t, uint64(3), tr.Ticks())

	tr.Reset(0)
	assert.Zero(t, tr.Ticks())
	assert.Zero(t, tr.Census()[material.Dirt])
}

func TestConfigAndSeedReachAutomaton(t *testing.T) {
	tr, err := New(6, 4, WithSeed(99), WithConfig(map[string]string{"temperature": "55", "w": "100"}))
	require.NoError(t, err)
	assert.Equal(t, core.Size{W: 6, H: 4}, tr.Size(), "explicit size wins over config")

	provider, ok := tr.Automaton().(core.ParameterProvider)
	require.True(t, ok)
	snap := provider.Parameters()
	temp, _ := snap.Lookup("temperature")
	seed, _ := snap.Lookup("seed")
	assert.Equal(t, "55", temp.Value)
	assert.Equal(t, "99", seed.Value)
}
