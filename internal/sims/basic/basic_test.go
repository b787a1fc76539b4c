package basic

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terrarium/internal/core"
	"terrarium/internal/material"
)

func newAutomaton(t *testing.T, w, h int) *Automaton {
	t.Helper()
	a, err := New(w, h)
	require.NoError(t, err)
	return a
}

func TestNewRejectsInvalidDimensions(t *testing.T) {
	_, err := New(0, 4)
	assert.ErrorIs(t, err, core.ErrInvalidDimensions)
	_, err = New(4, -1)
	assert.ErrorIs(t, err, core.ErrInvalidDimensions)
}

func TestSingleGrainFallsToFloor(t *testing.T) {
	a := newAutomaton(t, 3, 3)
	require.NoError(t, a.Set(0, 1, material.Dirt))

	a.Tick()
	assert.Equal(t, material.Dirt, a.Get(1, 1))
	assert.Equal(t, material.Empty, a.Get(0, 1))

	a.Tick()
	assert.Equal(t, material.Dirt, a.Get(2, 1))
	assert.Equal(t, material.Empty, a.Get(1, 1))

	a.Tick()
	assert.Equal(t, material.Dirt, a.Get(2, 1), "bottom row rests on the wall")
	assert.Equal(t, 1, countDirt(a))
}

func TestStableGridUnchanged(t *testing.T) {
	a := newAutomaton(t, 4, 3)
	for col := 0; col < 4; col++ {
		require.NoError(t, a.Set(2, col, material.Dirt))
	}
	require.NoError(t, a.Set(1, 2, material.Dirt))
	require.NoError(t, a.Set(0, 0, material.Water))

	before := slices.Clone(a.Cells())
	a.Tick()
	assert.Equal(t, before, a.Cells())
}

func TestFallsOneRowPerTick(t *testing.T) {
	a := newAutomaton(t, 1, 8)
	require.NoError(t, a.Set(0, 0, material.Dirt))
	for tick := 1; tick < 8; tick++ {
		a.Tick()
		assert.Equal(t, material.Dirt, a.Get(tick, 0), "tick %d", tick)
		assert.Equal(t, 1, countDirt(a))
	}
}

func TestColumnFallsWithoutMerging(t *testing.T) {
	a := newAutomaton(t, 1, 5)
	require.NoError(t, a.Set(0, 0, material.Dirt))
	require.NoError(t, a.Set(1, 0, material.Dirt))

	a.Tick()
	// Only the lower grain sees an empty cell below it in the snapshot.
	assert.Equal(t, []material.State{material.Dirt, material.Empty, material.Dirt, material.Empty, material.Empty}, a.Cells())
	a.Tick()
	assert.Equal(t, []material.State{material.Empty, material.Dirt, material.Empty, material.Dirt, material.Empty}, a.Cells())
}

func TestMassConservedOverManyTicks(t *testing.T) {
	a := newAutomaton(t, 7, 9)
	rng := core.NewRNG(3)
	for i := 0; i < 30; i++ {
		_ = a.Set(rng.IntN(9), rng.IntN(7), material.Dirt)
	}
	want := countDirt(a)
	for i := 0; i < 20; i++ {
		a.Tick()
		require.Equal(t, want, countDirt(a), "tick %d", i)
	}
}

func TestWallImmutable(t *testing.T) {
	a := newAutomaton(t, 3, 3)
	for i := 0; i < 3; i++ {
		for _, p := range []core.Point{{Row: -1, Col: 1}, {Row: 3, Col: 1}, {Row: 1, Col: -1}, {Row: 1, Col: 3}} {
			assert.Equal(t, material.Wall, a.Get(p.Row, p.Col))
			assert.ErrorIs(t, a.Set(p.Row, p.Col, material.Dirt), core.ErrOutOfBounds)
		}
		assert.ErrorIs(t, a.Set(1, 1, material.Wall), core.ErrOutOfBounds)
		a.Tick()
	}
}

func TestWriteBetweenTicksSurvivesCommit(t *testing.T) {
	a := newAutomaton(t, 2, 2)
	a.Tick()
	require.NoError(t, a.Set(0, 0, material.Dirt))
	a.Tick()
	assert.Equal(t, material.Dirt, a.Get(1, 0))

	a.Reset(0)
	assert.Zero(t, countDirt(a))
}

func TestFromMapParsesDimensions(t *testing.T) {
	c := FromMap(map[string]string{"w": "12", "h": "x"})
	assert.Equal(t, 12, c.Width)
	assert.Equal(t, DefaultConfig().Height, c.Height)

	f, err := core.Lookup("basic")
	require.NoError(t, err)
	ca, err := f(map[string]string{"w": "5", "h": "4"})
	require.NoError(t, err)
	assert.Equal(t, core.Size{W: 5, H: 4}, ca.Size())
}

func countDirt(a *Automaton) int {
	n := 0
	for _, c := range a.Cells() {
		if c == material.Dirt {
			n++
		}
	}
	return n
}
