package tty

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"terrarium/internal/material"
	"terrarium/internal/terrarium"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(40, 12)
	t.Cleanup(screen.Fini)
	return screen
}

func newSession(t *testing.T, kind string) (*Session, *terrarium.Terrarium, tcell.SimulationScreen) {
	t.Helper()
	tr, err := terrarium.New(6, 6, terrarium.WithKind(kind))
	require.NoError(t, err)
	screen := newScreen(t)
	return New(screen, tr, WithTPS(10), WithSeed(7)), tr, screen
}

func key(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestDrawPacksTwoRowsPerCell(t *testing.T) {
	s, tr, screen := newSession(t, "basic")
	// Covers row 0, columns 0..1.
	_, err := tr.Paint(1, 0, 1, material.Dirt)
	require.NoError(t, err)

	s.Draw()

	mainc, _, style, _ := screen.GetContent(0, 0)
	assert.Equal(t, halfBlock, mainc)
	assert.Equal(t, cellStyle(material.Dirt, material.Empty), style)

	_, _, style, _ = screen.GetContent(2, 0)
	assert.Equal(t, cellStyle(material.Empty, material.Empty), style)
}

func TestDrawShowsPaintedCells(t *testing.T) {
	s, tr, screen := newSession(t, "basic")
	// Covers rows 2..3 and columns 2..3.
	_, err := tr.Paint(3, 3, 1, material.Dirt)
	require.NoError(t, err)

	s.Draw()

	_, _, style, _ := screen.GetContent(2, 1)
	assert.Equal(t, cellStyle(material.Dirt, material.Dirt), style)
	_, _, style, _ = screen.GetContent(2, 0)
	assert.Equal(t, cellStyle(material.Empty, material.Empty), style)
	_, _, style, _ = screen.GetContent(4, 1)
	assert.Equal(t, cellStyle(material.Empty, material.Empty), style)

	mainc, _, _, _ := screen.GetContent(0, 3)
	assert.Equal(t, 'b', mainc, "status line starts with the automaton name")
}

func TestKeysDriveBrushAndPause(t *testing.T) {
	s, _, _ := newSession(t, "granular")

	assert.True(t, s.HandleEvent(key('2')))
	assert.Equal(t, material.Water, s.Brush().Material)

	r := s.Brush().Radius
	s.HandleEvent(key(']'))
	assert.Equal(t, r+1, s.Brush().Radius)
	s.HandleEvent(key('['))
	assert.Equal(t, r, s.Brush().Radius)

	s.HandleEvent(key(' '))
	assert.True(t, s.Paused())
	s.HandleEvent(key(' '))
	assert.False(t, s.Paused())

	assert.False(t, s.HandleEvent(key('q')))
	assert.False(t, s.HandleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}

func TestMousePaintsAndErases(t *testing.T) {
	s, tr, _ := newSession(t, "granular")

	s.HandleEvent(tcell.NewEventMouse(2, 1, tcell.Button1, tcell.ModNone))
	assert.Equal(t, material.Dirt, tr.Get(2, 2))
	assert.Equal(t, 25, tr.Census()[material.Dirt])

	s.HandleEvent(tcell.NewEventMouse(2, 1, tcell.Button2, tcell.ModNone))
	assert.Zero(t, tr.Census()[material.Dirt])

	// Below the grid.
	s.HandleEvent(tcell.NewEventMouse(2, 5, tcell.Button1, tcell.ModNone))
	assert.Zero(t, tr.Census()[material.Dirt])
}

func TestAdvanceHonoursPauseAndSingleStep(t *testing.T) {
	s, tr, _ := newSession(t, "granular")
	now := time.Now()

	assert.Equal(t, 1, s.Advance(now))

	s.HandleEvent(key(' '))
	assert.Zero(t, s.Advance(now.Add(time.Second)))

	s.HandleEvent(key('n'))
	assert.Equal(t, 1, s.Advance(now.Add(time.Second)))
	assert.Zero(t, s.Advance(now.Add(time.Second)))
	assert.Equal(t, uint64(2), tr.Ticks())

	s.HandleEvent(key('r'))
	assert.Zero(t, tr.Ticks())
}
