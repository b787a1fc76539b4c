package basic

import (
	"strconv"

	"terrarium/internal/core"
	"terrarium/internal/material"
)

// Config holds parameters for the basic automaton.
type Config struct {
	Width  int
	Height int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 192}
}

// FromMap populates a Config from a string map.
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
	return c
}

// Automaton lets dirt fall one row per tick. Next states are computed from
// the current buffer into a pending one, and the two are swapped once every
// cell has been visited.
type Automaton struct {
	cur *core.Grid
	nxt *core.Grid
}

// New creates an all-empty automaton with the given dimensions.
func New(w, h int) (*Automaton, error) {
	cur, err := core.NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	nxt, _ := core.NewGrid(w, h)
	return &Automaton{cur: cur, nxt: nxt}, nil
}

// Name returns the automaton identifier.
func (a *Automaton) Name() string { return "basic" }

// Size returns the grid dimensions.
func (a *Automaton) Size() core.Size { return core.Size{W: a.cur.W, H: a.cur.H} }

// Cells exposes the current buffer.
func (a *Automaton) Cells() []material.State { return a.cur.Cells() }

// Reset empties both buffers. The rule is deterministic so seed is unused.
func (a *Automaton) Reset(seed int64) {
	a.cur.Clear()
	a.nxt.Clear()
}

// Get returns the current material at (row, col); outside the grid is wall.
func (a *Automaton) Get(row, col int) material.State { return a.cur.Get(row, col) }

// Set stages s for the next tick. The write also lands in the current buffer
// so it is visible to Get straight away.
func (a *Automaton) Set(row, col int, s material.State) error {
	if err := a.nxt.Set(row, col, s); err != nil {
		return err
	}
	return a.cur.Set(row, col, s)
}

// Tick advances the automaton by one step.
func (a *Automaton) Tick() {
	w, h := a.cur.W, a.cur.H
	next := a.nxt.Cells()
	for row := 0; row < h; row++ {
		for col := 0; col < w; col++ {
			next[row*w+col] = a.nextState(row, col)
		}
	}
	a.cur, a.nxt = a.nxt, a.cur
}

func (a *Automaton) nextState(row, col int) material.State {
	here := a.cur.Get(row, col)
	switch {
	case here == material.Empty && a.cur.Get(row-1, col) == material.Dirt:
		return material.Dirt
	case here == material.Dirt && a.cur.Get(row+1, col) == material.Empty:
		return material.Empty
	}
	return here
}

func init() {
	core.Register("basic", func(cfg map[string]string) (core.Automaton, error) {
		c := FromMap(cfg)
		a, err := New(c.Width, c.Height)
		if err != nil {
			return nil, err
		}
		return a, nil
	})
}
