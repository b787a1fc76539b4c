package granular

import (
	"terrarium/internal/core"
	"terrarium/internal/material"
)

// drawJumps refills the stride table around base. Each stride varies by up to
// the temperature in either direction and is never below one.
func (a *Automaton) drawJumps(base int) {
	t := a.cfg.Temperature
	for i := range a.jumps {
		variation := 0
		if t > 0 {
			variation = t - a.rng.IntN(2*t)
		}
		a.jumps[i] = max(1, base+variation)
	}
}

// sweep walks the grid in raster order using the stride table and calls fn on
// every sampled cell. It returns the stride cursor for the next sweep.
func (a *Automaton) sweep(cursor int, fn func(p core.Point)) int {
	w := a.grid.W
	total := w * a.grid.H
	for i := 0; i < total; {
		fn(core.Point{Row: i / w, Col: i % w})
		cursor = (cursor + 1) % len(a.jumps)
		i += a.jumps[cursor]
	}
	return cursor
}

func (a *Automaton) evaporate(cursor int) int {
	a.drawJumps(100 - a.cfg.Temperature + a.cfg.WaterCycleDelay)
	return a.sweep(cursor, func(p core.Point) {
		if a.grid.Get(p.Row, p.Col) == material.Water && a.waterSurface(p) {
			a.grid.Cells()[a.grid.Index(p.Row, p.Col)] = material.Steam
			a.stats.Evaporated++
		}
	})
}

func (a *Automaton) condense(cursor int) int {
	a.drawJumps(a.cfg.Temperature)
	return a.sweep(cursor, func(p core.Point) {
		if a.grid.Get(p.Row, p.Col) == material.Steam && a.surrounded(p, material.Steam) {
			a.grid.Cells()[a.grid.Index(p.Row, p.Col)] = material.Water
			a.stats.Condensed++
		}
	})
}

// waterSurface reports whether p has a non-water cell somewhere in the row
// above it and a water cell somewhere in the row below it. Only cells inside
// the grid are considered.
func (a *Automaton) waterSurface(p core.Point) bool {
	open, supported := false, false
	for col := max(p.Col-1, 0); col < min(p.Col+2, a.grid.W); col++ {
		if p.Row-1 >= 0 && a.grid.Get(p.Row-1, col) != material.Water {
			open = true
		}
		if p.Row+1 < a.grid.H && a.grid.Get(p.Row+1, col) == material.Water {
			supported = true
		}
	}
	return open && supported
}

// surrounded reports whether every in-grid neighbor of p holds s.
func (a *Automaton) surrounded(p core.Point, s material.State) bool {
	for r := max(p.Row-1, 0); r < min(p.Row+2, a.grid.H); r++ {
		for c := max(p.Col-1, 0); c < min(p.Col+2, a.grid.W); c++ {
			if (r != p.Row || c != p.Col) && a.grid.Get(r, c) != s {
				return false
			}
		}
	}
	return true
}
