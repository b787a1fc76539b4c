package granular

import (
	"terrarium/internal/core"
	"terrarium/internal/material"
)

// Stats summarises the work done by the most recent tick.
type Stats struct {
	Moves      int
	Evaporated int
	Condensed  int
}

// Automaton moves every material at most once per tick using a single
// in-place buffer. Directions are tried from straight down to sideways, and
// water and steam convert into each other at phase boundaries.
type Automaton struct {
	cfg  Config
	grid *core.Grid
	rng  *core.RNG

	// visited holds every cell that received a moved material this tick.
	visited   map[core.Point]struct{}
	queue     []core.Point
	jumps     []int
	leftFirst bool

	stats Stats
}

// New returns a granular automaton with the provided dimensions using defaults.
func New(w, h int) (*Automaton, error) {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns an all-empty automaton configured from cfg.
func NewWithConfig(cfg Config) (*Automaton, error) {
	grid, err := core.NewGrid(cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if cfg.Jumps <= 0 {
		cfg.Jumps = DefaultConfig().Jumps
	}
	return &Automaton{
		cfg:       cfg,
		grid:      grid,
		rng:       core.NewRNG(cfg.Seed),
		visited:   make(map[core.Point]struct{}),
		jumps:     make([]int, cfg.Jumps),
		leftFirst: true,
	}, nil
}

// Name returns the automaton identifier.
func (a *Automaton) Name() string { return "granular" }

// Size reports the grid dimensions.
func (a *Automaton) Size() core.Size { return core.Size{W: a.grid.W, H: a.grid.H} }

// Cells exposes the grid buffer.
func (a *Automaton) Cells() []material.State { return a.grid.Cells() }

// Stats reports what the last Tick did.
func (a *Automaton) Stats() Stats { return a.stats }

// Get returns the material at (row, col); outside the grid is wall.
func (a *Automaton) Get(row, col int) material.State { return a.grid.Get(row, col) }

// Set writes s directly into the grid.
func (a *Automaton) Set(row, col int, s material.State) error { return a.grid.Set(row, col, s) }

// Reset empties the grid and reseeds the random source. A zero seed falls
// back to the configured one.
func (a *Automaton) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = a.cfg.Seed
	}
	a.rng.Seed(effective)
	a.grid.Clear()
	clear(a.visited)
	a.leftFirst = true
	a.stats = Stats{}
}

// Tick runs one movement pass per angle, then the evaporation and
// condensation sweeps.
func (a *Automaton) Tick() {
	a.stats = Stats{}
	clear(a.visited)
	for _, angle := range material.Angles() {
		a.flow(angle)
	}
	cursor := 0
	cursor = a.evaporate(cursor)
	a.condense(cursor)
}

func (a *Automaton) flow(angle material.Angle) {
	w := a.grid.W
	q := a.queue[:0]
	for i, s := range a.grid.Cells() {
		if s.Moves(angle) {
			q = append(q, core.Point{Row: i / w, Col: i % w})
		}
	}
	for head := 0; head < len(q); head++ {
		p := q[head]
		if _, done := a.visited[p]; done {
			continue
		}
		dst, ok := a.move(p, angle)
		if !ok {
			continue
		}
		a.visited[dst] = struct{}{}
		a.stats.Moves++
		q = a.grid.Neighbors(dst, q)
	}
	a.queue = q[:0]
}

// move tries to shift the material at p along angle, first to one side and
// then to the mirrored side. The side tried first alternates per attempt.
func (a *Automaton) move(p core.Point, angle material.Angle) (core.Point, bool) {
	s := a.grid.Get(p.Row, p.Col)
	if !s.Moves(angle) {
		return core.Point{}, false
	}
	dy, dx := angle.Delta()
	if s.Props().Rises {
		dy = -dy
	}
	if a.leftFirst {
		dx = -dx
	}
	a.leftFirst = !a.leftFirst

	dst := core.Point{Row: p.Row + dy, Col: p.Col + dx}
	if a.push(p, dst) {
		return dst, true
	}
	if dx == 0 {
		return core.Point{}, false
	}
	dst.Col = p.Col - dx
	if a.push(p, dst) {
		return dst, true
	}
	return core.Point{}, false
}

func (a *Automaton) push(src, dst core.Point) bool {
	if _, taken := a.visited[dst]; taken {
		return false
	}
	if !material.CanDisplace(a.grid.Get(src.Row, src.Col), a.grid.Get(dst.Row, dst.Col)) {
		return false
	}
	a.grid.Swap(src, dst)
	return true
}
