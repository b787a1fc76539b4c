// Package terrarium drives a material automaton: it owns the simulation, the
// brush used to paint materials into it and the bookkeeping front-ends show.
package terrarium

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"strconv"

	"github.com/charmbracelet/log"

	"terrarium/internal/core"
	"terrarium/internal/material"
	_ "terrarium/internal/sims/basic"
	_ "terrarium/internal/sims/granular"
)

// DefaultKind names the automaton used when no kind is requested.
const DefaultKind = "granular"

// Terrarium owns one automaton and advances it on request.
type Terrarium struct {
	ca     core.Automaton
	logger *log.Logger
	ticks  uint64
	seed   int64
}

type options struct {
	kind   string
	cfg    map[string]string
	logger *log.Logger
	seed   int64
}

// Option customises New.
type Option func(*options)

// WithKind selects the registered automaton to run.
func WithKind(kind string) Option {
	return func(o *options) { o.kind = kind }
}

// WithConfig passes extra key/value settings to the automaton factory.
// Width and height given to New take precedence.
func WithConfig(cfg map[string]string) Option {
	return func(o *options) { maps.Copy(o.cfg, cfg) }
}

// WithLogger sets the logger used for lifecycle and brush messages.
func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithSeed sets the seed passed to the automaton on construction and reset.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// New builds an all-empty terrarium of the given size.
func New(width, height int, opts ...Option) (*Terrarium, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("terrarium %dx%d: %w", width, height, core.ErrInvalidDimensions)
	}
	o := options{kind: DefaultKind, cfg: map[string]string{}}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}
	o.cfg["w"] = strconv.Itoa(width)
	o.cfg["h"] = strconv.Itoa(height)
	if o.seed != 0 {
		o.cfg["seed"] = strconv.FormatInt(o.seed, 10)
	}

	factory, err := core.Lookup(o.kind)
	if err != nil {
		return nil, fmt.Errorf("terrarium: %w", err)
	}
	ca, err := factory(o.cfg)
	if err != nil {
		return nil, fmt.Errorf("terrarium: build %s: %w", o.kind, err)
	}
	o.logger.Debug("terrarium created", "kind", ca.Name(), "width", width, "height", height, "seed", o.seed)
	return &Terrarium{ca: ca, logger: o.logger, seed: o.seed}, nil
}

// Automaton exposes the underlying automaton.
func (t *Terrarium) Automaton() core.Automaton { return t.ca }

// Size reports the grid dimensions.
func (t *Terrarium) Size() core.Size { return t.ca.Size() }

// Ticks returns how many ticks have run since construction or reset.
func (t *Terrarium) Ticks() uint64 { return t.ticks }

// Get returns the material at (row, col); outside the grid is wall.
func (t *Terrarium) Get(row, col int) material.State { return t.ca.Get(row, col) }

// Tick advances the simulation by one step.
func (t *Terrarium) Tick() {
	t.ca.Tick()
	t.ticks++
}

// Reset empties the grid. A zero seed reuses the construction seed.
func (t *Terrarium) Reset(seed int64) {
	if seed == 0 {
		seed = t.seed
	}
	t.ca.Reset(seed)
	t.ticks = 0
	t.logger.Debug("terrarium reset", "seed", seed)
}

// PaintSquare fills the square [centerY-radius, centerY+radius) x
// [centerX-radius, centerX+radius) with dirt, skipping cells outside the grid.
func (t *Terrarium) PaintSquare(centerX, centerY, radius int) {
	_, _ = t.Paint(centerX, centerY, radius, material.Dirt)
}

// Paint fills the same square as PaintSquare with s and returns the number of
// cells written. Painting wall fails with core.ErrOutOfBounds.
func (t *Terrarium) Paint(centerX, centerY, radius int, s material.State) (int, error) {
	if s == material.Wall || !s.Valid() {
		err := fmt.Errorf("paint %v: %w", s, core.ErrOutOfBounds)
		t.logger.Debug("brush rejected", "material", s, "err", err)
		return 0, err
	}
	size := t.ca.Size()
	written := 0
	for row := max(centerY-radius, 0); row < min(centerY+radius, size.H); row++ {
		for col := max(centerX-radius, 0); col < min(centerX+radius, size.W); col++ {
			if err := t.ca.Set(row, col, s); err != nil {
				if errors.Is(err, core.ErrOutOfBounds) {
					continue
				}
				return written, err
			}
			written++
		}
	}
	return written, nil
}

// Census counts the cells holding each material.
func (t *Terrarium) Census() map[material.State]int {
	out := make(map[material.State]int, len(material.States()))
	for _, s := range material.States() {
		out[s] = 0
	}
	for _, c := range t.ca.Cells() {
		out[c]++
	}
	return out
}
