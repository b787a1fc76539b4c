// Package tty runs a terrarium inside a terminal using tcell.
package tty

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"terrarium/internal/core"
	"terrarium/internal/material"
	"terrarium/internal/terrarium"
)

// Session binds a terrarium to a terminal screen.
type Session struct {
	screen tcell.Screen
	t      *terrarium.Terrarium
	brush  terrarium.Brush
	step   *core.FixedStep
	logger *log.Logger

	paused   bool
	tickOnce bool
	seed     int64
}

// Option customises a Session.
type Option func(*Session)

// WithLogger routes session logs to l. The terminal is owned by tcell while
// the session runs, so l must not write to it.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithTPS sets the simulation rate.
func WithTPS(tps int) Option {
	return func(s *Session) { s.step.SetTPS(tps) }
}

// WithSeed sets the seed used by the reset key.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.seed = seed }
}

// New prepares a session. The screen must already be initialised.
func New(screen tcell.Screen, t *terrarium.Terrarium, opts ...Option) *Session {
	s := &Session{
		screen: screen,
		t:      t,
		brush:  terrarium.NewBrush(),
		step:   core.NewFixedStep(30),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Brush returns the current brush.
func (s *Session) Brush() terrarium.Brush { return s.brush }

// Paused reports whether the simulation is paused.
func (s *Session) Paused() bool { return s.paused }

// HandleEvent applies one terminal event. It returns false when the session
// should end.
func (s *Session) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.handleKey(ev)
	case *tcell.EventMouse:
		s.handleMouse(ev)
	case *tcell.EventResize:
		s.screen.Sync()
	}
	return true
}

func (s *Session) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}
	r := ev.Rune()
	if s.brush.SelectHotkey(r) {
		s.logger.Debug("brush material", "material", s.brush.Material)
		return true
	}
	switch r {
	case 'q', 'Q':
		return false
	case ' ':
		s.paused = !s.paused
	case 'n':
		s.tickOnce = true
	case 'r':
		s.t.Reset(s.seed)
		s.logger.Info("reset", "seed", s.seed)
	case '[':
		s.brush.Resize(-1)
	case ']':
		s.brush.Resize(1)
	}
	return true
}

// handleMouse paints with button 1 and erases with button 2. A terminal cell
// covers two grid rows; the brush centres on the upper one.
func (s *Session) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	b := s.brush
	switch {
	case ev.Buttons()&tcell.Button1 != 0:
	case ev.Buttons()&tcell.Button2 != 0:
		b.Material = material.Empty
	default:
		return
	}
	size := s.t.Size()
	row, col := 2*y, x
	if row >= size.H || col >= size.W {
		return
	}
	b.Apply(s.t, row, col)
}

// Advance runs the ticks due at now and reports how many ran.
func (s *Session) Advance(now time.Time) int {
	n := s.step.Due(now)
	if s.paused {
		n = 0
		if s.tickOnce {
			n = 1
		}
	}
	s.tickOnce = false
	for i := 0; i < n; i++ {
		s.t.Tick()
	}
	return n
}

// Draw renders the grid and a status line below it.
func (s *Session) Draw() {
	s.screen.Clear()
	size := s.t.Size()
	drawGrid(s.screen, size.W, size.H, s.t.Get)

	status := fmt.Sprintf("%s  tick %d  brush %s r=%d", s.t.Automaton().Name(), s.t.Ticks(), s.brush.Material, s.brush.Radius)
	if s.paused {
		status += "  [paused]"
	}
	drawText(s.screen, 0, (size.H+1)/2, status, tcell.StyleDefault)
	drawText(s.screen, 0, (size.H+1)/2+1, "1-4 material  [ ] size  space pause  n step  r reset  q quit", tcell.StyleDefault.Dim(true))
	s.screen.Show()
}

// Run polls terminal events and advances the simulation until the user quits
// or ctx is cancelled.
func (s *Session) Run(ctx context.Context) error {
	s.screen.EnableMouse()
	defer s.screen.DisableMouse()

	ticker := time.NewTicker(s.step.Step())
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	s.logger.Info("session started", "sim", s.t.Automaton().Name())
	s.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !s.HandleEvent(ev) {
				s.logger.Info("session ended", "ticks", s.t.Ticks())
				return nil
			}
		case now := <-ticker.C:
			s.Advance(now)
			s.Draw()
		}
	}
}
