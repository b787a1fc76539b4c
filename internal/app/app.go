//go:build ebiten

package app

import (
	"fmt"
	"time"

	"terrarium/internal/material"
	"terrarium/internal/render"
	"terrarium/internal/terrarium"
	"terrarium/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a terrarium to the ebiten.Game interface.
type Game struct {
	t       *terrarium.Terrarium
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay
	brush   terrarium.Brush

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided terrarium.
func New(t *terrarium.Terrarium, scale int, seed int64) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := t.Size()
	return &Game{
		t:       t,
		painter: render.NewGridPainter(size.W, size.H),
		hud:     ui.NewHUD(t.Automaton(), hudWidth),
		overlay: ui.NewOverlay(scale),
		brush:   terrarium.NewBrush(),
		scale:   scale,
		seed:    seed,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.t.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		g.brush.SelectHotkey(r)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft) {
		g.brush.Resize(-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBracketRight) {
		g.brush.Resize(1)
	}

	row, col, inside := g.cursorCell()
	if inside {
		switch {
		case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
			g.brush.Apply(g.t, row, col)
		case ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight):
			eraser := terrarium.Brush{Material: material.Empty, Radius: g.brush.Radius}
			eraser.Apply(g.t, row, col)
		}
	}

	if !g.paused || g.tickOnce {
		g.t.Tick()
		g.tickOnce = false
	}

	size := g.t.Size()
	g.hud.Update(size.W*g.scale, g.status())
	g.overlay.Update(row, col, g.brush.Radius, inside, g.t.Ticks())
	return nil
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.t.Automaton().Cells(), g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.t.Size().W*g.scale, g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.t.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}

func (g *Game) cursorCell() (row, col int, inside bool) {
	mx, my := ebiten.CursorPosition()
	row, col = my/g.scale, mx/g.scale
	size := g.t.Size()
	inside = mx >= 0 && my >= 0 && row < size.H && col < size.W
	return row, col, inside
}

func (g *Game) status() []string {
	census := g.t.Census()
	lines := []string{
		fmt.Sprintf("brush %s r=%d", g.brush.Material, g.brush.Radius),
		fmt.Sprintf("tick  %d", g.t.Ticks()),
	}
	if g.paused {
		lines = append(lines, "paused")
	}
	for _, s := range material.States() {
		if s == material.Wall {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-6s %d", s, census[s]))
	}
	return lines
}
