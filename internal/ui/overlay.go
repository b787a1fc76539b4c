//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws the brush outline and debug counters on top of the grid.
type Overlay struct {
	scale     int
	showDebug bool
	pixel     *ebiten.Image

	cursorRow, cursorCol int
	radius               int
	visible              bool
	ticks                uint64
}

// NewOverlay constructs an overlay for a grid drawn at the given scale.
func NewOverlay(scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	o := &Overlay{scale: scale, showDebug: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// Update records the brush position in grid coordinates. visible is false
// when the cursor is outside the grid.
func (o *Overlay) Update(row, col, radius int, visible bool, ticks uint64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		o.showDebug = !o.showDebug
	}
	o.cursorRow, o.cursorCol = row, col
	o.radius = radius
	o.visible = visible
	o.ticks = ticks
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o.visible && o.radius > 0 {
		s := float64(o.scale)
		x := float64(o.cursorCol-o.radius) * s
		y := float64(o.cursorRow-o.radius) * s
		side := float64(2*o.radius) * s
		outline := color.RGBA{R: 255, G: 255, B: 255, A: 160}
		o.rect(screen, x, y, side, 1, outline)
		o.rect(screen, x, y+side-1, side, 1, outline)
		o.rect(screen, x, y, 1, side, outline)
		o.rect(screen, x+side-1, y, 1, side, outline)
	}
	if o.showDebug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS %.0f  tick %d", ebiten.ActualTPS(), o.ticks), 4, 4)
	}
}

func (o *Overlay) rect(screen *ebiten.Image, x, y, w, h float64, c color.Color) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(o.pixel, op)
}
