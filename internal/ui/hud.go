//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"terrarium/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter panel to the right of the simulation view.
type HUD struct {
	ca         core.Automaton
	width      int
	panel      *ebiten.Image
	lastHeight int

	controls     []hudControl
	setter       core.IntParameterSetter
	panelOffsetX int
	title        string
	status       []string

	pixel *ebiten.Image
}

type hudControl struct {
	controlState

	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for the provided automaton and panel width.
func NewHUD(ca core.Automaton, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{ca: ca, width: width, title: buildTitle(ca)}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	for _, st := range newControlStates(ca) {
		h.controls = append(h.controls, hudControl{controlState: st})
	}
	h.layoutControls()
	if setter, ok := ca.(core.IntParameterSetter); ok {
		h.setter = setter
	}
	return h
}

// Width returns the panel width in pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Update refreshes parameter values, stores the status lines to show below
// the controls and handles clicks on the +/- buttons.
func (h *HUD) Update(panelOffsetX int, status []string) {
	if h == nil {
		return
	}
	h.panelOffsetX = panelOffsetX
	h.status = status
	states := make([]controlState, len(h.controls))
	for i := range h.controls {
		states[i] = h.controls[i].controlState
	}
	refresh(states, h.ca)
	for i := range h.controls {
		h.controls[i].controlState = states[i]
	}
	h.handleInput()
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.ca.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawControls()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func buildTitle(ca core.Automaton) string {
	if ca == nil || ca.Name() == "" {
		return "Controls"
	}
	name := ca.Name()
	return fmt.Sprintf("%s%s", strings.ToUpper(name[:1]), name[1:])
}

func (h *HUD) handleInput() {
	if len(h.controls) == 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if mx < h.panelOffsetX {
		return
	}
	px := mx - h.panelOffsetX
	for i := range h.controls {
		c := &h.controls[i]
		switch {
		case pointInRect(px, my, c.minusRect):
			c.adjust(h.setter, -1)
			return
		case pointInRect(px, my, c.plusRect):
			c.adjust(h.setter, 1)
			return
		}
	}
}

func (h *HUD) drawControls() {
	face := basicfont.Face7x13
	headerY := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, headerY, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	y := controlsTop
	if len(h.controls) == 0 {
		text.Draw(h.panel, "No adjustable parameters", face, panelPadding, y+labelBaseline, dimText)
		y += lineHeight
	}
	for i := range h.controls {
		c := &h.controls[i]
		labelY := c.top + labelBaseline
		text.Draw(h.panel, c.control.Label, face, panelPadding, labelY, brightText)
		valueColor := brightText
		if !c.hasValue {
			valueColor = dimText
		}
		value := c.label()
		valueX := c.minusRect.Min.X - buttonGap - text.BoundString(face, value).Dx()
		text.Draw(h.panel, value, face, valueX, labelY, valueColor)

		_, canDec := c.target(-1)
		_, canInc := c.target(1)
		h.drawButton(c.minusRect, "-", canDec && h.setter != nil)
		h.drawButton(c.plusRect, "+", canInc && h.setter != nil)
		y = c.top + lineHeight
	}
	for _, line := range h.status {
		y += statusSpacing
		text.Draw(h.panel, line, face, panelPadding, y, dimText)
	}
}

func (h *HUD) drawButton(rect image.Rectangle, label string, enabled bool) {
	if h.pixel == nil {
		return
	}
	bg := color.RGBA{R: 54, G: 56, B: 64, A: 255}
	fg := color.RGBA{R: 230, G: 230, B: 240, A: 255}
	if !enabled {
		bg = color.RGBA{R: 32, G: 34, B: 40, A: 255}
		fg = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.ScaleWithColor(bg)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	bounds := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-bounds.Dx())/2
	y := rect.Min.Y + (rect.Dy()-bounds.Dy())/2 + bounds.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layoutControls() {
	if h.width <= 0 {
		return
	}
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		buttonY := top + (lineHeight-buttonSize)/2
		plusRect := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minusRect := image.Rect(plusRect.Min.X-buttonGap-buttonSize, buttonY, plusRect.Min.X-buttonGap, buttonY+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minusRect
		h.controls[i].plusRect = plusRect
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

var (
	brightText = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	dimText    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
)

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	statusSpacing  = 18
	controlsTop    = panelPadding + headerBaseline + 14
)
