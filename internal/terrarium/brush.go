package terrarium

import "terrarium/internal/material"

const (
	minBrushRadius = 1
	maxBrushRadius = 32
)

// Brush is the front-end painting tool: a material and a square radius.
type Brush struct {
	Material material.State
	Radius   int
}

// NewBrush returns the default dirt brush.
func NewBrush() Brush {
	return Brush{Material: material.Dirt, Radius: 3}
}

// Paintable lists the materials a brush may select, in hotkey order.
func Paintable() []material.State {
	return []material.State{material.Dirt, material.Water, material.Steam, material.Empty}
}

// SelectHotkey switches material for the keys '1'..'4'. It reports whether
// the key was a material hotkey.
func (b *Brush) SelectHotkey(r rune) bool {
	idx := int(r - '1')
	mats := Paintable()
	if idx < 0 || idx >= len(mats) {
		return false
	}
	b.Material = mats[idx]
	return true
}

// Resize grows or shrinks the radius by delta within fixed bounds.
func (b *Brush) Resize(delta int) {
	b.Radius = min(max(b.Radius+delta, minBrushRadius), maxBrushRadius)
}

// Apply paints the brush centred on (row, col) and returns the cells written.
func (b Brush) Apply(t *Terrarium, row, col int) int {
	n, err := t.Paint(col, row, b.Radius, b.Material)
	if err != nil {
		return 0
	}
	return n
}
