package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"terrarium/internal/material"
)

func TestPixelsUsesMaterialPalette(t *testing.T) {
	cells := []material.State{material.Empty, material.Dirt, material.Water}
	buf := make([]byte, 4*len(cells))
	fillPaletteRGBA(buf, cells, material.Palette())
	if assert.Len(t, buf, 12) {
		for i, c := range cells {
			col := c.Color()
			assert.Equal(t, []byte{col.R, col.G, col.B, col.A}, buf[i*4:i*4+4], "cell %d", i)
		}
	}
}

func TestFillPaletteRGBAClampsAndClears(t *testing.T) {
	palette := []color.RGBA{{R: 1, A: 255}, {G: 2, A: 255}}
	buf := make([]byte, 8)
	fillPaletteRGBA(buf, []material.State{material.Empty, material.Steam}, palette)
	assert.Equal(t, []byte{1, 0, 0, 255, 0, 2, 0, 255}, buf)

	fillPaletteRGBA(buf, []material.State{material.Dirt, material.Dirt}, nil)
	assert.Equal(t, make([]byte, 8), buf)
}
