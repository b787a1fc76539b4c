package tty

import (
	"github.com/gdamore/tcell/v2"

	"terrarium/internal/material"
)

// halfBlock packs two grid rows into one terminal row: the foreground paints
// the upper cell and the background the lower one.
const halfBlock = '▀'

func stateColor(s material.State) tcell.Color {
	c := s.Color()
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// cellStyle returns the style for the terminal cell showing upper over lower.
func cellStyle(upper, lower material.State) tcell.Style {
	return tcell.StyleDefault.Foreground(stateColor(upper)).Background(stateColor(lower))
}

// drawGrid blits get(row, col) for a w x h grid onto screen starting at the
// top-left corner. Rows past the end of an odd-height grid render as wall.
func drawGrid(screen tcell.Screen, w, h int, get func(row, col int) material.State) {
	sw, sh := screen.Size()
	for y := 0; y < (h+1)/2 && y < sh; y++ {
		for x := 0; x < w && x < sw; x++ {
			screen.SetContent(x, y, halfBlock, nil, cellStyle(get(2*y, x), get(2*y+1, x)))
		}
	}
}

// drawText writes s at (x, y) clipped to the screen width.
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	sw, _ := screen.Size()
	for _, r := range s {
		if x >= sw {
			return
		}
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
